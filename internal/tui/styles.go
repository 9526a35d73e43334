// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle       = lipgloss.NewStyle().Padding(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	tabStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	warningStyle   = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 1)
	doneStyle      = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	errorStyle     = lipgloss.NewStyle().Bold(true)
)

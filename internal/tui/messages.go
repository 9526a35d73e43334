// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package tui

import (
	"time"

	"github.com/northstarhouse/strategyhub/internal/syncer"
	tea "github.com/charmbracelet/bubbletea"
)

type refreshDoneMsg struct {
	err error
}

type confirmationMsg struct {
	conf syncer.Confirmation
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type pollTickMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func pollTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return pollTickMsg{} })
}

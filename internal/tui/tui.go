// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

// Package tui renders the dashboard as a terminal application. It reads
// exclusively from the synchronized collections, so every screen works
// offline; background writes report back through the confirmations
// channel as a status line.
package tui

import (
	"context"
	"errors"

	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/quarterly"
	"github.com/northstarhouse/strategyhub/internal/syncer"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *syncer.Services
	quarterly *quarterly.Service
	warning   string
	sheetLink string
}

// New builds the terminal dashboard. warning, when non-empty, is shown in
// a banner until the remote is configured; sheetLink is what the copy key
// puts on the clipboard.
func New(services *syncer.Services, qs *quarterly.Service, warning, sheetLink string, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, quarterly: qs, warning: warning, sheetLink: sheetLink}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.services, t.quarterly, t.warning, t.sheetLink)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

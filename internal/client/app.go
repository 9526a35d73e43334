// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/northstarhouse/strategyhub/internal/config"
	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/quarterly"
	"github.com/northstarhouse/strategyhub/internal/sheets"
	"github.com/northstarhouse/strategyhub/internal/store"
	"github.com/northstarhouse/strategyhub/internal/syncer"
	"github.com/northstarhouse/strategyhub/internal/tui"
)

type App struct {
	cfg      *config.StructuredConfig
	services *syncer.Services
	tui      *tui.TUI
	kv       store.KV
	logger   *logger.Logger
}

// NewApp wires the full dashboard: cache, gateway, synchronized
// collections, quarterly workflow, and the terminal UI.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	var (
		kv  store.KV
		err error
	)
	if cfg.Cache.Path != "" {
		kv, err = store.NewBoltStore(cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("open cache %s: %w", cfg.Cache.Path, err)
		}
	} else {
		log.Warn().Msg("no cache path configured, nothing will survive this run")
		kv = store.NewMemoryStore()
	}
	cache := store.NewCache(kv, log)

	gateway := sheets.NewHTTPGateway(cfg.Remote, log)
	services := syncer.NewServices(gateway, cache, cfg.Watch, log)
	quarterlyService := quarterly.NewService(gateway, cache, services.QuarterlyUpdates, log)

	ui, err := tui.New(services, quarterlyService, cfg.Remote.ConfigWarning(), cfg.Remote.ScriptURL, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{cfg: cfg, services: services, tui: ui, kv: kv, logger: log}, nil
}

// Run loads cached state, starts the background synchronization, and hands
// the terminal over to the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	a.services.Initialize(ctx)
	defer a.services.Close()
	defer func() {
		if err := a.kv.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("close cache")
		}
	}()

	if !a.cfg.Remote.IsConfigured() {
		a.logger.Warn().Msg("remote not configured, running on cached data only")
	}

	if err := a.tui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}
	return nil
}

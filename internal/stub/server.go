// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package stub

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/northstarhouse/strategyhub/internal/config"
	"github.com/northstarhouse/strategyhub/internal/logger"
)

type Server struct {
	httpServer *http.Server
	store      *Store
	logger     *logger.Logger
}

func NewServer(cfg config.Stub, log *logger.Logger) (*Server, error) {
	log.Info().Str("db", cfg.DBPath).Msg("creating sheet stub server...")

	store, err := NewStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	handler := NewHandler(store, log)
	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler.Init(),
		},
		store:  store,
		logger: log,
	}, nil
}

// Run serves until SIGINT/SIGTERM/SIGQUIT, then shuts down gracefully.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("launching sheet stub")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("sheet stub shut down gracefully")
	return nil
}

func (s *Server) Shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Msg("http server shutdown")
	}
	if err := s.store.Close(); err != nil {
		s.logger.Err(err).Msg("close store")
	}
}

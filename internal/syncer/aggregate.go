// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package syncer

import (
	"context"
	"sync"

	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/store"
)

// Aggregate caches a single remotely computed value. Unlike [Collection]
// there is no per-item merge: a successful fetch replaces the value whole,
// a failed fetch leaves the cached value in place.
type Aggregate[T any] struct {
	name     string
	fetch    func(ctx context.Context) (T, error)
	cache    *store.Cache
	cacheKey string
	logger   *logger.Logger

	mu     sync.RWMutex
	value  T
	loaded bool
}

func NewAggregate[T any](name string, fetch func(ctx context.Context) (T, error), cache *store.Cache, cacheKey string, log *logger.Logger) *Aggregate[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Aggregate[T]{name: name, fetch: fetch, cache: cache, cacheKey: cacheKey, logger: log}
}

// Initialize loads the cached value synchronously, then refreshes in the
// background.
func (a *Aggregate[T]) Initialize(ctx context.Context) {
	var cached T
	if a.cache.Read(a.cacheKey, &cached) {
		a.mu.Lock()
		a.value = cached
		a.loaded = true
		a.mu.Unlock()
	}

	go func() {
		if err := a.Refresh(ctx); err != nil {
			a.logger.Warn().Err(err).Str("aggregate", a.name).Msg("initial refresh failed, serving cache")
		}
	}()
}

// Refresh fetches the value and, on success, replaces the current one.
func (a *Aggregate[T]) Refresh(ctx context.Context) error {
	value, err := a.fetch(ctx)
	if err != nil {
		return err
	}
	a.Set(value)
	return nil
}

// Value returns the current value and whether anything has been loaded yet.
// The value is returned as-is: callers holding a slice- or map-typed
// aggregate must clone before mutating and hand the clone to [Aggregate.Set].
func (a *Aggregate[T]) Value() (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.value, a.loaded
}

// Set replaces the value locally and persists it. Used both by Refresh and
// by callers that fold a local edit into the cached state ahead of the
// sheet catching up.
func (a *Aggregate[T]) Set(value T) {
	a.mu.Lock()
	a.value = value
	a.loaded = true
	a.mu.Unlock()

	a.cache.Write(a.cacheKey, value)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/store"
)

// lastUpdatedFunc matches sheets.Gateway.SheetLastUpdated.
type lastUpdatedFunc func(ctx context.Context, ids []string) (map[string]string, error)

// SheetWatcher polls the modification timestamps of a set of external
// sheets and flags the ones that changed since the user last looked. The
// seen timestamps are cached, so flags survive a restart.
type SheetWatcher struct {
	lastUpdated lastUpdatedFunc
	cache       *store.Cache
	interval    time.Duration
	ids         []string
	logger      *logger.Logger

	mu      sync.RWMutex
	seen    map[string]string
	latest  map[string]string
	started bool
	stop    chan struct{}
	done    chan struct{}
}

func NewSheetWatcher(lastUpdated lastUpdatedFunc, cache *store.Cache, interval time.Duration, ids []string, log *logger.Logger) *SheetWatcher {
	if log == nil {
		log = logger.Nop()
	}
	w := &SheetWatcher{
		lastUpdated: lastUpdated,
		cache:       cache,
		interval:    interval,
		ids:         ids,
		logger:      log,
		seen:        map[string]string{},
		latest:      map[string]string{},
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	var seen map[string]string
	if cache.Read(store.KeySheetLastSeen, &seen) && seen != nil {
		w.seen = seen
	}
	return w
}

// Start polls immediately and then on every interval tick until Stop is
// called or ctx is cancelled. Safe to call once.
func (w *SheetWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.started || len(w.ids) == 0 {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	go func() {
		defer close(w.done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.check(ctx)
		for {
			select {
			case <-ticker.C:
				w.check(ctx)
			case <-w.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts polling and waits for the loop to exit.
func (w *SheetWatcher) Stop() {
	w.mu.RLock()
	started := w.started
	w.mu.RUnlock()
	if !started {
		return
	}
	close(w.stop)
	<-w.done
}

func (w *SheetWatcher) check(ctx context.Context) {
	updated, err := w.lastUpdated(ctx, w.ids)
	if err != nil {
		w.logger.Debug().Err(err).Msg("sheet watch poll failed")
		return
	}

	w.mu.Lock()
	for id, stamp := range updated {
		w.latest[id] = stamp
	}
	w.mu.Unlock()
}

// Unread reports, per watched sheet, whether it changed since MarkSeen.
func (w *SheetWatcher) Unread() map[string]bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make(map[string]bool, len(w.ids))
	for _, id := range w.ids {
		latest, ok := w.latest[id]
		out[id] = ok && latest != "" && latest != w.seen[id]
	}
	return out
}

// MarkSeen records the latest known timestamp for the sheet as seen and
// persists it.
func (w *SheetWatcher) MarkSeen(id string) {
	w.mu.Lock()
	if latest, ok := w.latest[id]; ok {
		w.seen[id] = latest
	}
	seen := make(map[string]string, len(w.seen))
	for k, v := range w.seen {
		seen[k] = v
	}
	w.mu.Unlock()

	w.cache.Write(store.KeySheetLastSeen, seen)
}

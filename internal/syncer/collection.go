// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

// Package syncer keeps the dashboard's collections usable offline. Every
// collection is served from the local cache first and reconciled against
// the sheet in the background; mutations land locally right away and are
// pushed to the sheet without blocking the caller.
package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/store"
)

// Op identifies the remote operation a [Confirmation] reports on.
type Op string

const (
	OpUpsert Op = "upsert"
	OpDelete Op = "delete"
)

// Confirmation is the eventual outcome of a background write. Err is nil
// when the sheet accepted the change.
type Confirmation struct {
	Collection string
	Op         Op
	Key        string
	Err        error
}

// Remote binds a collection to its sheet endpoint. Delete may be nil for
// collections whose rows are only ever rewritten, never removed.
type Remote[T any] struct {
	List   func(ctx context.Context) ([]T, error)
	Upsert func(ctx context.Context, item T) error
	Delete func(ctx context.Context, key string) error
}

// CollectionConfig carries everything a [Collection] needs. Key and
// Remote.List and Remote.Upsert are mandatory; the rest tune behavior.
type CollectionConfig[T any] struct {
	// Name labels log lines and confirmations.
	Name string

	// Key extracts the stable identity of an item.
	Key func(item T) string

	// NewKey mints an identity for items added without one. SetKey writes
	// it back. Both may be nil when callers always supply keys.
	NewKey func() string
	SetKey func(item T, key string) T

	// ConflictEqual reports whether the locally edited fields of two
	// versions agree. When they differ the local version survives a
	// refresh until its background write lands. Nil means the remote
	// version always wins.
	ConflictEqual func(local, remote T) bool

	// Reconcile, when set, replaces the ConflictEqual rule: it merges a
	// local and remote version of the same item and reports whether the
	// merged result should be written back to the sheet.
	Reconcile func(local, remote T) (merged T, writeBack bool)

	Cache    *store.Cache
	CacheKey string
	Remote   Remote[T]
	Logger   *logger.Logger
}

// Collection is a cached, remotely synchronized list of items. Reads never
// touch the network; Refresh reconciles the remote listing into the local
// state under the merge rule documented on [Collection.Refresh].
type Collection[T any] struct {
	cfg CollectionConfig[T]

	mu         sync.RWMutex
	items      []T
	tombstones map[string]bool // key -> remote delete confirmed

	persistMu sync.Mutex

	confirmations chan Confirmation
	writeTimeout  time.Duration
}

// NewCollection builds a collection; call [Collection.Initialize] before
// reading from it.
func NewCollection[T any](cfg CollectionConfig[T]) *Collection[T] {
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return &Collection[T]{
		cfg:           cfg,
		tombstones:    map[string]bool{},
		confirmations: make(chan Confirmation, 64),
		writeTimeout:  30 * time.Second,
	}
}

// Initialize loads the cached state synchronously, then starts a background
// refresh. The caller can render immediately with whatever was cached.
func (c *Collection[T]) Initialize(ctx context.Context) {
	var cached []T
	if c.cfg.Cache.Read(c.cfg.CacheKey, &cached) {
		c.mu.Lock()
		c.items = cached
		c.mu.Unlock()
	}

	go func() {
		if err := c.Refresh(ctx); err != nil {
			c.cfg.Logger.Warn().Err(err).Str("collection", c.cfg.Name).Msg("initial refresh failed, serving cache")
		}
	}()
}

// persist writes the current state to the cache. Writes are serialized
// and the snapshot is taken only once the persist slot is held, so a
// mutation that lands between a caller's state change and its cache write
// can never be clobbered by the staler snapshot.
func (c *Collection[T]) persist() {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.RLock()
	snapshot := make([]T, len(c.items))
	copy(snapshot, c.items)
	c.mu.RUnlock()

	c.cfg.Cache.Write(c.cfg.CacheKey, snapshot)
}

// Items returns a snapshot copy of the current state.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with the given key, if present.
func (c *Collection[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.cfg.Key(item) == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len reports the number of items without copying.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Confirmations exposes the outcomes of background writes. The channel is
// buffered; when nobody drains it, old outcomes are dropped.
func (c *Collection[T]) Confirmations() <-chan Confirmation {
	return c.confirmations
}

// Refresh lists the remote collection and reconciles it into local state:
//
//   - items pending local deletion are discarded from the remote listing;
//   - when both sides have an item and the locally edited fields differ,
//     the local version wins (its write is still in flight);
//   - remote-only items are taken as-is;
//   - local-only items are appended after the remote ones, preserving the
//     remote ordering for everything the sheet knows about.
//
// A failed listing leaves local state untouched and returns the error, so
// callers can tell "sheet is empty" from "sheet is unreachable".
func (c *Collection[T]) Refresh(ctx context.Context) error {
	if c.cfg.Remote.List == nil {
		return nil
	}

	remote, err := c.cfg.Remote.List(ctx)
	if err != nil {
		return err
	}

	var writeBacks []T

	c.mu.Lock()
	local := make(map[string]T, len(c.items))
	localOrder := make([]string, 0, len(c.items))
	for _, item := range c.items {
		key := c.cfg.Key(item)
		local[key] = item
		localOrder = append(localOrder, key)
	}

	merged := make([]T, 0, len(remote)+len(c.items))
	seen := make(map[string]bool, len(remote))
	for _, remoteItem := range remote {
		key := c.cfg.Key(remoteItem)
		seen[key] = true
		if _, deleted := c.tombstones[key]; deleted {
			continue
		}
		localItem, exists := local[key]
		switch {
		case !exists:
			merged = append(merged, remoteItem)
		case c.cfg.Reconcile != nil:
			result, writeBack := c.cfg.Reconcile(localItem, remoteItem)
			merged = append(merged, result)
			if writeBack {
				writeBacks = append(writeBacks, result)
			}
		case c.cfg.ConflictEqual != nil && !c.cfg.ConflictEqual(localItem, remoteItem):
			merged = append(merged, localItem)
		default:
			merged = append(merged, remoteItem)
		}
	}
	for _, key := range localOrder {
		if !seen[key] {
			merged = append(merged, local[key])
		}
	}
	c.items = merged

	// A tombstone is kept until the sheet both confirmed the delete and
	// stopped listing the row; only then can it no longer resurrect.
	for key, confirmed := range c.tombstones {
		if confirmed && !seen[key] {
			delete(c.tombstones, key)
		}
	}
	c.mu.Unlock()

	c.persist()

	for _, item := range writeBacks {
		c.pushUpsert(item)
	}
	return nil
}

// Add stores the item locally and pushes it to the sheet in the
// background. An item without a key gets one minted; the stored item is
// returned either way.
func (c *Collection[T]) Add(item T) T {
	if c.cfg.Key(item) == "" && c.cfg.NewKey != nil && c.cfg.SetKey != nil {
		item = c.cfg.SetKey(item, c.cfg.NewKey())
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()

	c.persist()
	c.pushUpsert(item)
	return item
}

// Update applies mutate to the item with the given key, stores the result
// locally and pushes it in the background. Unknown keys are a no-op.
func (c *Collection[T]) Update(key string, mutate func(item T) T) (T, bool) {
	var updated T
	found := false

	c.mu.Lock()
	for i, item := range c.items {
		if c.cfg.Key(item) == key {
			updated = mutate(item)
			c.items[i] = updated
			found = true
			break
		}
	}
	c.mu.Unlock()

	if !found {
		return updated, false
	}

	c.persist()
	c.pushUpsert(updated)
	return updated, true
}

// Remove drops the item locally and asks the sheet to delete it in the
// background. The key is tombstoned first, so a refresh racing the delete
// cannot bring the item back.
func (c *Collection[T]) Remove(key string) {
	c.mu.Lock()
	c.tombstones[key] = false
	kept := c.items[:0:0]
	for _, item := range c.items {
		if c.cfg.Key(item) != key {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.mu.Unlock()

	c.persist()

	if c.cfg.Remote.Delete == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.writeTimeout)
		defer cancel()

		err := c.cfg.Remote.Delete(ctx, key)
		if err == nil {
			c.mu.Lock()
			if _, ok := c.tombstones[key]; ok {
				c.tombstones[key] = true
			}
			c.mu.Unlock()
		} else {
			c.cfg.Logger.Warn().Err(err).Str("collection", c.cfg.Name).Str("key", key).Msg("remote delete failed")
		}
		c.confirm(Confirmation{Collection: c.cfg.Name, Op: OpDelete, Key: key, Err: err})
	}()
}

// pushUpsert writes the item to the sheet without blocking the caller.
func (c *Collection[T]) pushUpsert(item T) {
	if c.cfg.Remote.Upsert == nil {
		return
	}
	key := c.cfg.Key(item)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.writeTimeout)
		defer cancel()

		err := c.cfg.Remote.Upsert(ctx, item)
		if err != nil {
			c.cfg.Logger.Warn().Err(err).Str("collection", c.cfg.Name).Str("key", key).Msg("remote upsert failed")
		}
		c.confirm(Confirmation{Collection: c.cfg.Name, Op: OpUpsert, Key: key, Err: err})
	}()
}

func (c *Collection[T]) confirm(conf Confirmation) {
	select {
	case c.confirmations <- conf:
	default:
		c.cfg.Logger.Debug().Str("collection", conf.Collection).Str("key", conf.Key).Msg("confirmation dropped, channel full")
	}
}

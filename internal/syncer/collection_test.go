// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/store"
	"github.com/northstarhouse/strategyhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemote is a scriptable stand-in for a sheet endpoint.
type fakeRemote struct {
	mu      sync.Mutex
	list    []models.Todo
	listErr error

	upserts []models.Todo
	deletes []string

	upsertErr error
	deleteErr error
}

func (f *fakeRemote) List(ctx context.Context) ([]models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Todo, len(f.list))
	copy(out, f.list)
	return out, nil
}

func (f *fakeRemote) Upsert(ctx context.Context, todo models.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, todo)
	return f.upsertErr
}

func (f *fakeRemote) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	return f.deleteErr
}

func (f *fakeRemote) setList(todos []models.Todo, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = todos
	f.listErr = err
}

func (f *fakeRemote) deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.deletes))
	copy(out, f.deletes)
	return out
}

func newTodoCollection(t *testing.T, cache *store.Cache, remote *fakeRemote) *Collection[models.Todo] {
	t.Helper()
	counter := 0
	return NewCollection(CollectionConfig[models.Todo]{
		Name: "todos",
		Key:  func(td models.Todo) string { return td.ID },
		NewKey: func() string {
			counter++
			return string(rune('a' + counter - 1))
		},
		SetKey: func(td models.Todo, id string) models.Todo { td.ID = id; return td },
		ConflictEqual: func(local, remote models.Todo) bool {
			return local.Done == remote.Done && local.Text == remote.Text
		},
		Cache:    cache,
		CacheKey: store.KeyMajorTodos,
		Remote: Remote[models.Todo]{
			List:   remote.List,
			Upsert: remote.Upsert,
			Delete: remote.Delete,
		},
		Logger: logger.Nop(),
	})
}

func newTestCache(t *testing.T) *store.Cache {
	t.Helper()
	return store.NewCache(store.NewMemoryStore(), logger.Nop())
}

func ids(todos []models.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, td := range todos {
		out = append(out, td.ID)
	}
	return out
}

func waitConfirmation(t *testing.T, c *Collection[models.Todo]) Confirmation {
	t.Helper()
	select {
	case conf := <-c.Confirmations():
		return conf
	case <-time.After(2 * time.Second):
		t.Fatal("no confirmation arrived")
		return Confirmation{}
	}
}

func TestInitialize_ServesCacheBeforeRemoteAnswers(t *testing.T) {
	cache := newTestCache(t)
	cache.Write(store.KeyMajorTodos, []models.Todo{{ID: "cached", Text: "from cache"}})

	release := make(chan struct{})
	remote := &fakeRemote{}
	c := NewCollection(CollectionConfig[models.Todo]{
		Name: "todos",
		Key:  func(td models.Todo) string { return td.ID },
		Remote: Remote[models.Todo]{
			List: func(ctx context.Context) ([]models.Todo, error) {
				<-release
				return []models.Todo{{ID: "fresh", Text: "from sheet"}}, nil
			},
			Upsert: remote.Upsert,
		},
		Cache:    cache,
		CacheKey: store.KeyMajorTodos,
		Logger:   logger.Nop(),
	})

	c.Initialize(context.Background())

	// the slow remote must not delay the cached answer
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "cached", items[0].ID)

	close(release)
	require.Eventually(t, func() bool {
		items := c.Items()
		return len(items) == 1 && items[0].ID == "fresh"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRefresh_FailureLeavesLocalStateIntact(t *testing.T) {
	cache := newTestCache(t)
	remote := &fakeRemote{}
	remote.setList([]models.Todo{{ID: "1", Text: "keep me"}}, nil)

	c := newTodoCollection(t, cache, remote)
	require.NoError(t, c.Refresh(context.Background()))
	require.Len(t, c.Items(), 1)

	remote.setList(nil, errors.New("script unreachable"))
	err := c.Refresh(context.Background())

	require.Error(t, err)
	assert.Len(t, c.Items(), 1, "a failed listing must not wipe local state")
}

func TestRefresh_EmptyListingClearsState(t *testing.T) {
	cache := newTestCache(t)
	remote := &fakeRemote{}
	remote.setList([]models.Todo{{ID: "1"}}, nil)

	c := newTodoCollection(t, cache, remote)
	require.NoError(t, c.Refresh(context.Background()))
	require.Len(t, c.Items(), 1)

	remote.setList([]models.Todo{}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	assert.Empty(t, c.Items(), "a successful empty listing means the sheet really is empty")
}

func TestRefresh_LocalEditWinsWhileWriteInFlight(t *testing.T) {
	cache := newTestCache(t)
	remote := &fakeRemote{}
	remote.setList([]models.Todo{{ID: "1", Text: "water plants", Done: false}}, nil)

	c := newTodoCollection(t, cache, remote)
	require.NoError(t, c.Refresh(context.Background()))

	_, ok := c.Update("1", func(td models.Todo) models.Todo {
		td.Done = true
		return td
	})
	require.True(t, ok)
	waitConfirmation(t, c)

	// the sheet still answers with the stale version
	require.NoError(t, c.Refresh(context.Background()))

	item, ok := c.Get("1")
	require.True(t, ok)
	assert.True(t, item.Done, "local edit must survive a refresh against stale remote data")
}

func TestRefresh_RemoteOrderingFirstThenLocalOnly(t *testing.T) {
	cache := newTestCache(t)
	remote := &fakeRemote{}
	remote.setList([]models.Todo{{ID: "1"}}, nil)

	c := newTodoCollection(t, cache, remote)
	require.NoError(t, c.Refresh(context.Background()))

	c.Add(models.Todo{ID: "local-1", Text: "only here"})
	waitConfirmation(t, c)

	// the sheet reordered and grew, but has not seen local-1 yet
	remote.setList([]models.Todo{{ID: "3"}, {ID: "1"}, {ID: "2"}}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, []string{"3", "1", "2", "local-1"}, ids(c.Items()))
}

func TestRemove_TombstoneBlocksResurrection(t *testing.T) {
	cache := newTestCache(t)

	deleteStarted := make(chan struct{})
	deleteRelease := make(chan struct{})
	var deleteOnce sync.Once

	remote := &fakeRemote{}
	remote.setList([]models.Todo{{ID: "1"}, {ID: "2"}}, nil)

	c := NewCollection(CollectionConfig[models.Todo]{
		Name: "todos",
		Key:  func(td models.Todo) string { return td.ID },
		Remote: Remote[models.Todo]{
			List:   remote.List,
			Upsert: remote.Upsert,
			Delete: func(ctx context.Context, id string) error {
				deleteOnce.Do(func() { close(deleteStarted) })
				<-deleteRelease
				return nil
			},
		},
		Cache:    cache,
		CacheKey: store.KeyMajorTodos,
		Logger:   logger.Nop(),
	})
	require.NoError(t, c.Refresh(context.Background()))

	c.Remove("1")
	<-deleteStarted

	// refresh races the in-flight delete; the sheet still lists the row
	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, []string{"2"}, ids(c.Items()), "a deleted item must not come back mid-delete")

	close(deleteRelease)
	conf := waitConfirmation(t, c)
	assert.Equal(t, OpDelete, conf.Op)
	require.NoError(t, conf.Err)

	// once the sheet stops listing the row the tombstone is retired
	remote.setList([]models.Todo{{ID: "2"}}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	c.mu.RLock()
	_, still := c.tombstones["1"]
	c.mu.RUnlock()
	assert.False(t, still, "confirmed and unlisted tombstones must be pruned")
}

func TestRemove_FailedDeleteKeepsTombstone(t *testing.T) {
	cache := newTestCache(t)
	remote := &fakeRemote{deleteErr: errors.New("script rejected")}
	remote.setList([]models.Todo{{ID: "1"}}, nil)

	c := newTodoCollection(t, cache, remote)
	require.NoError(t, c.Refresh(context.Background()))

	c.Remove("1")
	conf := waitConfirmation(t, c)
	require.Error(t, conf.Err)

	// the sheet still lists the row, the item must stay locally deleted
	require.NoError(t, c.Refresh(context.Background()))
	assert.Empty(t, c.Items())
}

func TestAdd_MintsKeyAndPushesInBackground(t *testing.T) {
	cache := newTestCache(t)
	remote := &fakeRemote{}
	c := newTodoCollection(t, cache, remote)

	added := c.Add(models.Todo{Text: "new task"})

	require.NotEmpty(t, added.ID)
	conf := waitConfirmation(t, c)
	assert.Equal(t, OpUpsert, conf.Op)
	assert.Equal(t, added.ID, conf.Key)
	require.NoError(t, conf.Err)

	remote.mu.Lock()
	defer remote.mu.Unlock()
	require.Len(t, remote.upserts, 1)
	assert.Equal(t, "new task", remote.upserts[0].Text)
}

func TestAdd_KeepsCallerSuppliedKey(t *testing.T) {
	cache := newTestCache(t)
	remote := &fakeRemote{}
	c := newTodoCollection(t, cache, remote)

	added := c.Add(models.Todo{ID: "mine", Text: "t"})

	assert.Equal(t, "mine", added.ID)
	waitConfirmation(t, c)
}

func TestUpdate_UnknownKeyIsNoop(t *testing.T) {
	cache := newTestCache(t)
	remote := &fakeRemote{}
	c := newTodoCollection(t, cache, remote)

	_, ok := c.Update("ghost", func(td models.Todo) models.Todo { return td })

	assert.False(t, ok)
	remote.mu.Lock()
	defer remote.mu.Unlock()
	assert.Empty(t, remote.upserts)
}

func TestRefresh_PersistsMergedStateToCache(t *testing.T) {
	cache := newTestCache(t)
	remote := &fakeRemote{}
	remote.setList([]models.Todo{{ID: "1", Text: "persisted"}}, nil)

	c := newTodoCollection(t, cache, remote)
	require.NoError(t, c.Refresh(context.Background()))

	var cached []models.Todo
	require.True(t, cache.Read(store.KeyMajorTodos, &cached))
	require.Len(t, cached, 1)
	assert.Equal(t, "persisted", cached[0].Text)
}

func TestRefresh_ReconcileMergesAndWritesBack(t *testing.T) {
	cache := newTestCache(t)

	var (
		mu      sync.Mutex
		upserts []models.Event
	)
	c := NewCollection(CollectionConfig[models.Event]{
		Name:      "events",
		Key:       func(e models.Event) string { return e.ID },
		Reconcile: reconcileEvent,
		Remote: Remote[models.Event]{
			List: func(ctx context.Context) ([]models.Event, error) {
				return []models.Event{{ID: "e1", Name: "Garden Tour"}}, nil
			},
			Upsert: func(ctx context.Context, e models.Event) error {
				mu.Lock()
				upserts = append(upserts, e)
				mu.Unlock()
				return nil
			},
		},
		Cache:    cache,
		CacheKey: store.KeyEvents,
		Logger:   logger.Nop(),
	})

	// cached copy carries a planning checklist the sheet lost
	c.mu.Lock()
	c.items = []models.Event{{
		ID:                "e1",
		Name:              "Garden Tour",
		PlanningChecklist: models.Checklist{"venue": true},
	}}
	c.mu.Unlock()

	require.NoError(t, c.Refresh(context.Background()))

	item, ok := c.Get("e1")
	require.True(t, ok)
	assert.True(t, item.PlanningChecklist["venue"], "cached checklist must survive")

	conf := <-c.Confirmations()
	require.NoError(t, conf.Err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, upserts, 1, "repaired row must be written back")
	assert.True(t, upserts[0].PlanningChecklist["venue"])
}

// brokenKV simulates a storage backend that rejects everything.
type brokenKV struct{}

func (brokenKV) Get(string) ([]byte, bool, error) { return nil, false, errors.New("backend broken") }
func (brokenKV) Put(string, []byte) error         { return errors.New("backend broken") }
func (brokenKV) Delete(string) error              { return errors.New("backend broken") }
func (brokenKV) Close() error                     { return nil }

func TestCollection_BrokenBackendStillMutatesInMemory(t *testing.T) {
	cache := store.NewCache(brokenKV{}, logger.Nop())
	remote := &fakeRemote{}
	c := newTodoCollection(t, cache, remote)

	added := c.Add(models.Todo{Text: "call the roofer"})
	assert.Equal(t, 1, c.Len())

	_, ok := c.Update(added.ID, func(td models.Todo) models.Todo {
		td.Done = true
		return td
	})
	require.True(t, ok)
	todo, _ := c.Get(added.ID)
	assert.True(t, todo.Done)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, 1, c.Len())

	c.Remove(added.ID)
	assert.Equal(t, 0, c.Len())
}

// gatedKV lets a test hold a cache write open and order the writes that
// follow it.
type gatedKV struct {
	entered chan struct{}
	release chan struct{}

	mu   sync.Mutex
	last []byte
}

func (g *gatedKV) Get(string) ([]byte, bool, error) { return nil, false, nil }

func (g *gatedKV) Put(_ string, value []byte) error {
	g.entered <- struct{}{}
	<-g.release
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last = append([]byte(nil), value...)
	return nil
}

func (g *gatedKV) Delete(string) error { return nil }
func (g *gatedKV) Close() error        { return nil }

func (g *gatedKV) lastPut() []byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

func TestRefresh_PersistRacingLocalAddKeepsTheAdd(t *testing.T) {
	kv := &gatedKV{entered: make(chan struct{}), release: make(chan struct{})}
	cache := store.NewCache(kv, logger.Nop())
	remote := &fakeRemote{}
	remote.setList([]models.Todo{{ID: "r1", Text: "from the sheet"}}, nil)
	c := newTodoCollection(t, cache, remote)

	refreshDone := make(chan error, 1)
	go func() { refreshDone <- c.Refresh(context.Background()) }()

	// The refresh has merged its listing and is mid-persist.
	<-kv.entered

	addDone := make(chan struct{})
	go func() {
		c.Add(models.Todo{ID: "local-1", Text: "added mid-persist"})
		close(addDone)
	}()
	require.Eventually(t, func() bool { return c.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	kv.release <- struct{}{}
	// The add's write starts only after the refresh write landed, and it
	// snapshots the state including both items.
	<-kv.entered
	kv.release <- struct{}{}

	require.NoError(t, <-refreshDone)
	<-addDone

	var persisted []models.Todo
	require.NoError(t, json.Unmarshal(kv.lastPut(), &persisted))
	assert.Len(t, persisted, 2, "the last write to land carries the local add")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package syncer

import (
	"context"
	"strconv"
	"sync"

	"github.com/northstarhouse/strategyhub/internal/config"
	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/sheets"
	"github.com/northstarhouse/strategyhub/internal/store"
	"github.com/northstarhouse/strategyhub/internal/utils"
	"github.com/northstarhouse/strategyhub/models"
)

// Services bundles every synchronized collection the dashboard renders.
type Services struct {
	Todos         *Collection[models.Todo]
	Events        *Collection[models.Event]
	Newsletter    *Collection[models.NewsletterEntry]
	Posting       *Collection[models.PostingEntry]
	PressReleases *Collection[models.PressReleaseEntry]
	Bookings      *Collection[models.Booking]

	Metrics          *Aggregate[*models.Metrics]
	Sections         *Aggregate[map[string]*models.SectionSnapshot]
	QuarterlyUpdates *Aggregate[[]models.QuarterlyUpdate]

	Watcher *SheetWatcher

	gateway sheets.Gateway
	cache   *store.Cache
	ids     *utils.IDGenerator

	mu            sync.RWMutex
	bookingsTotal int
	flyers        map[string]string
}

// NewServices wires every collection to its sheet endpoint. Nothing is
// loaded yet; call [Services.Initialize].
func NewServices(gateway sheets.Gateway, cache *store.Cache, cfg config.Watch, log *logger.Logger) *Services {
	s := &Services{
		gateway: gateway,
		cache:   cache,
		ids:     utils.NewIDGenerator(),
		flyers:  map[string]string{},
	}
	cache.Read(store.KeyEventFlyers, &s.flyers)
	if s.flyers == nil {
		s.flyers = map[string]string{}
	}

	s.Todos = NewCollection(CollectionConfig[models.Todo]{
		Name:   "todos",
		Key:    func(t models.Todo) string { return t.ID },
		NewKey: s.ids.Generate,
		SetKey: func(t models.Todo, id string) models.Todo { t.ID = id; return t },
		ConflictEqual: func(local, remote models.Todo) bool {
			return local.Done == remote.Done && local.Text == remote.Text
		},
		Cache:    cache,
		CacheKey: store.KeyMajorTodos,
		Remote: Remote[models.Todo]{
			List:   gateway.FetchMajorTodos,
			Upsert: gateway.SaveMajorTodo,
			Delete: gateway.DeleteMajorTodo,
		},
		Logger: log,
	})

	s.Events = NewCollection(CollectionConfig[models.Event]{
		Name:      "events",
		Key:       func(e models.Event) string { return e.ID },
		NewKey:    s.ids.Generate,
		SetKey:    func(e models.Event, id string) models.Event { e.ID = id; return e },
		Reconcile: reconcileEvent,
		Cache:     cache,
		CacheKey:  store.KeyEvents,
		Remote: Remote[models.Event]{
			List:   gateway.ListEvents,
			Upsert: gateway.SaveEvent,
			Delete: gateway.DeleteEvent,
		},
		Logger: log,
	})

	s.Newsletter = NewCollection(CollectionConfig[models.NewsletterEntry]{
		Name: "newsletter",
		Key:  func(e models.NewsletterEntry) string { return strconv.Itoa(e.Month) },
		ConflictEqual: func(local, remote models.NewsletterEntry) bool {
			return local == remote
		},
		Cache:    cache,
		CacheKey: store.KeyNewsletter,
		Remote: Remote[models.NewsletterEntry]{
			List:   gateway.NewsletterList,
			Upsert: gateway.NewsletterUpsert,
		},
		Logger: log,
	})

	s.Posting = NewCollection(CollectionConfig[models.PostingEntry]{
		Name: "posting",
		Key:  func(e models.PostingEntry) string { return strconv.Itoa(e.Month) },
		ConflictEqual: func(local, remote models.PostingEntry) bool {
			if local.Completed != remote.Completed || len(local.Entries) != len(remote.Entries) {
				return false
			}
			for slot, text := range local.Entries {
				if remote.Entries[slot] != text {
					return false
				}
			}
			return true
		},
		Cache:    cache,
		CacheKey: store.KeyPosting,
		Remote: Remote[models.PostingEntry]{
			List: func(ctx context.Context) ([]models.PostingEntry, error) {
				rows, err := gateway.PostingList(ctx)
				if err != nil {
					return nil, err
				}
				entries := make([]models.PostingEntry, 0, len(rows))
				for _, row := range rows {
					entries = append(entries, models.PostingEntryFromRow(row))
				}
				return entries, nil
			},
			Upsert: func(ctx context.Context, entry models.PostingEntry) error {
				return gateway.PostingUpsert(ctx, models.PostingRowFromEntry(entry))
			},
		},
		Logger: log,
	})

	s.PressReleases = NewCollection(CollectionConfig[models.PressReleaseEntry]{
		Name: "press-releases",
		Key:  func(e models.PressReleaseEntry) string { return strconv.Itoa(e.Month) },
		ConflictEqual: func(local, remote models.PressReleaseEntry) bool {
			return local == remote
		},
		Cache:    cache,
		CacheKey: store.KeyPressReleases,
		Remote: Remote[models.PressReleaseEntry]{
			List:   gateway.PressReleaseList,
			Upsert: gateway.PressReleaseUpsert,
		},
		Logger: log,
	})

	s.Bookings = NewCollection(CollectionConfig[models.Booking]{
		Name: "bookings",
		Key:  func(b models.Booking) string { return strconv.Itoa(b.RowIndex) },
		ConflictEqual: func(local, remote models.Booking) bool {
			return local == remote
		},
		Cache:    cache,
		CacheKey: store.KeyBookings,
		Remote: Remote[models.Booking]{
			List: func(ctx context.Context) ([]models.Booking, error) {
				entries, count, err := gateway.BookingsList(ctx)
				if err != nil {
					return nil, err
				}
				s.mu.Lock()
				s.bookingsTotal = count
				s.mu.Unlock()
				return entries, nil
			},
			Upsert: gateway.BookingsUpdate,
		},
		Logger: log,
	})

	s.Metrics = NewAggregate("metrics", gateway.FetchMetrics, cache, store.KeyMetrics, log)
	s.Sections = NewAggregate("sections", gateway.FetchSectionSnapshots, cache, store.KeySections, log)
	s.QuarterlyUpdates = NewAggregate("quarterly-updates", gateway.FetchQuarterlyUpdates, cache, store.KeyQuarterly, log)

	var watchIDs []string
	for _, id := range []string{cfg.BookingsSheetID, cfg.VoicemailsSheetID} {
		if id != "" {
			watchIDs = append(watchIDs, id)
		}
	}
	s.Watcher = NewSheetWatcher(gateway.SheetLastUpdated, cache, cfg.Interval, watchIDs, log)

	return s
}

// reconcileEvent keeps the planning checklist alive when the sheet lost
// it: an empty remote checklist next to a populated cached one means the
// row was rewritten by an older client, so the cached one wins and is
// written back.
func reconcileEvent(local, remote models.Event) (models.Event, bool) {
	if len(remote.PlanningChecklist) == 0 && len(local.PlanningChecklist) > 0 {
		remote.PlanningChecklist = local.PlanningChecklist
		return remote, true
	}
	return remote, false
}

// Initialize loads every cached collection and kicks off the background
// refreshes. Cached data is readable as soon as this returns.
func (s *Services) Initialize(ctx context.Context) {
	s.Todos.Initialize(ctx)
	s.Events.Initialize(ctx)
	s.Newsletter.Initialize(ctx)
	s.Posting.Initialize(ctx)
	s.PressReleases.Initialize(ctx)
	s.Bookings.Initialize(ctx)
	s.Metrics.Initialize(ctx)
	s.Sections.Initialize(ctx)
	s.QuarterlyUpdates.Initialize(ctx)
	s.Watcher.Start(ctx)
}

// Refresh re-syncs every collection, returning the first error seen. All
// collections are attempted regardless.
func (s *Services) Refresh(ctx context.Context) error {
	var first error
	for _, refresh := range []func(context.Context) error{
		s.Todos.Refresh,
		s.Events.Refresh,
		s.Newsletter.Refresh,
		s.Posting.Refresh,
		s.PressReleases.Refresh,
		s.Bookings.Refresh,
		s.Metrics.Refresh,
		s.Sections.Refresh,
		s.QuarterlyUpdates.Refresh,
	} {
		if err := refresh(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// BookingsCount reports the total bookings known to the sheet, which may
// exceed the listed entries when the sheet truncates its answer.
func (s *Services) BookingsCount() int {
	s.mu.RLock()
	total := s.bookingsTotal
	s.mu.RUnlock()
	if n := s.Bookings.Len(); n > total {
		return n
	}
	return total
}

// AttachFlyer uploads event flyer artwork to the blob endpoint and remembers
// the hosted URL under the event's identifier. Flyers live in their own cache
// slot; the event row itself never carries image data.
func (s *Services) AttachFlyer(ctx context.Context, eventID, filename, mimeType string, data []byte) (string, error) {
	url, err := s.gateway.UploadImage(ctx, filename, mimeType, data)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.flyers[eventID] = url
	snapshot := make(map[string]string, len(s.flyers))
	for id, u := range s.flyers {
		snapshot[id] = u
	}
	s.mu.Unlock()

	s.cache.Write(store.KeyEventFlyers, snapshot)
	return url, nil
}

// FlyerURL returns the hosted flyer for an event, or "" when none was
// uploaded.
func (s *Services) FlyerURL(eventID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flyers[eventID]
}

// Close stops background work. Pending fire-and-forget writes are not
// awaited; their confirmations are simply never read.
func (s *Services) Close() {
	s.Watcher.Stop()
}

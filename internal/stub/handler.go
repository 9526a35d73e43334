// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

// Package stub is a local double of the spreadsheet web-app endpoint. It
// speaks the same wire dialect (GET ?action reads, POST action-bodied
// writes) against a sqlite file, so the dashboard can be developed and
// demoed without touching the real spreadsheet.
package stub

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	store  *Store
	logger *logger.Logger
}

func NewHandler(store *Store, log *logger.Logger) *Handler {
	log.Info().Msg("sheet stub handler created")
	return &Handler{store: store, logger: log}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/", h.dispatchRead)
	router.Post("/", h.dispatchWrite)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		h.logger.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Dur("duration", time.Since(start)).
			Send()
	})
}

// writeResult encodes the answer and records the request metrics.
func (h *Handler) writeResult(w http.ResponseWriter, action string, started time.Time, v any, err error) {
	requestDuration.WithLabelValues(action).Observe(time.Since(started).Seconds())

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		requestsTotal.WithLabelValues(action, "error").Inc()
		h.logger.Err(err).Str("action", action).Msg("action failed")
		_ = json.NewEncoder(w).Encode(models.Envelope{Success: false, Error: err.Error()})
		return
	}
	requestsTotal.WithLabelValues(action, "ok").Inc()
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) dispatchRead(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	action := r.URL.Query().Get("action")

	switch action {
	case "getMajorTodos":
		todos, err := h.store.ListTodos()
		h.writeResult(w, action, started, models.TodosResponse{
			Envelope: models.Envelope{Success: true}, Todos: todos,
		}, err)

	case "getMetrics":
		metrics, err := h.computeMetrics()
		h.writeResult(w, action, started, models.MetricsResponse{
			Envelope: models.Envelope{Success: true}, Metrics: metrics,
		}, err)

	case "getSectionSnapshots":
		sections, err := h.computeSnapshots()
		h.writeResult(w, action, started, models.SnapshotsResponse{
			Envelope: models.Envelope{Success: true}, Sections: sections,
		}, err)

	case "getQuarterlyUpdates":
		updates, err := h.store.ListQuarterlyUpdates()
		h.writeResult(w, action, started, models.QuarterlyUpdatesResponse{
			Envelope: models.Envelope{Success: true}, Updates: updates,
		}, err)

	case "list":
		events, err := h.store.ListEvents()
		h.writeResult(w, action, started, models.EventsResponse{
			Envelope: models.Envelope{Success: true}, Events: events,
		}, err)

	case "newsletter_list":
		entries, err := h.store.ListNewsletter()
		h.writeResult(w, action, started, models.NewsletterListResponse{
			Envelope: models.Envelope{Success: true}, Entries: entries,
		}, err)

	case "posting_list":
		entries, err := h.store.ListPosting()
		h.writeResult(w, action, started, models.PostingListResponse{
			Envelope: models.Envelope{Success: true}, Entries: entries,
		}, err)

	case "press_release_list":
		entries, err := h.store.ListPressReleases()
		h.writeResult(w, action, started, models.PressReleaseListResponse{
			Envelope: models.Envelope{Success: true}, Entries: entries,
		}, err)

	case "bookings_list":
		entries, count, err := h.store.ListBookings()
		h.writeResult(w, action, started, models.BookingsListResponse{
			Envelope: models.Envelope{Success: true}, Entries: entries, Count: count,
		}, err)

	case "getSheetLastUpdated":
		updated := map[string]string{}
		now := time.Now().UTC().Format(time.RFC3339)
		for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
			if id != "" {
				updated[id] = now
			}
		}
		h.writeResult(w, action, started, models.SheetLastUpdatedResponse{
			Envelope: models.Envelope{Success: true}, Updated: updated,
		}, nil)

	default:
		h.writeResult(w, "unknown", started, nil, fmt.Errorf("unknown action %q", action))
	}
}

// writeRequest is the superset body of every POST action; only the field
// matching the action is populated by the client.
type writeRequest struct {
	Action string `json:"action"`

	Todo   *models.Todo          `json:"todo"`
	Event  *models.Event         `json:"event"`
	Form   *models.QuarterlyForm `json:"form"`
	Review *models.ReviewUpdate  `json:"review"`
	Entry  json.RawMessage       `json:"entry"`
	ID     string                `json:"id"`

	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

func (h *Handler) dispatchWrite(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	// the real endpoint receives its JSON body as text/plain
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeResult(w, "unknown", started, nil, err)
		return
	}
	var req writeRequest
	if err = json.Unmarshal(body, &req); err != nil {
		h.writeResult(w, "unknown", started, nil, fmt.Errorf("invalid JSON body: %w", err))
		return
	}

	ok := models.ResultResponse{Envelope: models.Envelope{Success: true}}

	switch req.Action {
	case "saveMajorTodo":
		if req.Todo == nil {
			h.writeResult(w, req.Action, started, nil, fmt.Errorf("missing todo"))
			return
		}
		h.writeResult(w, req.Action, started, ok, h.store.SaveTodo(*req.Todo))

	case "deleteMajorTodo":
		h.writeResult(w, req.Action, started, ok, h.store.DeleteTodo(req.ID))

	case "submitQuarterlyUpdate":
		if req.Form == nil {
			h.writeResult(w, req.Action, started, nil, fmt.Errorf("missing form"))
			return
		}
		h.writeResult(w, req.Action, started, ok, h.store.SaveQuarterlyUpdate(*req.Form))

	case "submitReviewUpdate":
		if req.Review == nil {
			h.writeResult(w, req.Action, started, nil, fmt.Errorf("missing review"))
			return
		}
		h.writeResult(w, req.Action, started, ok, h.store.SaveReview(*req.Review))

	case "upsert":
		if req.Event == nil {
			h.writeResult(w, req.Action, started, nil, fmt.Errorf("missing event"))
			return
		}
		h.writeResult(w, req.Action, started, ok, h.store.SaveEvent(*req.Event))

	case "delete":
		h.writeResult(w, req.Action, started, ok, h.store.DeleteEvent(req.ID))

	case "newsletter_upsert":
		var entry models.NewsletterEntry
		if err = json.Unmarshal(req.Entry, &entry); err != nil {
			h.writeResult(w, req.Action, started, nil, fmt.Errorf("invalid entry: %w", err))
			return
		}
		h.writeResult(w, req.Action, started, ok, h.store.UpsertNewsletter(entry))

	case "posting_upsert":
		var row models.PostingRow
		if err = json.Unmarshal(req.Entry, &row); err != nil {
			h.writeResult(w, req.Action, started, nil, fmt.Errorf("invalid entry: %w", err))
			return
		}
		h.writeResult(w, req.Action, started, ok, h.store.UpsertPosting(row))

	case "press_release_upsert":
		var entry models.PressReleaseEntry
		if err = json.Unmarshal(req.Entry, &entry); err != nil {
			h.writeResult(w, req.Action, started, nil, fmt.Errorf("invalid entry: %w", err))
			return
		}
		h.writeResult(w, req.Action, started, ok, h.store.UpsertPressRelease(entry))

	case "bookings_update":
		var booking models.Booking
		if err = json.Unmarshal(req.Entry, &booking); err != nil {
			h.writeResult(w, req.Action, started, nil, fmt.Errorf("invalid entry: %w", err))
			return
		}
		h.writeResult(w, req.Action, started, ok, h.store.UpdateBooking(booking))

	case "uploadImage":
		// nothing is stored; a deterministic fake URL is enough for the
		// dashboard's flyer preview
		h.writeResult(w, req.Action, started, models.UploadResponse{
			Envelope: models.Envelope{Success: true},
			Result:   "http://" + r.Host + "/files/" + req.Filename,
		}, nil)

	default:
		h.writeResult(w, "unknown", started, nil, fmt.Errorf("unknown action %q", req.Action))
	}
}

// computeMetrics derives the headline numbers the real spreadsheet
// aggregates across its tabs.
func (h *Handler) computeMetrics() (*models.Metrics, error) {
	events, err := h.store.ListEvents()
	if err != nil {
		return nil, err
	}

	eventsCount := len(events)
	return &models.Metrics{EventsCount: &eventsCount}, nil
}

func (h *Handler) computeSnapshots() (map[string]*models.SectionSnapshot, error) {
	sections := map[string]*models.SectionSnapshot{}
	for _, page := range models.SectionPages {
		sections[page.Key] = &models.SectionSnapshot{}
	}
	return sections, nil
}

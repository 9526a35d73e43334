// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package stub

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "stub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	handler := NewHandler(store, logger.Nop())
	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)
	return srv
}

func postAction(t *testing.T, srv *httptest.Server, body any, out any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/", "text/plain;charset=utf-8", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func getAction(t *testing.T, srv *httptest.Server, action string, out any) {
	t.Helper()
	resp, err := http.Get(srv.URL + "/?action=" + action)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestTodos_SaveListDelete(t *testing.T) {
	srv := newTestServer(t)

	var saved models.ResultResponse
	postAction(t, srv, map[string]any{
		"action": "saveMajorTodo",
		"todo":   models.Todo{ID: "t1", Text: "fix roof", CreatedAt: "2026-01-02"},
	}, &saved)
	require.True(t, saved.Success)

	var listed models.TodosResponse
	getAction(t, srv, "getMajorTodos", &listed)
	require.True(t, listed.Success)
	require.Len(t, listed.Todos, 1)
	assert.Equal(t, "fix roof", listed.Todos[0].Text)

	// replace, not duplicate
	postAction(t, srv, map[string]any{
		"action": "saveMajorTodo",
		"todo":   models.Todo{ID: "t1", Text: "fix roof", Done: true, CreatedAt: "2026-01-02"},
	}, &saved)

	getAction(t, srv, "getMajorTodos", &listed)
	require.Len(t, listed.Todos, 1)
	assert.True(t, listed.Todos[0].Done)

	var deleted models.ResultResponse
	postAction(t, srv, map[string]any{"action": "deleteMajorTodo", "id": "t1"}, &deleted)
	require.True(t, deleted.Success)

	getAction(t, srv, "getMajorTodos", &listed)
	assert.Empty(t, listed.Todos)
}

func TestEvents_UpsertKeepsChecklists(t *testing.T) {
	srv := newTestServer(t)

	var saved models.ResultResponse
	postAction(t, srv, map[string]any{
		"action": "upsert",
		"event": models.Event{
			ID:                "e1",
			Name:              "Garden Tour",
			PlanningChecklist: models.Checklist{"venue": true},
		},
	}, &saved)
	require.True(t, saved.Success)

	var listed models.EventsResponse
	getAction(t, srv, "list", &listed)
	require.Len(t, listed.Events, 1)
	assert.True(t, listed.Events[0].PlanningChecklist["venue"])
}

func TestQuarterly_ResubmitKeepsReview(t *testing.T) {
	srv := newTestServer(t)

	form := models.NewQuarterlyForm()
	form.FocusArea = "Gardens"
	form.Quarter = "Q2"
	form.Wins = "original"

	var out models.ResultResponse
	postAction(t, srv, map[string]any{"action": "submitQuarterlyUpdate", "form": form}, &out)
	require.True(t, out.Success)

	postAction(t, srv, map[string]any{
		"action": "submitReviewUpdate",
		"review": models.ReviewUpdate{FocusArea: "Gardens", Quarter: "Q2", StatusAfterReview: "On Track"},
	}, &out)
	require.True(t, out.Success)

	form.Wins = "revised"
	postAction(t, srv, map[string]any{"action": "submitQuarterlyUpdate", "form": form}, &out)
	require.True(t, out.Success)

	var listed models.QuarterlyUpdatesResponse
	getAction(t, srv, "getQuarterlyUpdates", &listed)
	require.Len(t, listed.Updates, 1)
	assert.Equal(t, "revised", listed.Updates[0].Payload.Wins)
	require.NotNil(t, listed.Updates[0].Payload.Review)
	assert.Equal(t, "On Track", listed.Updates[0].Payload.Review.StatusAfterReview)
}

func TestQuarterly_ReviewWithoutReportIsRejected(t *testing.T) {
	srv := newTestServer(t)

	var out models.ResultResponse
	postAction(t, srv, map[string]any{
		"action": "submitReviewUpdate",
		"review": models.ReviewUpdate{FocusArea: "Gardens", Quarter: "Q1"},
	}, &out)

	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "no report")
}

func TestBookings_AppendAndCount(t *testing.T) {
	srv := newTestServer(t)

	var out models.ResultResponse
	postAction(t, srv, map[string]any{
		"action": "bookings_update",
		"entry":  models.Booking{Name: "Wedding", Type: "private", Date: "2026-09-12"},
	}, &out)
	require.True(t, out.Success)

	var listed models.BookingsListResponse
	getAction(t, srv, "bookings_list", &listed)
	require.Len(t, listed.Entries, 1)
	assert.Equal(t, 1, listed.Count)
	assert.Equal(t, 1, listed.Entries[0].RowIndex, "sqlite assigns the row index")
}

func TestNewsletter_UpsertByMonth(t *testing.T) {
	srv := newTestServer(t)

	var out models.ResultResponse
	postAction(t, srv, map[string]any{
		"action": "newsletter_upsert",
		"entry":  models.NewsletterEntry{Month: 3, MainFeature: "spring recap"},
	}, &out)
	require.True(t, out.Success)

	postAction(t, srv, map[string]any{
		"action": "newsletter_upsert",
		"entry":  models.NewsletterEntry{Month: 3, MainFeature: "spring recap, revised"},
	}, &out)

	var listed models.NewsletterListResponse
	getAction(t, srv, "newsletter_list", &listed)
	require.Len(t, listed.Entries, 1)
	assert.Equal(t, "spring recap, revised", listed.Entries[0].MainFeature)
}

func TestUnknownAction_ReturnsEnvelopeError(t *testing.T) {
	srv := newTestServer(t)

	var out models.ResultResponse
	getAction(t, srv, "explode", &out)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "unknown action")

	postAction(t, srv, map[string]any{"action": "explode"}, &out)
	assert.False(t, out.Success)
}

func TestMetricsEndpoint_Serves(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSheetLastUpdated_EchoesIDs(t *testing.T) {
	srv := newTestServer(t)

	var out models.SheetLastUpdatedResponse
	resp, err := http.Get(srv.URL + "/?action=getSheetLastUpdated&ids=a,b")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	require.True(t, out.Success)
	assert.Len(t, out.Updated, 2)
	assert.NotEmpty(t, out.Updated["a"])
}

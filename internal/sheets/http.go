package sheets

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/northstarhouse/strategyhub/internal/config"
	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/utils"
	"github.com/northstarhouse/strategyhub/models"
)

type httpGateway struct {
	client     *utils.HTTPClient
	remote     config.Remote
	configured bool

	logger *logger.Logger
}

// NewHTTPGateway constructs the HTTP implementation of [Gateway] for the
// configured remote. A misconfigured remote still yields a usable gateway:
// every operation then returns [ErrNotConfigured] without touching the
// network, so the dashboard keeps running on cache alone.
func NewHTTPGateway(remote config.Remote, log *logger.Logger) Gateway {
	client := utils.NewHTTPClient()
	client.SetTimeout(remote.RequestTimeout)

	return &httpGateway{
		client:     client,
		remote:     remote,
		configured: remote.IsConfigured(),
		logger:     log,
	}
}

// IsConfigured implements [Gateway].
func (g *httpGateway) IsConfigured() bool {
	return g.configured
}

// statuser is satisfied by every wire response through the embedded
// [models.Envelope].
type statuser interface {
	Status() (bool, string)
}

// checkEnvelope converts success=false answers into [ErrRejected]. Read
// actions that omit the success flag entirely come back as success=false
// with an empty error string; those are accepted as-is because their
// payload field carries the answer.
func checkEnvelope(action string, out statuser) error {
	ok, msg := out.Status()
	if ok || msg == "" {
		return nil
	}
	return fmt.Errorf("%w: %s: %s", ErrRejected, action, msg)
}

// getAction performs a read: GET <script-url>?action=<action> with bounded
// exponential-backoff retry on transport failures and 5xx answers.
func (g *httpGateway) getAction(ctx context.Context, action string, params map[string]string, out statuser) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}

	operation := func() error {
		resp, err := g.client.R().
			SetContext(ctx).
			SetQueryParam("action", action).
			SetQueryParams(params).
			SetResult(out).
			Get(g.remote.ScriptURL)
		if err != nil {
			return fmt.Errorf("%s request: %w", action, err)
		}
		if err = mapHTTPError(resp); err != nil {
			if resp.StatusCode() >= 500 {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(g.remote.RetryMax)),
		ctx,
	)
	if err := backoff.Retry(operation, bo); err != nil {
		return err
	}

	return checkEnvelope(action, out)
}

// postAction performs a write: POST a JSON body whose action field
// discriminates the payload. Writes are never retried; a duplicate submit
// would append a duplicate row.
//
// The body is sent as text/plain, which is what the script endpoint
// expects (it avoids a CORS preflight on the hosted dashboard and the
// script parses the text as JSON regardless).
func (g *httpGateway) postAction(ctx context.Context, action string, body map[string]any, out statuser) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}

	payload := map[string]any{"action": action}
	for k, v := range body {
		payload[k] = v
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s encode body: %w", action, err)
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain;charset=utf-8").
		SetBody(raw).
		SetResult(out).
		Post(g.remote.ScriptURL)
	if err != nil {
		return fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return checkEnvelope(action, out)
}

// FetchMetrics implements [Gateway].
func (g *httpGateway) FetchMetrics(ctx context.Context) (*models.Metrics, error) {
	var out models.MetricsResponse
	if err := g.getAction(ctx, "getMetrics", nil, &out); err != nil {
		return nil, err
	}
	return out.Metrics, nil
}

// FetchSectionSnapshots implements [Gateway].
func (g *httpGateway) FetchSectionSnapshots(ctx context.Context) (map[string]*models.SectionSnapshot, error) {
	var out models.SnapshotsResponse
	if err := g.getAction(ctx, "getSectionSnapshots", nil, &out); err != nil {
		return nil, err
	}
	return out.Sections, nil
}

// FetchMajorTodos implements [Gateway].
func (g *httpGateway) FetchMajorTodos(ctx context.Context) ([]models.Todo, error) {
	var out models.TodosResponse
	if err := g.getAction(ctx, "getMajorTodos", nil, &out); err != nil {
		return nil, err
	}
	if out.Todos == nil {
		out.Todos = []models.Todo{}
	}
	return out.Todos, nil
}

// SaveMajorTodo implements [Gateway].
func (g *httpGateway) SaveMajorTodo(ctx context.Context, todo models.Todo) error {
	var out models.ResultResponse
	return g.postAction(ctx, "saveMajorTodo", map[string]any{"todo": todo}, &out)
}

// DeleteMajorTodo implements [Gateway].
func (g *httpGateway) DeleteMajorTodo(ctx context.Context, id string) error {
	var out models.ResultResponse
	return g.postAction(ctx, "deleteMajorTodo", map[string]any{"id": id}, &out)
}

// FetchQuarterlyUpdates implements [Gateway].
func (g *httpGateway) FetchQuarterlyUpdates(ctx context.Context) ([]models.QuarterlyUpdate, error) {
	var out models.QuarterlyUpdatesResponse
	if err := g.getAction(ctx, "getQuarterlyUpdates", nil, &out); err != nil {
		return nil, err
	}
	if out.Updates == nil {
		out.Updates = []models.QuarterlyUpdate{}
	}
	return out.Updates, nil
}

// SubmitQuarterlyUpdate implements [Gateway].
func (g *httpGateway) SubmitQuarterlyUpdate(ctx context.Context, form models.QuarterlyForm) error {
	var out models.ResultResponse
	return g.postAction(ctx, "submitQuarterlyUpdate", map[string]any{"form": form}, &out)
}

// SubmitReviewUpdate implements [Gateway].
func (g *httpGateway) SubmitReviewUpdate(ctx context.Context, review models.ReviewUpdate) error {
	var out models.ResultResponse
	return g.postAction(ctx, "submitReviewUpdate", map[string]any{"review": review}, &out)
}

// ListEvents implements [Gateway]. Blank padding rows from the sheet are
// filtered out before they reach the caller.
func (g *httpGateway) ListEvents(ctx context.Context) ([]models.Event, error) {
	var out models.EventsResponse
	if err := g.getAction(ctx, "list", nil, &out); err != nil {
		return nil, err
	}
	events := make([]models.Event, 0, len(out.Events))
	for _, event := range out.Events {
		if !event.IsBlank() {
			events = append(events, event)
		}
	}
	return events, nil
}

// wireEvent serializes the checklist maps as embedded JSON strings, which
// is how the sheet stores them in a single cell.
type wireEvent struct {
	models.Event
	Checklist         string `json:"checklist"`
	PlanningChecklist string `json:"planningChecklist"`
}

func toWireEvent(event models.Event) wireEvent {
	checklist, _ := json.Marshal(event.Checklist)
	planning, _ := json.Marshal(event.PlanningChecklist)
	if event.Checklist == nil {
		checklist = []byte("{}")
	}
	if event.PlanningChecklist == nil {
		planning = []byte("{}")
	}
	return wireEvent{Event: event, Checklist: string(checklist), PlanningChecklist: string(planning)}
}

// SaveEvent implements [Gateway].
func (g *httpGateway) SaveEvent(ctx context.Context, event models.Event) error {
	var out models.ResultResponse
	return g.postAction(ctx, "upsert", map[string]any{"event": toWireEvent(event)}, &out)
}

// DeleteEvent implements [Gateway].
func (g *httpGateway) DeleteEvent(ctx context.Context, id string) error {
	var out models.ResultResponse
	return g.postAction(ctx, "delete", map[string]any{"id": id}, &out)
}

// NewsletterList implements [Gateway].
func (g *httpGateway) NewsletterList(ctx context.Context) ([]models.NewsletterEntry, error) {
	var out models.NewsletterListResponse
	if err := g.getAction(ctx, "newsletter_list", nil, &out); err != nil {
		return nil, err
	}
	return validMonths(out.Entries, func(e models.NewsletterEntry) int { return e.Month }), nil
}

// NewsletterUpsert implements [Gateway].
func (g *httpGateway) NewsletterUpsert(ctx context.Context, entry models.NewsletterEntry) error {
	var out models.ResultResponse
	return g.postAction(ctx, "newsletter_upsert", map[string]any{"entry": entry}, &out)
}

// PostingList implements [Gateway].
func (g *httpGateway) PostingList(ctx context.Context) ([]models.PostingRow, error) {
	var out models.PostingListResponse
	if err := g.getAction(ctx, "posting_list", nil, &out); err != nil {
		return nil, err
	}
	return validMonths(out.Entries, func(r models.PostingRow) int { return r.Month }), nil
}

// PostingUpsert implements [Gateway].
func (g *httpGateway) PostingUpsert(ctx context.Context, row models.PostingRow) error {
	var out models.ResultResponse
	return g.postAction(ctx, "posting_upsert", map[string]any{"entry": row}, &out)
}

// PressReleaseList implements [Gateway].
func (g *httpGateway) PressReleaseList(ctx context.Context) ([]models.PressReleaseEntry, error) {
	var out models.PressReleaseListResponse
	if err := g.getAction(ctx, "press_release_list", nil, &out); err != nil {
		return nil, err
	}
	return validMonths(out.Entries, func(e models.PressReleaseEntry) int { return e.Month }), nil
}

// PressReleaseUpsert implements [Gateway].
func (g *httpGateway) PressReleaseUpsert(ctx context.Context, entry models.PressReleaseEntry) error {
	var out models.ResultResponse
	return g.postAction(ctx, "press_release_upsert", map[string]any{"entry": entry}, &out)
}

// BookingsList implements [Gateway].
func (g *httpGateway) BookingsList(ctx context.Context) ([]models.Booking, int, error) {
	var out models.BookingsListResponse
	if err := g.getAction(ctx, "bookings_list", nil, &out); err != nil {
		return nil, 0, err
	}
	if out.Entries == nil {
		out.Entries = []models.Booking{}
	}
	count := out.Count
	if count < len(out.Entries) {
		count = len(out.Entries)
	}
	return out.Entries, count, nil
}

// BookingsUpdate implements [Gateway].
func (g *httpGateway) BookingsUpdate(ctx context.Context, booking models.Booking) error {
	var out models.ResultResponse
	return g.postAction(ctx, "bookings_update", map[string]any{"entry": booking}, &out)
}

// SheetLastUpdated implements [Gateway].
func (g *httpGateway) SheetLastUpdated(ctx context.Context, ids []string) (map[string]string, error) {
	var out models.SheetLastUpdatedResponse
	params := map[string]string{"ids": strings.Join(ids, ",")}
	if err := g.getAction(ctx, "getSheetLastUpdated", params, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		// this action always sets the flag; an unset flag means the
		// script is too old to know it
		return map[string]string{}, nil
	}
	if out.Updated == nil {
		out.Updated = map[string]string{}
	}
	return out.Updated, nil
}

// UploadImage implements [Gateway].
func (g *httpGateway) UploadImage(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	if !g.IsConfigured() || g.remote.UploadURL == "" {
		return "", fmt.Errorf("upload endpoint: %w", ErrNotConfigured)
	}

	payload := map[string]any{
		"action":   "uploadImage",
		"filename": filename,
		"mimeType": mimeType,
		"data":     base64.StdEncoding.EncodeToString(data),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("uploadImage encode body: %w", err)
	}

	var out models.UploadResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain;charset=utf-8").
		SetBody(raw).
		SetResult(&out).
		Post(g.remote.UploadURL)
	if err != nil {
		return "", fmt.Errorf("uploadImage request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "upload failed"
		}
		return "", fmt.Errorf("%w: uploadImage: %s", ErrRejected, msg)
	}
	return out.Result, nil
}

// validMonths drops rows whose month is outside 1..12; the sheet keeps
// header and scratch rows the dashboard must not see.
func validMonths[T any](entries []T, month func(T) int) []T {
	out := make([]T, 0, len(entries))
	for _, entry := range entries {
		if m := month(entry); m >= 1 && m <= 12 {
			out = append(out, entry)
		}
	}
	return out
}

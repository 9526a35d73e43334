// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

// Package sheets provides the transport layer for the spreadsheet-backed
// system of record.
//
// The primary abstraction is [Gateway], which decouples the synchronizer
// and services from the wire contract: reads are GET requests carrying an
// `action` query parameter, writes are POST requests with a JSON body whose
// `action` field discriminates the payload. Responses carry a `success`
// flag plus either a named payload field or an `error` string.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. A missing or malformed endpoint short-circuits every
// operation with [ErrNotConfigured] before any network call is attempted.
package sheets

import (
	"context"

	"github.com/northstarhouse/strategyhub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway defines the remote operations backing every dashboard collection
// and aggregate. All methods are safe to call when the remote is not
// configured: reads and writes fail fast with [ErrNotConfigured] and no
// network traffic is generated.
type Gateway interface {
	// IsConfigured reports whether the endpoint is present, enabled, and
	// well-formed. Callers use it to decide between a remote refresh and
	// staying on cached data.
	IsConfigured() bool

	// FetchMetrics returns the aggregate dashboard metrics block.
	FetchMetrics(ctx context.Context) (*models.Metrics, error)

	// FetchSectionSnapshots returns the per-section snapshot map keyed by
	// sheet name.
	FetchSectionSnapshots(ctx context.Context) (map[string]*models.SectionSnapshot, error)

	// FetchMajorTodos lists the organization-wide to-do items. A nil error
	// with an empty slice means the collection is genuinely empty, as
	// opposed to a failed fetch.
	FetchMajorTodos(ctx context.Context) ([]models.Todo, error)

	// SaveMajorTodo creates or replaces one to-do row.
	SaveMajorTodo(ctx context.Context, todo models.Todo) error

	// DeleteMajorTodo removes the row with the given id.
	DeleteMajorTodo(ctx context.Context, id string) error

	// FetchQuarterlyUpdates lists all submitted quarterly reports.
	FetchQuarterlyUpdates(ctx context.Context) ([]models.QuarterlyUpdate, error)

	// SubmitQuarterlyUpdate appends a quarterly reflection report.
	SubmitQuarterlyUpdate(ctx context.Context, form models.QuarterlyForm) error

	// SubmitReviewUpdate attaches a co-champion review to a submitted
	// report.
	SubmitReviewUpdate(ctx context.Context, review models.ReviewUpdate) error

	// ListEvents lists the event-planning rows.
	ListEvents(ctx context.Context) ([]models.Event, error)

	// SaveEvent creates or replaces one event row.
	SaveEvent(ctx context.Context, event models.Event) error

	// DeleteEvent removes the event row with the given id.
	DeleteEvent(ctx context.Context, id string) error

	// NewsletterList / NewsletterUpsert manage the monthly newsletter
	// planning rows.
	NewsletterList(ctx context.Context) ([]models.NewsletterEntry, error)
	NewsletterUpsert(ctx context.Context, entry models.NewsletterEntry) error

	// PostingList / PostingUpsert manage the monthly posting schedule in
	// its wire row form.
	PostingList(ctx context.Context) ([]models.PostingRow, error)
	PostingUpsert(ctx context.Context, row models.PostingRow) error

	// PressReleaseList / PressReleaseUpsert manage the monthly press
	// release planning rows.
	PressReleaseList(ctx context.Context) ([]models.PressReleaseEntry, error)
	PressReleaseUpsert(ctx context.Context, entry models.PressReleaseEntry) error

	// BookingsList returns the venue bookings log plus the total row
	// count reported by the sheet.
	BookingsList(ctx context.Context) ([]models.Booking, int, error)

	// BookingsUpdate pushes edits to one bookings row.
	BookingsUpdate(ctx context.Context, booking models.Booking) error

	// SheetLastUpdated returns modification timestamps (RFC 3339) for the
	// externally maintained sheets identified by ids.
	SheetLastUpdated(ctx context.Context, ids []string) (map[string]string, error)

	// UploadImage uploads binary content to the blob endpoint and returns
	// the hosted file URL.
	UploadImage(ctx context.Context, filename, mimeType string, data []byte) (string, error)
}

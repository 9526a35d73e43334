package models

import "encoding/json"

// Envelope is the common frame of every remote script response: a success
// flag plus either an action-specific payload field or an error string.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Status returns the success flag and error string of the envelope.
func (e Envelope) Status() (bool, string) { return e.Success, e.Error }

// TodosResponse answers action=getMajorTodos.
type TodosResponse struct {
	Envelope
	Todos []Todo `json:"todos"`
}

// MetricsResponse answers action=getMetrics.
type MetricsResponse struct {
	Envelope
	Metrics *Metrics `json:"metrics"`
}

// SnapshotsResponse answers action=getSectionSnapshots, keyed by the
// section sheet name.
type SnapshotsResponse struct {
	Envelope
	Sections map[string]*SectionSnapshot `json:"sections"`
}

// QuarterlyUpdatesResponse answers action=getQuarterlyUpdates.
type QuarterlyUpdatesResponse struct {
	Envelope
	Updates []QuarterlyUpdate `json:"updates"`
}

// EventsResponse answers action=list.
type EventsResponse struct {
	Envelope
	Events []Event `json:"events"`
}

// NewsletterListResponse answers action=newsletter_list.
type NewsletterListResponse struct {
	Envelope
	Entries []NewsletterEntry `json:"entries"`
}

// PostingListResponse answers action=posting_list.
type PostingListResponse struct {
	Envelope
	Entries []PostingRow `json:"entries"`
}

// PressReleaseListResponse answers action=press_release_list.
type PressReleaseListResponse struct {
	Envelope
	Entries []PressReleaseEntry `json:"entries"`
}

// BookingsListResponse answers action=bookings_list. Count may exceed
// len(Entries) when the log sheet holds rows the dashboard does not show.
type BookingsListResponse struct {
	Envelope
	Entries []Booking `json:"entries"`
	Count   int       `json:"count"`
}

// SheetLastUpdatedResponse answers action=getSheetLastUpdated. Updated
// maps sheet ids to RFC 3339 modification timestamps.
type SheetLastUpdatedResponse struct {
	Envelope
	Updated map[string]string `json:"updated"`
}

// UploadResponse answers action=uploadImage with the hosted file URL.
type UploadResponse struct {
	Envelope
	Result string `json:"result"`
}

// ResultResponse answers write actions whose result payload the client
// does not inspect beyond success.
type ResultResponse struct {
	Envelope
	Result json.RawMessage `json:"result,omitempty"`
}

// DeleteResult is the payload of a delete action's result field.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

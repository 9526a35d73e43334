package models

import (
	"bytes"
	"encoding/json"
)

// Checklist maps checklist item keys to their checked state. The
// spreadsheet stores checklists as JSON text inside a single cell, so
// rows may deliver the value either as an object or as a string-encoded
// object; both decode into the same map.
type Checklist map[string]bool

func (c *Checklist) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = nil
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*c = Checklist{}
			return nil
		}
		m := map[string]bool{}
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			// Malformed embedded JSON is treated as an empty checklist
			// rather than failing the whole row.
			*c = Checklist{}
			return nil
		}
		*c = m
		return nil
	}

	m := map[string]bool{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*c = m
	return nil
}

// Event is one row of the event-planning tracker.
type Event struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Date                string    `json:"date"`
	Time                string    `json:"time"`
	IsTBD               bool      `json:"isTBD"`
	Goals               string    `json:"goals"`
	Outcomes            string    `json:"outcomes"`
	Advertising         string    `json:"advertising"`
	TotalSpent          string    `json:"totalSpent"`
	TotalEarned         string    `json:"totalEarned"`
	Volunteers          string    `json:"volunteers"`
	TargetAttendance    string    `json:"targetAttendance"`
	CurrentRSVPs        string    `json:"currentRSVPs"`
	FlyerImage          string    `json:"flyerImage,omitempty"`
	Checklist           Checklist `json:"checklist"`
	PlanningChecklist   Checklist `json:"planningChecklist"`
	PlanningNotes       string    `json:"planningNotes"`
	Notes               string    `json:"notes"`
	PostEventAttendance string    `json:"postEventAttendance"`
	PostEventNotes      string    `json:"postEventNotes"`
	CreatedAt           string    `json:"createdAt"`
}

// IsBlank reports whether the row carries no meaningful data. The
// spreadsheet occasionally returns padding rows; those are filtered out
// before they reach the collection.
func (e Event) IsBlank() bool {
	if e.Name != "" || e.Date != "" || e.CreatedAt != "" {
		return false
	}
	if e.TargetAttendance != "" || e.CurrentRSVPs != "" {
		return false
	}
	if e.Notes != "" || e.PlanningNotes != "" {
		return false
	}
	return len(e.Checklist) == 0 && len(e.PlanningChecklist) == 0
}

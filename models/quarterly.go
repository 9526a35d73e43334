package models

import (
	"strings"
	"time"
)

// Goal is one of the up-to-three tracked goals inside a quarterly report.
type Goal struct {
	Goal    string `json:"goal"`
	Status  string `json:"status"`
	Summary string `json:"summary"`
}

// Challenges captures the challenge checkboxes plus free-text detail of a
// quarterly report.
type Challenges struct {
	Capacity     bool   `json:"capacity"`
	Budget       bool   `json:"budget"`
	Scheduling   bool   `json:"scheduling"`
	Coordination bool   `json:"coordination"`
	External     bool   `json:"external"`
	Other        bool   `json:"other"`
	OtherText    string `json:"otherText"`
	Details      string `json:"details"`
}

// AnyChecked reports whether at least one challenge box is ticked.
func (c Challenges) AnyChecked() bool {
	return c.Capacity || c.Budget || c.Scheduling || c.Coordination || c.External || c.Other
}

// SupportTypes captures the support-needed checkboxes of a quarterly report.
type SupportTypes struct {
	Staff      bool   `json:"staff"`
	Marketing  bool   `json:"marketing"`
	Board      bool   `json:"board"`
	Funding    bool   `json:"funding"`
	Facilities bool   `json:"facilities"`
	Other      bool   `json:"other"`
	OtherText  string `json:"otherText"`
}

func (s SupportTypes) AnyChecked() bool {
	return s.Staff || s.Marketing || s.Board || s.Funding || s.Facilities || s.Other
}

// QuarterlyForm is the full quarterly reflection report as submitted by a
// focus-area champion.
type QuarterlyForm struct {
	FocusArea     string       `json:"focusArea"`
	Quarter       string       `json:"quarter"`
	Year          string       `json:"year"`
	SubmittedDate string       `json:"submittedDate"`
	PrimaryFocus  string       `json:"primaryFocus"`
	Goals         []Goal       `json:"goals"`
	Wins          string       `json:"wins"`
	Challenges    Challenges   `json:"challenges"`
	SupportNeeded string       `json:"supportNeeded"`
	SupportTypes  SupportTypes `json:"supportTypes"`
	DecisionsNeeded    string   `json:"decisionsNeeded"`
	NextQuarterFocus   string   `json:"nextQuarterFocus"`
	NextPriorities     []string `json:"nextPriorities"`
	FinalTallyOverview string   `json:"finalTallyOverview"`

	// Set server-side presentation hints when unchecked groups should
	// read as "None noted" in the spreadsheet.
	ChallengesCheckedOverride   string `json:"challengesCheckedOverride,omitempty"`
	SupportTypesCheckedOverride string `json:"supportTypesCheckedOverride,omitempty"`

	UploadedFiles []string `json:"uploadedFiles,omitempty"`
}

// NewQuarterlyForm returns a form pre-populated the way the dashboard
// presents a blank report.
func NewQuarterlyForm() QuarterlyForm {
	return QuarterlyForm{
		Year:          time.Now().Format("2006"),
		SubmittedDate: time.Now().Format("2006-01-02"),
		Goals: []Goal{
			{Status: "On Track"},
			{Status: "On Track"},
			{Status: "On Track"},
		},
		NextPriorities: []string{"", "", ""},
	}
}

// ReviewUpdate is a co-champion review attached to a submitted quarterly
// report.
type ReviewUpdate struct {
	FocusArea            string `json:"focusArea"`
	Quarter              string `json:"quarter"`
	StatusAfterReview    string `json:"statusAfterReview"`
	ActionsAssigned      string `json:"actionsAssigned"`
	CrossAreaImpacts     string `json:"crossAreaImpacts"`
	AreasImpacted        string `json:"areasImpacted"`
	CoordinationNeeded   string `json:"coordinationNeeded"`
	PriorityConfirmation string `json:"priorityConfirmation"`
	EscalationFlag       string `json:"escalationFlag"`
	ReviewCompletedOn    string `json:"reviewCompletedOn"`
	NextCheckInDate      string `json:"nextCheckInDate"`
}

// QuarterlyPayload is the stored body of one quarterly update row.
type QuarterlyPayload struct {
	QuarterlyForm
	Review *ReviewUpdate `json:"review,omitempty"`
}

// QuarterlyUpdate is one row of the quarterly updates sheet.
type QuarterlyUpdate struct {
	FocusArea     string           `json:"focusArea"`
	Quarter       string           `json:"quarter"`
	SubmittedDate string           `json:"submittedDate"`
	Payload       QuarterlyPayload `json:"payload"`
}

// QuarterlySuggestion is the next-quarter pre-fill written locally when a
// report is submitted, and read back when the following quarter's form opens.
type QuarterlySuggestion struct {
	PrimaryFocus string `json:"primaryFocus"`
	Goals        []Goal `json:"goals"`
}

// NextQuarter returns the quarter that follows q, or "" when q is not a
// recognized quarter label. Q4 rolls into the year-end "Final" report.
func NextQuarter(q string) string {
	switch q {
	case "Q1":
		return "Q2"
	case "Q2":
		return "Q3"
	case "Q3":
		return "Q4"
	case "Q4":
		return "Final"
	default:
		return ""
	}
}

// ActionRow is one "action | owner | deadline" line of a review's assigned
// actions field.
type ActionRow struct {
	Action   string `json:"action"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// ParseActionRows splits the pipe-delimited multi-line actions field into
// rows, padding with blanks up to min entries.
func ParseActionRows(value string, min int) []ActionRow {
	rows := make([]ActionRow, 0, min)
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		row := ActionRow{}
		if len(parts) > 0 {
			row.Action = strings.TrimSpace(parts[0])
		}
		if len(parts) > 1 {
			row.Owner = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			row.Deadline = strings.TrimSpace(parts[2])
		}
		rows = append(rows, row)
	}
	for len(rows) < min {
		rows = append(rows, ActionRow{})
	}
	return rows
}

// SerializeActionRows renders rows back into the pipe-delimited format,
// dropping fully blank lines.
func SerializeActionRows(rows []ActionRow) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Action == "" && row.Owner == "" && row.Deadline == "" {
			continue
		}
		lines = append(lines, strings.Join([]string{row.Action, row.Owner, row.Deadline}, " | "))
	}
	return strings.Join(lines, "\n")
}

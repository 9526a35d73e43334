package models

import "strings"

// PostingSlot is one recurring posting prompt in the monthly social
// media schedule.
type PostingSlot struct {
	ID     string
	Day    string
	Prompt string
}

// PostingWeek groups the posting slots of one week of the month.
type PostingWeek struct {
	Week  string
	Items []PostingSlot
}

// PostingSchedule is the fixed monthly posting cadence. The spreadsheet
// stores each week's column as "<Day> - <Prompt>: <value>" lines, so the
// ids and labels here double as the wire vocabulary.
var PostingSchedule = []PostingWeek{
	{
		Week: "First Week",
		Items: []PostingSlot{
			{ID: "w1-mon", Day: "Monday", Prompt: "Wedding posting + scheduling for the month"},
			{ID: "w1-tue", Day: "Tuesday", Prompt: "Testimonial or small history"},
			{ID: "w1-wed", Day: "Wednesday", Prompt: "OPEN"},
			{ID: "w1-thu", Day: "Thursday", Prompt: "Monthly email send out"},
			{ID: "w1-fri", Day: "Friday", Prompt: "Volunteer outreach - events"},
			{ID: "w1-other", Day: "Other", Prompt: "Other"},
		},
	},
	{
		Week: "Second Week",
		Items: []PostingSlot{
			{ID: "w2-mon", Day: "Monday", Prompt: "Sponsor spotlight"},
			{ID: "w2-tue", Day: "Tuesday", Prompt: "Upcoming event / tours"},
			{ID: "w2-thu", Day: "Thursday", Prompt: "Planning update"},
			{ID: "w2-fri", Day: "Friday", Prompt: "Volunteer outreach - restoration"},
			{ID: "w2-other", Day: "Other", Prompt: "Other"},
		},
	},
	{
		Week: "Third Week",
		Items: []PostingSlot{
			{ID: "w3-mon", Day: "Monday", Prompt: "Upcoming event or wedding"},
			{ID: "w3-tue", Day: "Tuesday", Prompt: "OPEN"},
			{ID: "w3-thu", Day: "Thursday", Prompt: "History update"},
			{ID: "w3-fri", Day: "Friday", Prompt: "Volunteer outreach - garden"},
			{ID: "w3-other", Day: "Other", Prompt: "Other"},
		},
	},
	{
		Week: "Fourth Week",
		Items: []PostingSlot{
			{ID: "w4-mon", Day: "Monday", Prompt: "OPEN"},
			{ID: "w4-tue", Day: "Tuesday", Prompt: "Restoration video"},
			{ID: "w4-thu", Day: "Thursday", Prompt: "Development / board update"},
			{ID: "w4-fri", Day: "Friday", Prompt: "Volunteer outreach - docents"},
			{ID: "w4-other", Day: "Other", Prompt: "Other"},
		},
	},
}

// PostingSlots flattens the schedule into a single slot list.
func PostingSlots() []PostingSlot {
	slots := make([]PostingSlot, 0, 24)
	for _, week := range PostingSchedule {
		slots = append(slots, week.Items...)
	}
	return slots
}

func slotLabel(s PostingSlot) string {
	return s.Day + " - " + s.Prompt
}

// PostingRow is the wire form of one posting-schedule month: each week's
// slot values rendered as labeled lines, plus a legacy combined field.
type PostingRow struct {
	Month     int    `json:"month"`
	Completed bool   `json:"completed"`
	Week1     string `json:"week1"`
	Week2     string `json:"week2"`
	Week3     string `json:"week3"`
	Week4     string `json:"week4"`
	Entries   string `json:"entries"`
}

// ParsePostingWeek decodes one week column ("<Day> - <Prompt>: value"
// lines) into slot-id keyed values. Unknown labels are skipped.
func ParsePostingWeek(raw string, weekIndex int) map[string]string {
	out := map[string]string{}
	if raw == "" || weekIndex < 0 || weekIndex >= len(PostingSchedule) {
		return out
	}
	labels := map[string]string{}
	for _, item := range PostingSchedule[weekIndex].Items {
		labels[slotLabel(item)] = item.ID
	}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sep := strings.Index(line, ":")
		if sep < 0 {
			continue
		}
		label := strings.TrimSpace(line[:sep])
		if id, ok := labels[label]; ok {
			out[id] = strings.TrimSpace(line[sep+1:])
		}
	}
	return out
}

// ParsePostingEntries decodes the legacy combined entries column, which
// may hold "id | week | value" lines, labeled lines, or week headings.
func ParsePostingEntries(raw string) map[string]string {
	out := map[string]string{}
	if raw == "" {
		return out
	}
	slots := PostingSlots()
	ids := map[string]bool{}
	labels := map[string]string{}
	for _, s := range slots {
		ids[s.ID] = true
		labels[slotLabel(s)] = s.ID
	}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasSuffix(strings.ToLower(line), "week") {
			continue
		}
		if strings.Contains(line, "|") {
			parts := strings.Split(line, "|")
			id := strings.TrimSpace(parts[0])
			if ids[id] && len(parts) > 2 {
				out[id] = strings.TrimSpace(strings.Join(parts[2:], "|"))
				continue
			}
		}
		sep := strings.Index(line, ":")
		if sep < 0 {
			continue
		}
		if id, ok := labels[strings.TrimSpace(line[:sep])]; ok {
			out[id] = strings.TrimSpace(line[sep+1:])
		}
	}
	return out
}

// BuildPostingWeek renders one week's filled slots back into the labeled
// line format stored in the spreadsheet.
func BuildPostingWeek(weekIndex int, entries map[string]string) string {
	if weekIndex < 0 || weekIndex >= len(PostingSchedule) {
		return ""
	}
	lines := make([]string, 0, 6)
	for _, item := range PostingSchedule[weekIndex].Items {
		value := strings.TrimSpace(entries[item.ID])
		if value == "" {
			continue
		}
		lines = append(lines, slotLabel(item)+": "+value)
	}
	return strings.Join(lines, "\n")
}

// BuildPostingEntries renders the combined entries column with week
// headings, matching the legacy sheet layout.
func BuildPostingEntries(entries map[string]string) string {
	lines := make([]string, 0, 24)
	for _, week := range PostingSchedule {
		filled := make([]string, 0, len(week.Items))
		for _, item := range week.Items {
			value := strings.TrimSpace(entries[item.ID])
			if value == "" {
				continue
			}
			filled = append(filled, slotLabel(item)+": "+value)
		}
		if len(filled) > 0 {
			lines = append(lines, week.Week)
			lines = append(lines, filled...)
			lines = append(lines, "")
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// PostingRowFromEntry converts the in-memory entry to its wire row.
func PostingRowFromEntry(e PostingEntry) PostingRow {
	return PostingRow{
		Month:     e.Month,
		Completed: e.Completed,
		Week1:     BuildPostingWeek(0, e.Entries),
		Week2:     BuildPostingWeek(1, e.Entries),
		Week3:     BuildPostingWeek(2, e.Entries),
		Week4:     BuildPostingWeek(3, e.Entries),
		Entries:   BuildPostingEntries(e.Entries),
	}
}

// PostingEntryFromRow converts a wire row to the in-memory entry. Week
// columns win over the legacy combined column for slots present in both.
func PostingEntryFromRow(row PostingRow) PostingEntry {
	entries := map[string]string{}
	for i, raw := range []string{row.Week1, row.Week2, row.Week3, row.Week4} {
		for id, value := range ParsePostingWeek(raw, i) {
			entries[id] = value
		}
	}
	for id, value := range ParsePostingEntries(row.Entries) {
		if _, ok := entries[id]; !ok {
			entries[id] = value
		}
	}
	for _, slot := range PostingSlots() {
		if _, ok := entries[slot.ID]; !ok {
			entries[slot.ID] = ""
		}
	}
	return PostingEntry{Month: row.Month, Completed: row.Completed, Entries: entries}
}

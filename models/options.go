package models

// FocusAreas are the strategic focus areas tracked by the dashboard.
var FocusAreas = []string{
	"Fund Development",
	"House and Grounds Development",
	"Programs and Events",
	"Organizational Development",
}

// SectionPage maps a dashboard section key to its label and sheet name.
type SectionPage struct {
	Key   string
	Label string
	Sheet string
}

// SectionPages lists the per-section snapshot pages in display order.
var SectionPages = []SectionPage{
	{Key: "construction", Label: "Construction", Sheet: "Construction"},
	{Key: "grounds", Label: "Grounds", Sheet: "Grounds"},
	{Key: "interiors", Label: "Interiors", Sheet: "Interiors"},
	{Key: "docents", Label: "Docents", Sheet: "Docents"},
	{Key: "fund", Label: "Fundraising", Sheet: "Fundraising"},
	{Key: "events", Label: "Events", Sheet: "Events"},
	{Key: "marketing-ops", Label: "Marketing", Sheet: "Marketing"},
	{Key: "venue", Label: "Venue", Sheet: "Venue"},
}

// Statuses are the initiative progress states.
var Statuses = []string{
	"Not started",
	"On track",
	"At risk",
	"Behind",
	"Complete",
}

// ReviewStatuses are the co-champion review states.
var ReviewStatuses = []string{
	"Pending",
	"Reviewed",
	"Needs info",
}

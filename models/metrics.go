package models

// Metrics is the aggregate dashboard headline block pulled from the
// spreadsheet. Pointers distinguish "not reported" from zero.
type Metrics struct {
	DonationsTotal  *float64 `json:"donationsTotal"`
	VolunteersCount *int     `json:"volunteersCount"`
	EventsCount     *int     `json:"eventsCount"`
	SponsorsCount   *int     `json:"sponsorsCount"`
}

// SectionSnapshot is the beginning-of-year snapshot for one section page
// (Construction, Grounds, Interiors, ...).
type SectionSnapshot struct {
	Lead       string  `json:"lead"`
	Budget     float64 `json:"budget"`
	Volunteers string  `json:"volunteers"`
	Summary    string  `json:"summary"`
}

package models

// NewsletterEntry is the monthly newsletter planning row. Month is 1-based.
type NewsletterEntry struct {
	Month             int    `json:"month"`
	Published         bool   `json:"published"`
	MainFeature       string `json:"mainFeature"`
	MainUpcomingEvent string `json:"mainUpcomingEvent"`
	EventRecaps       string `json:"eventRecaps"`
	VolunteerHours    string `json:"volunteerHours"`
	DonationNeeds     string `json:"donationNeeds"`
	Other             string `json:"other"`
}

// PostingEntry is the monthly social posting schedule. Entries maps
// posting-slot ids to their planned content.
type PostingEntry struct {
	Month     int               `json:"month"`
	Completed bool              `json:"completed"`
	Entries   map[string]string `json:"entries"`
}

// PressReleaseEntry is the monthly press-release planning row.
type PressReleaseEntry struct {
	Month      int    `json:"month"`
	Published  bool   `json:"published"`
	Headline   string `json:"headline"`
	Summary    string `json:"summary"`
	KeyDetails string `json:"keyDetails"`
	Outlets    string `json:"outlets"`
	Link       string `json:"link"`
	Notes      string `json:"notes"`
}

// Booking is one row of the venue bookings log. Rows originate in the
// spreadsheet, so the row index doubles as the identifier.
type Booking struct {
	RowIndex        int    `json:"rowIndex"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Date            string `json:"date"`
	PhotoPermission bool   `json:"photoPermission"`
	Link            string `json:"link"`
	PostedToSocials bool   `json:"postedToSocials"`
}

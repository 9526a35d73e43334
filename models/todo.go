package models

// Todo is a single entry on the organization-wide major to-do list.
// IDs are assigned client-side when the item is created locally;
// rows created directly in the spreadsheet arrive with their own ids.
type Todo struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Done        bool   `json:"done"`
	CreatedAt   string `json:"createdAt"`
	CompletedAt string `json:"completedAt"`
}

package store

import "fmt"

// Cache keys. Each managed collection or aggregate owns exactly one key;
// the versioned suffix allows discarding stale envelopes after a breaking
// format change.
const (
	KeyMajorTodos    = "nsh-strategy-major-todos-v1"
	KeyMetrics       = "nsh-strategy-metrics-cache-v1"
	KeySections      = "nsh-strategy-sections-cache-v1"
	KeyQuarterly     = "nsh-strategy-quarterly-cache-v1"
	KeyEvents        = "nsh-events-cache-v1"
	KeyEventFlyers   = "nsh-event-flyers-v1"
	KeyNewsletter    = "nsh-newsletter-cache-v1"
	KeyPosting       = "nsh-posting-schedule-v1"
	KeyPressReleases = "nsh-press-release-cache-v1"
	KeyBookings      = "nsh-bookings-cache-v1"
	KeySheetLastSeen = "nsh-sheet-last-seen-v1"
)

// SuggestionKey names the per-focus-area, per-quarter slot holding the
// next-quarter pre-fill written when a quarterly report is submitted.
func SuggestionKey(focusArea, quarter string) string {
	return fmt.Sprintf("nsh-quarterly-next-%s-%s", focusArea, quarter)
}

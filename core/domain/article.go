// ABOUTME: Article domain model represents one sanitized news search result
// ABOUTME: Fields are escaped and truncated before an Article is constructed

package domain

// Article is the four-field sanitized representation of one feed entry.
// Articles are immutable value records: they are created fresh on every
// fetch, never persisted, and discarded when a new fetch cycle begins.
//
// Title and Summary are HTML-escaped and safe to render as markup.
// Summary is tag-stripped and truncated to 300 runes plus an ellipsis
// marker, or holds a placeholder string when the entry had no summary.
// Published is a formatted date-time string, the feed's raw published
// text when structured parsing was unavailable, or empty.
type Article struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
}

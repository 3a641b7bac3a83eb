package apexstatus

import "strings"

// Status is a region health value as reported by the upstream status feed.
type Status string

const (
	// StatusUp is also assumed whenever the feed reports nothing.
	StatusUp Status = "UP"

	// StatusSlow indicates a region that responds with elevated latency.
	StatusSlow Status = "SLOW"
)

// Glyphs shown in front of each region line.
const (
	GlyphUp      = "🟢"
	GlyphSlow    = "🟡"
	GlyphUnknown = "⭕"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// StatusEmoji maps a status to its display glyph, ignoring case.
//
// Mapping:
//   - "" or "UP": [GlyphUp]
//   - "SLOW": [GlyphSlow]
//   - anything else: [GlyphUnknown]
func StatusEmoji(status string) string {
	switch Status(strings.ToUpper(status)) {
	case "", StatusUp:
		return GlyphUp
	case StatusSlow:
		return GlyphSlow
	default:
		return GlyphUnknown
	}
}

// RegionReading is the status of one service in one region.
type RegionReading struct {
	// Status is the raw upstream status, "UP" when not reported.
	Status string

	// ResponseTimeMs is the reported latency in milliseconds, or the
	// caller-supplied default when not reported.
	ResponseTimeMs float64
}

package apexstatus

import (
	"strconv"
	"strings"
)

// FormatResponseTime renders a latency as "<ms>ms" using the shortest
// decimal form, e.g. "15ms" or "15.5ms".
func FormatResponseTime(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64) + "ms"
}

// FormatRegionLine renders one region reading as "<glyph> <region>: <ms>ms".
func FormatRegionLine(region string, reading RegionReading) string {
	return StatusEmoji(reading.Status) + " " + region + ": " + FormatResponseTime(reading.ResponseTimeMs)
}

// FormatRegionBlock renders one line per region for the service at path.
// Regions keep the caller's order and every line ends with a newline.
func FormatRegionBlock(regions []string, data any, path string, defaultResponseTime float64) string {
	var b strings.Builder
	for _, region := range regions {
		reading := ExtractRegionReading(data, path, region, defaultResponseTime)
		b.WriteString(FormatRegionLine(region, reading))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatRegionPair renders the region blocks of two services side by side,
// using defaults[0] for pathA and defaults[1] for pathB.
func FormatRegionPair(regions []string, data any, pathA, pathB string, defaults [2]float64) (string, string) {
	return FormatRegionBlock(regions, data, pathA, defaults[0]),
		FormatRegionBlock(regions, data, pathB, defaults[1])
}

// Package apexstatus formats Apex Legends service status data into the
// fields of a chat message embed.
//
// The package is a set of pure functions over loosely structured status
// trees, usually the result of decoding the upstream JSON feed into an
// [any]. It never fetches, caches or stores anything: the caller owns the
// data and the destination [embed.Embed].
//
// # Quick Start
//
//	var status, predator any
//	_ = json.Unmarshal(statusJSON, &status)
//	_ = json.Unmarshal(predatorJSON, &predator)
//
//	resp := apexstatus.FormatServerStatus(status, embed.New(), predator)
//	// send resp.Embeds with your chat client
//
// # Configuration
//
// A [Formatter] is configured with functional options:
//
//	f, err := apexstatus.New(
//	    apexstatus.WithLogger(logger),
//	    apexstatus.WithLayout(layout),
//	)
//
// [DefaultLayout] holds the fixed region list, service columns and ranked
// platforms of the standard report.
//
// # Missing Data
//
// Status trees are walked with [Lookup], which never panics on an unexpected
// shape. Missing region readings are reported as healthy with a default
// latency, and missing ranking numbers render as "N/A". Anything that still
// goes wrong while assembling a report is recovered at a single boundary in
// [Formatter.FormatServerStatus], logged with a correlation ID, and replaced
// by a generic error panel.
package apexstatus

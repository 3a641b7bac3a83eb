package apexstatus

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// NoRankingData replaces the summary when the ranking tree or its
	// ranking-points section is missing.
	NoRankingData = "No data available"

	// NotAvailable replaces a missing ranking number.
	NotAvailable = "N/A"
)

// Keys of the ranking tree.
const (
	keyRankingPoints = "RP"
	keyThreshold     = "val"
	keyPlayerCount   = "totalMastersAndPreds"
)

// FormatRanking renders the Predator threshold summary for the default
// platforms. See [FormatRankingFor].
func FormatRanking(data any) string {
	return FormatRankingFor(data, DefaultPlatforms())
}

// FormatRankingFor renders one paragraph per platform, in order:
//
//	🖥️ **PC (Steam / EA App)**
//	┗ Threshold: `12,345 RP`  •  Players: `6,789`
//
// Paragraphs are separated by a blank line. Numbers are grouped by
// thousands; a missing platform or number renders as [NotAvailable]. When
// data has no "RP" section the result is [NoRankingData].
func FormatRankingFor(data any, platforms []Platform) string {
	rp, ok := Lookup(data, []string{keyRankingPoints})
	if !ok || !truthy(rp) {
		return NoRankingData
	}

	paragraphs := make([]string, 0, len(platforms))
	for _, p := range platforms {
		paragraphs = append(paragraphs, formatPlatform(rp, p))
	}
	return strings.Join(paragraphs, "\n\n")
}

func formatPlatform(rp any, p Platform) string {
	threshold, count := NotAvailable, NotAvailable
	if record, ok := Lookup(rp, []string{p.Key}); ok && truthy(record) {
		threshold = rankingNumber(record, keyThreshold)
		count = rankingNumber(record, keyPlayerCount)
	}
	return p.Glyph + " **" + p.Name + "**\n┗ Threshold: `" + threshold + " RP`  •  Players: `" + count + "`"
}

func rankingNumber(record any, key string) string {
	v, ok := Lookup(record, []string{key})
	if !ok {
		return NotAvailable
	}
	return FormatNumber(v)
}

// FormatNumber renders a ranking number with thousands grouping, e.g.
// "12,345". Fractions are rounded to three decimals. Non-empty strings are
// returned unchanged; nil, empty strings, non-finite numbers and other
// shapes render as [NotAvailable].
func FormatNumber(v any) string {
	switch x := v.(type) {
	case nil:
		return NotAvailable
	case string:
		if x == "" {
			return NotAvailable
		}
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return humanize.Comma(int64(x))
	case int8:
		return humanize.Comma(int64(x))
	case int16:
		return humanize.Comma(int64(x))
	case int32:
		return humanize.Comma(int64(x))
	case int64:
		return humanize.Comma(x)
	case uint:
		return formatUint(uint64(x))
	case uint8:
		return humanize.Comma(int64(x))
	case uint16:
		return humanize.Comma(int64(x))
	case uint32:
		return humanize.Comma(int64(x))
	case uint64:
		return formatUint(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return humanize.Comma(i)
		}
		f, err := x.Float64()
		if err != nil {
			return NotAvailable
		}
		return formatFloat(f)
	case float32:
		return formatFloat(float64(x))
	case float64:
		return formatFloat(x)
	default:
		return NotAvailable
	}
}

func formatUint(u uint64) string {
	if u > math.MaxInt64 {
		return humanize.BigComma(new(big.Int).SetUint64(u))
	}
	return humanize.Comma(int64(u))
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NotAvailable
	}
	rounded := math.Round(f*1000) / 1000
	if rounded == math.Trunc(rounded) && math.Abs(rounded) < 1<<62 {
		return humanize.Comma(int64(rounded))
	}
	return humanize.Commaf(rounded)
}

package apexstatus

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Upstream keys of a region record.
const (
	keyStatus       = "Status"
	keyResponseTime = "ResponseTime"
)

// Node is implemented by status trees that are not plain decoded JSON.
//
// Get returns the child stored under key and whether it exists. Decoded
// JSON objects (map[string]any) are walked directly and do not need to
// implement Node.
type Node interface {
	Get(key string) (any, bool)
}

// Lookup walks root one key at a time and returns the value found at the
// end of parts.
//
// Every intermediate value must be a map[string]any or a [Node]. A missing
// key, a nil value or any other shape stops the walk and reports false.
// Lookup itself never panics; a [Node] implementation may.
//
// Example:
//
//	// {"ApexOauth": {"Crossplay": {"EU-West": {...}}}}
//	v, ok := apexstatus.Lookup(data, []string{"ApexOauth", "Crossplay", "EU-West"})
func Lookup(root any, parts []string) (any, bool) {
	current := root

	for _, part := range parts {
		var ok bool
		switch node := current.(type) {
		case map[string]any:
			current, ok = node[part]
		case Node:
			current, ok = node.Get(part)
		default:
			return nil, false
		}
		if !ok || current == nil {
			return nil, false
		}
	}

	if current == nil {
		return nil, false
	}
	return current, true
}

// LookupPath is [Lookup] with a dotted path such as "ApexOauth.Crossplay".
func LookupPath(root any, path string) (any, bool) {
	return Lookup(root, strings.Split(path, "."))
}

// ExtractRegionReading returns the reading of the service at the dotted
// path for one region.
//
// Missing data is not an error: when the service or region is absent the
// reading is [StatusUp] with defaultResponseTime. A missing or empty status
// becomes "UP" and a missing latency becomes defaultResponseTime. A reported
// latency of 0 is treated as missing as well.
//
// ExtractRegionReading never panics. A panic raised while walking the tree
// yields the default reading.
func ExtractRegionReading(data any, path, region string, defaultResponseTime float64) (reading RegionReading) {
	fallback := RegionReading{Status: string(StatusUp), ResponseTimeMs: defaultResponseTime}

	defer func() {
		if r := recover(); r != nil {
			reading = fallback
		}
	}()

	service, _ := LookupPath(data, path)
	record, ok := Lookup(service, []string{region})
	if !ok || !truthy(record) {
		return fallback
	}

	reading = fallback
	if status, ok := Lookup(record, []string{keyStatus}); ok && truthy(status) {
		reading.Status = statusString(status)
	}
	if rt, ok := Lookup(record, []string{keyResponseTime}); ok && truthy(rt) {
		if ms, ok := toFloat(rt); ok {
			reading.ResponseTimeMs = ms
		}
	}
	return reading
}

// truthy reports whether v counts as present under JSON conventions:
// nil, false, zero numbers and the empty string do not.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		if x == "" {
			return false
		}
		f, err := x.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	default:
		return true
	}
}

// toFloat converts a numeric leaf to float64. Numeric strings are accepted;
// anything else, including NaN and infinities, is not.
func toFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// statusString renders a status leaf. Non-string statuses are printed as-is
// and end up as unknown glyphs.
func statusString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

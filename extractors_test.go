package apexstatus

import (
	"encoding/json"
	"testing"
)

// trapNode panics on every access, like a hostile proxy object.
type trapNode struct{}

func (trapNode) Get(key string) (any, bool) {
	panic("trap: access to " + key)
}

// mapNode is a minimal non-map Node.
type mapNode map[string]any

func (m mapNode) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func decodeJSON(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("json.Unmarshal(%q) error = %v", s, err)
	}
	return v
}

func TestLookup(t *testing.T) {
	data := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": "leaf"},
			"n": nil,
			"s": "string",
		},
		"node": mapNode{"x": 42},
	}

	tests := []struct {
		name   string
		parts  []string
		want   any
		wantOK bool
	}{
		{"top level", []string{"a"}, data["a"], true},
		{"deep leaf", []string{"a", "b", "c"}, "leaf", true},
		{"missing top", []string{"missing"}, nil, false},
		{"missing nested", []string{"a", "missing", "c"}, nil, false},
		{"nil value", []string{"a", "n"}, nil, false},
		{"through nil", []string{"a", "n", "x"}, nil, false},
		{"through string", []string{"a", "s", "x"}, nil, false},
		{"through leaf", []string{"a", "b", "c", "d"}, nil, false},
		{"through node", []string{"node", "x"}, 42, true},
		{"missing in node", []string{"node", "y"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(data, tt.parts)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%v) ok = %v, want %v", tt.parts, ok, tt.wantOK)
			}
			if !tt.wantOK {
				if got != nil {
					t.Errorf("Lookup(%v) = %v, want nil", tt.parts, got)
				}
				return
			}
			if s, isString := tt.want.(string); isString && got != s {
				t.Errorf("Lookup(%v) = %v, want %v", tt.parts, got, tt.want)
			}
			if n, isInt := tt.want.(int); isInt && got != n {
				t.Errorf("Lookup(%v) = %v, want %v", tt.parts, got, tt.want)
			}
		})
	}
}

func TestLookup_NonTraversableRoots(t *testing.T) {
	roots := []any{nil, "text", 3.5, true, []any{"a"}, map[string]string{"a": "b"}}
	for _, root := range roots {
		if got, ok := Lookup(root, []string{"a"}); ok || got != nil {
			t.Errorf("Lookup(%#v) = (%v, %v), want (nil, false)", root, got, ok)
		}
	}
}

func TestLookupPath(t *testing.T) {
	data := decodeJSON(t, `{"ApexOauth": {"Crossplay": {"EU-West": {"Status": "UP"}}}}`)

	if _, ok := LookupPath(data, "ApexOauth.Crossplay.EU-West"); !ok {
		t.Error("LookupPath() should find nested region")
	}
	if _, ok := LookupPath(data, "ApexOauth.Steam"); ok {
		t.Error("LookupPath() should not find missing service")
	}
}

func TestExtractRegionReading(t *testing.T) {
	data := decodeJSON(t, `{
		"EA_login": {
			"US-East": {"Status": "UP", "ResponseTime": 42},
			"US-West": {"Status": "SLOW", "ResponseTime": 310.5},
			"EU-East": {"Status": "", "ResponseTime": 0},
			"EU-West": {"ResponseTime": 12},
			"Asia": {"Status": "DOWN"},
			"South-America": null,
			"US-Central": {},
			"Text": {"Status": "UP", "ResponseTime": "25"},
			"Junk": {"Status": "UP", "ResponseTime": "fast"},
			"Flag": {"Status": true, "ResponseTime": 7}
		},
		"ApexOauth": {"Crossplay": {"EU-West": {"Status": "SLOW", "ResponseTime": 99}}},
		"Broken": "not an object"
	}`)

	tests := []struct {
		name   string
		path   string
		region string
		def    float64
		want   RegionReading
	}{
		{"full reading", "EA_login", "US-East", 2, RegionReading{"UP", 42}},
		{"slow fractional", "EA_login", "US-West", 2, RegionReading{"SLOW", 310.5}},
		{"zero latency replaced", "EA_login", "EU-East", 15, RegionReading{"UP", 15}},
		{"missing status", "EA_login", "EU-West", 2, RegionReading{"UP", 12}},
		{"missing latency", "EA_login", "Asia", 2, RegionReading{"DOWN", 2}},
		{"null region", "EA_login", "South-America", 15, RegionReading{"UP", 15}},
		{"empty region record", "EA_login", "US-Central", 15, RegionReading{"UP", 15}},
		{"missing region", "EA_login", "Mars", 15, RegionReading{"UP", 15}},
		{"numeric string latency", "EA_login", "Text", 15, RegionReading{"UP", 25}},
		{"garbage latency", "EA_login", "Junk", 15, RegionReading{"UP", 15}},
		{"non-string status", "EA_login", "Flag", 15, RegionReading{"true", 7}},
		{"dotted path", "ApexOauth.Crossplay", "EU-West", 15, RegionReading{"SLOW", 99}},
		{"missing dotted segment", "ApexOauth.Steam", "EU-West", 15, RegionReading{"UP", 15}},
		{"missing service", "EA_accounts", "EU-West", 15, RegionReading{"UP", 15}},
		{"service is a string", "Broken", "EU-West", 15, RegionReading{"UP", 15}},
		{"walk past a string", "Broken.deeper", "EU-West", 15, RegionReading{"UP", 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRegionReading(data, tt.path, tt.region, tt.def)
			if got != tt.want {
				t.Errorf("ExtractRegionReading(%q, %q, %v) = %+v, want %+v", tt.path, tt.region, tt.def, got, tt.want)
			}
		})
	}
}

func TestExtractRegionReading_ZeroLatencyQuirk(t *testing.T) {
	data := map[string]any{
		"EA_novafusion": map[string]any{
			"US-East": map[string]any{"Status": "UP", "ResponseTime": 0},
		},
	}

	got := ExtractRegionReading(data, "EA_novafusion", "US-East", 15)
	want := RegionReading{Status: "UP", ResponseTimeMs: 15}
	if got != want {
		t.Errorf("ExtractRegionReading() = %+v, want %+v", got, want)
	}
}

func TestExtractRegionReading_NilData(t *testing.T) {
	got := ExtractRegionReading(nil, "EA_login", "US-East", 2)
	want := RegionReading{Status: "UP", ResponseTimeMs: 2}
	if got != want {
		t.Errorf("ExtractRegionReading(nil) = %+v, want %+v", got, want)
	}
}

func TestExtractRegionReading_RecoversPanic(t *testing.T) {
	got := ExtractRegionReading(trapNode{}, "EA_login", "US-East", 2)
	want := RegionReading{Status: "UP", ResponseTimeMs: 2}
	if got != want {
		t.Errorf("ExtractRegionReading(trap) = %+v, want %+v", got, want)
	}

	nested := map[string]any{"EA_login": trapNode{}}
	got = ExtractRegionReading(nested, "EA_login", "US-East", 2)
	if got != want {
		t.Errorf("ExtractRegionReading(nested trap) = %+v, want %+v", got, want)
	}
}

func TestExtractRegionReading_NodeTree(t *testing.T) {
	data := mapNode{
		"EA_login": mapNode{
			"US-East": mapNode{"Status": "slow", "ResponseTime": int64(80)},
		},
	}

	got := ExtractRegionReading(data, "EA_login", "US-East", 2)
	want := RegionReading{Status: "slow", ResponseTimeMs: 80}
	if got != want {
		t.Errorf("ExtractRegionReading(node tree) = %+v, want %+v", got, want)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{"", false},
		{"x", true},
		{0, false},
		{0.0, false},
		{int64(3), true},
		{uint8(0), false},
		{json.Number("0"), false},
		{json.Number("12"), true},
		{json.Number(""), false},
		{map[string]any{}, true},
		{[]any{}, true},
	}

	for _, tt := range tests {
		if got := truthy(tt.v); got != tt.want {
			t.Errorf("truthy(%#v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

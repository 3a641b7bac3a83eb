package apexstatus

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatRanking_NoData(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{"nil", nil},
		{"empty object", map[string]any{}},
		{"rp null", map[string]any{"RP": nil}},
		{"rp zero", map[string]any{"RP": 0.0}},
		{"not an object", "predators"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRanking(tt.data); got != NoRankingData {
				t.Errorf("FormatRanking() = %q, want %q", got, NoRankingData)
			}
		})
	}
}

func TestFormatRanking_PartialPlatforms(t *testing.T) {
	data := decodeJSON(t, `{"RP": {"PC": {"val": 12345, "totalMastersAndPreds": 6789}}}`)

	got := FormatRanking(data)
	want := "🖥️ **PC (Steam / EA App)**\n┗ Threshold: `12,345 RP`  •  Players: `6,789`" +
		"\n\n" +
		"🎮 **PlayStation**\n┗ Threshold: `N/A RP`  •  Players: `N/A`" +
		"\n\n" +
		"🟩 **Xbox**\n┗ Threshold: `N/A RP`  •  Players: `N/A`" +
		"\n\n" +
		"🔄 **Switch**\n┗ Threshold: `N/A RP`  •  Players: `N/A`"
	if got != want {
		t.Errorf("FormatRanking() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatRanking_MissingFields(t *testing.T) {
	data := map[string]any{
		"RP": map[string]any{
			"PC":     map[string]any{"val": 20000},
			"PS4":    map[string]any{"totalMastersAndPreds": 1500},
			"X1":     map[string]any{"val": 0, "totalMastersAndPreds": nil},
			"SWITCH": "garbage",
		},
	}

	paragraphs := strings.Split(FormatRanking(data), "\n\n")
	if len(paragraphs) != 4 {
		t.Fatalf("paragraph count = %d, want 4", len(paragraphs))
	}

	wantSuffixes := []string{
		"Threshold: `20,000 RP`  •  Players: `N/A`",
		"Threshold: `N/A RP`  •  Players: `1,500`",
		"Threshold: `0 RP`  •  Players: `N/A`",
		"Threshold: `N/A RP`  •  Players: `N/A`",
	}
	for i, suffix := range wantSuffixes {
		if !strings.HasSuffix(paragraphs[i], suffix) {
			t.Errorf("paragraph %d = %q, want suffix %q", i, paragraphs[i], suffix)
		}
	}
}

func TestFormatRankingFor_CustomPlatforms(t *testing.T) {
	data := map[string]any{"RP": map[string]any{"PC": map[string]any{"val": 1000, "totalMastersAndPreds": 10}}}
	platforms := []Platform{{Key: "PC", Name: "Computer", Glyph: "*"}}

	got := FormatRankingFor(data, platforms)
	want := "* **Computer**\n┗ Threshold: `1,000 RP`  •  Players: `10`"
	if got != want {
		t.Errorf("FormatRankingFor() = %q, want %q", got, want)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, NotAvailable},
		{"empty string", "", NotAvailable},
		{"string passthrough", "soon", "soon"},
		{"zero", 0.0, "0"},
		{"small", 999.0, "999"},
		{"thousands", 12345.0, "12,345"},
		{"millions", 1234567.0, "1,234,567"},
		{"negative", -4500.0, "-4,500"},
		{"fraction rounded", 12345.6789, "12,345.679"},
		{"int", 6789, "6,789"},
		{"int64", int64(1000000), "1,000,000"},
		{"uint64 huge", uint64(18446744073709551615), "18,446,744,073,709,551,615"},
		{"json number int", json.Number("15000"), "15,000"},
		{"json number float", json.Number("1500.5"), "1,500.5"},
		{"json number garbage", json.Number("abc"), NotAvailable},
		{"bool", true, "true"},
		{"object", map[string]any{}, NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.v); got != tt.want {
				t.Errorf("FormatNumber(%#v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

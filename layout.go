package apexstatus

import (
	"errors"
	"fmt"
)

// Default report text.
const (
	DefaultRankingTitle = "Apex Predator Ranked Point Threshold"
	DefaultFooter       = "Status data provided by https://apexlegendsstatus.com/"
)

// Service is one column of region readings in the report.
type Service struct {
	// Label is the embed field name.
	Label string

	// Path is the dotted path of the service in the status tree,
	// for example "ApexOauth.Crossplay".
	Path string

	// DefaultResponseTime is the latency in milliseconds reported for
	// regions with no usable reading.
	DefaultResponseTime float64
}

// ServiceRow is a pair of services rendered side by side as inline fields.
type ServiceRow [2]Service

// Platform is one ranked platform of the Predator threshold summary.
type Platform struct {
	// Key is the platform key under the "RP" section of the ranking tree.
	Key string

	// Name is the bold display name.
	Name string

	// Glyph is shown in front of the name.
	Glyph string
}

// Layout describes which data goes where in a status report.
//
// Fields are rendered in this order: every [ServiceRow] followed by a spacer,
// then the ranking summary, then the footer.
type Layout struct {
	Regions      []string
	Rows         []ServiceRow
	Platforms    []Platform
	RankingTitle string
	Footer       string
}

// DefaultRegions are the regions of the standard report, in display order.
func DefaultRegions() []string {
	return []string{
		"US-East", "US-Central", "US-West",
		"EU-East", "EU-West", "South-America", "Asia",
	}
}

// DefaultRows are the service columns of the standard report.
func DefaultRows() []ServiceRow {
	return []ServiceRow{
		{
			{Label: "[Crossplay] Apex Login", Path: "EA_novafusion", DefaultResponseTime: 15},
			{Label: "EA Login", Path: "EA_login", DefaultResponseTime: 2},
		},
		{
			{Label: "EA Accounts", Path: "EA_accounts", DefaultResponseTime: 15},
			{Label: "Lobby & Matchmaking Services", Path: "ApexOauth.Crossplay", DefaultResponseTime: 15},
		},
	}
}

// DefaultPlatforms are the ranked platforms of the standard report.
func DefaultPlatforms() []Platform {
	return []Platform{
		{Key: "PC", Name: "PC (Steam / EA App)", Glyph: "🖥️"},
		{Key: "PS4", Name: "PlayStation", Glyph: "🎮"},
		{Key: "X1", Name: "Xbox", Glyph: "🟩"},
		{Key: "SWITCH", Name: "Switch", Glyph: "🔄"},
	}
}

// DefaultLayout returns the layout of the standard report. Each call returns
// fresh slices.
func DefaultLayout() Layout {
	return Layout{
		Regions:      DefaultRegions(),
		Rows:         DefaultRows(),
		Platforms:    DefaultPlatforms(),
		RankingTitle: DefaultRankingTitle,
		Footer:       DefaultFooter,
	}
}

// Validate reports the first problem that would make the layout render
// nonsense. An empty region list is allowed; its columns read "No data".
func (l Layout) Validate() error {
	for i, row := range l.Rows {
		for j, svc := range row {
			if svc.Label == "" {
				return fmt.Errorf("rows[%d][%d]: label is required", i, j)
			}
			if svc.Path == "" {
				return fmt.Errorf("rows[%d][%d] (%s): path is required", i, j, svc.Label)
			}
			if svc.DefaultResponseTime < 0 {
				return fmt.Errorf("rows[%d][%d] (%s): default response time cannot be negative, got %v",
					i, j, svc.Label, svc.DefaultResponseTime)
			}
		}
	}

	seen := make(map[string]struct{}, len(l.Platforms))
	for i, p := range l.Platforms {
		if p.Key == "" {
			return fmt.Errorf("platforms[%d]: key is required", i)
		}
		if _, exists := seen[p.Key]; exists {
			return fmt.Errorf("platforms[%d]: duplicate key %q", i, p.Key)
		}
		seen[p.Key] = struct{}{}
	}

	if l.RankingTitle == "" {
		return errors.New("ranking title is required")
	}
	return nil
}

// clone returns a deep copy so a Formatter never shares slices with callers.
func (l Layout) clone() Layout {
	cp := l
	cp.Regions = append([]string(nil), l.Regions...)
	cp.Rows = append([]ServiceRow(nil), l.Rows...)
	cp.Platforms = append([]Platform(nil), l.Platforms...)
	return cp
}

package config

import (
	"fmt"

	"github.com/jpalmerr/apexstatus"
)

// BuildLayout converts parsed configuration into an [apexstatus.Layout].
//
// Services are grouped into rows in file order: services[0] and services[1]
// form the first row, and so on.
func BuildLayout(cfg *Config) (apexstatus.Layout, error) {
	if len(cfg.Services)%2 != 0 {
		return apexstatus.Layout{}, fmt.Errorf("services must come in pairs, got %d", len(cfg.Services))
	}

	layout := apexstatus.Layout{
		Regions:      append([]string(nil), cfg.Regions...),
		RankingTitle: cfg.RankingTitle,
		Footer:       cfg.Footer,
	}

	for i := 0; i < len(cfg.Services); i += 2 {
		layout.Rows = append(layout.Rows, apexstatus.ServiceRow{
			buildService(cfg.Services[i]),
			buildService(cfg.Services[i+1]),
		})
	}

	for _, p := range cfg.Platforms {
		layout.Platforms = append(layout.Platforms, apexstatus.Platform{
			Key:   p.Key,
			Name:  p.Name,
			Glyph: p.Glyph,
		})
	}

	if err := layout.Validate(); err != nil {
		return apexstatus.Layout{}, err
	}
	return layout, nil
}

// BuildOptions converts parsed configuration into [apexstatus.Option] values
// ready to pass to [apexstatus.New].
func BuildOptions(cfg *Config) ([]apexstatus.Option, error) {
	layout, err := BuildLayout(cfg)
	if err != nil {
		return nil, err
	}
	return []apexstatus.Option{apexstatus.WithLayout(layout)}, nil
}

func buildService(sc ServiceConfig) apexstatus.Service {
	return apexstatus.Service{
		Label:               sc.Label,
		Path:                sc.Path,
		DefaultResponseTime: sc.DefaultResponseTime.Milliseconds(),
	}
}

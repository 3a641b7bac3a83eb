// Package config provides YAML configuration parsing for the apexstatus CLI.
//
// This package lets the renderer run as a standalone binary with a
// configuration file, as an alternative to configuring a Formatter in code.
// Every key is optional; anything left out falls back to the standard report.
//
// Example configuration:
//
//	status_file: ${APEX_STATUS_FILE:-status.json}
//	ranking_file: predator.json
//	footer: Status data provided by https://apexlegendsstatus.com/
//
//	regions: [US-East, EU-West, Asia]
//
//	services:
//	  - label: "[Crossplay] Apex Login"
//	    path: EA_novafusion
//	    default_response_time: 15
//	  - label: EA Login
//	    path: EA_login
//	    default_response_time: 2ms
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jpalmerr/apexstatus"
)

// Config is the root configuration structure for the CLI.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// StatusFile is the JSON status tree to render.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}
	StatusFile string `yaml:"status_file"`

	// RankingFile is the JSON Predator ranking tree to render.
	// Supports environment variable substitution.
	RankingFile string `yaml:"ranking_file"`

	// Footer is the attribution text. Supports environment variable
	// substitution. Defaults to the apexlegendsstatus.com credit.
	Footer string `yaml:"footer"`

	// RankingTitle is the name of the ranking field.
	RankingTitle string `yaml:"ranking_title"`

	// Regions lists the regions in display order.
	// Defaults to the seven standard regions.
	Regions []string `yaml:"regions"`

	// Services lists the region columns. Consecutive pairs share a row.
	// Defaults to the four standard services.
	Services []ServiceConfig `yaml:"services"`

	// Platforms lists the ranked platforms in display order.
	// Defaults to PC, PS4, X1 and SWITCH.
	Platforms []PlatformConfig `yaml:"platforms"`
}

// ServiceConfig defines one region column.
type ServiceConfig struct {
	// Label is the field name shown in the embed.
	Label string `yaml:"label"`

	// Path is the dotted path of the service in the status tree.
	Path string `yaml:"path"`

	// DefaultResponseTime is reported for regions without a reading.
	// Accepts a number of milliseconds (15) or a duration string ("15ms").
	DefaultResponseTime Latency `yaml:"default_response_time"`
}

// PlatformConfig defines one ranked platform.
type PlatformConfig struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
}

// Latency is a response time in milliseconds, unmarshalled from YAML.
type Latency float64

// UnmarshalYAML implements yaml.Unmarshaler for Latency.
func (l *Latency) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)

	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		*l = Latency(ms)
		return nil
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid latency %q: %w", s, err)
	}

	*l = Latency(float64(parsed) / float64(time.Millisecond))
	return nil
}

// Milliseconds returns the latency as a number of milliseconds.
func (l Latency) Milliseconds() float64 {
	return float64(l)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in the file are expanded during parsing.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in StatusFile, RankingFile and Footer.
// Missing regions, services, platforms, footer and ranking title are filled
// in from [apexstatus.DefaultLayout].
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration of the standard report with no input
// files set.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	layout := apexstatus.DefaultLayout()

	if c.Footer == "" {
		c.Footer = layout.Footer
	}
	if c.RankingTitle == "" {
		c.RankingTitle = layout.RankingTitle
	}
	if c.Regions == nil {
		c.Regions = layout.Regions
	}
	if len(c.Services) == 0 {
		for _, row := range layout.Rows {
			for _, svc := range row {
				c.Services = append(c.Services, ServiceConfig{
					Label:               svc.Label,
					Path:                svc.Path,
					DefaultResponseTime: Latency(svc.DefaultResponseTime),
				})
			}
		}
	}
	if len(c.Platforms) == 0 {
		for _, p := range layout.Platforms {
			c.Platforms = append(c.Platforms, PlatformConfig{Key: p.Key, Name: p.Name, Glyph: p.Glyph})
		}
	}
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"status_file", &c.StatusFile},
		{"ranking_file", &c.RankingFile},
		{"footer", &c.Footer},
	} {
		expanded, err := expandEnvVars(*field.value)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}

	for i, region := range c.Regions {
		if strings.TrimSpace(region) == "" {
			return fmt.Errorf("regions[%d]: name is required", i)
		}
	}

	if len(c.Services)%2 != 0 {
		return fmt.Errorf("services must come in pairs, got %d", len(c.Services))
	}

	for i, svc := range c.Services {
		if svc.Label == "" {
			return fmt.Errorf("services[%d]: label is required", i)
		}
		if svc.Path == "" {
			return fmt.Errorf("services[%d] (%s): path is required", i, svc.Label)
		}
		if strings.HasPrefix(svc.Path, ".") || strings.HasSuffix(svc.Path, ".") || strings.Contains(svc.Path, "..") {
			return fmt.Errorf("services[%d] (%s): path %q has an empty segment", i, svc.Label, svc.Path)
		}
		if svc.DefaultResponseTime < 0 {
			return fmt.Errorf("services[%d] (%s): default_response_time cannot be negative, got %v",
				i, svc.Label, svc.DefaultResponseTime.Milliseconds())
		}
	}

	seen := make(map[string]struct{}, len(c.Platforms))
	for i, p := range c.Platforms {
		if p.Key == "" {
			return fmt.Errorf("platforms[%d]: key is required", i)
		}
		if p.Name == "" {
			return fmt.Errorf("platforms[%d] (%s): name is required", i, p.Key)
		}
		if _, exists := seen[p.Key]; exists {
			return fmt.Errorf("platforms[%d] (%s): duplicate key", i, p.Key)
		}
		seen[p.Key] = struct{}{}
	}

	return nil
}

package apexstatus

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// formatterConfig holds mutable state during Formatter construction.
type formatterConfig struct {
	layout Layout
	footer *string
	logger *slog.Logger
	now    func() time.Time
}

// Option is a function that configures a [Formatter] during construction.
//
// Options return an error if validation fails.
//
// Built-in options: [WithLayout], [WithFooter], [WithLogger], [WithClock].
type Option func(*formatterConfig) error

// WithLayout replaces the regions, service columns and ranked platforms of
// the report. Defaults to [DefaultLayout].
//
// Example:
//
//	layout := apexstatus.DefaultLayout()
//	layout.Regions = []string{"EU-West", "EU-East"}
//	f, err := apexstatus.New(apexstatus.WithLayout(layout))
//
// Returns an error if the layout does not pass [Layout.Validate].
func WithLayout(layout Layout) Option {
	return func(cfg *formatterConfig) error {
		if err := layout.Validate(); err != nil {
			return fmt.Errorf("invalid layout: %w", err)
		}
		cfg.layout = layout.clone()
		return nil
	}
}

// WithFooter overrides the footer attribution text, regardless of the order
// in which it is combined with [WithLayout].
//
// Returns an error if the text is empty.
func WithFooter(text string) Option {
	return func(cfg *formatterConfig) error {
		if text == "" {
			return errors.New("footer cannot be empty")
		}
		cfg.footer = &text
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for failure diagnostics.
//
// If not specified, [slog.Default] is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	f, err := apexstatus.New(apexstatus.WithLogger(logger))
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *formatterConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithClock sets the time source used to stamp error panels.
// Defaults to [time.Now].
//
// Returns an error if now is nil.
func WithClock(now func() time.Time) Option {
	return func(cfg *formatterConfig) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		cfg.now = now
		return nil
	}
}

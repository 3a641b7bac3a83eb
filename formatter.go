package apexstatus

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/jpalmerr/apexstatus/embed"
)

// NoData replaces a service column that rendered empty, which only happens
// when the layout has no regions.
const NoData = "No data"

// ErrorTitle and ErrorMessage make up the panel returned when a report
// cannot be assembled.
const (
	ErrorTitle   = "Error"
	ErrorMessage = "⚠️ Error retrieving server status. Please try again later.\nIf this persists, please report this issue."
)

// Formatter assembles status reports into chat embeds.
//
// A Formatter is immutable after [New] and safe for concurrent use; each
// call only touches the embed it is given.
type Formatter struct {
	layout Layout
	logger *slog.Logger
	now    func() time.Time
}

// New creates a [Formatter] with the given options.
//
// Defaults:
//   - Layout: [DefaultLayout]
//   - Logger: [slog.Default]
//   - Clock: [time.Now]
//
// Returns an error if any option is invalid.
func New(opts ...Option) (*Formatter, error) {
	cfg := &formatterConfig{
		layout: DefaultLayout(),
		now:    time.Now,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.footer != nil {
		cfg.layout.Footer = *cfg.footer
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Formatter{
		layout: cfg.layout,
		logger: logger,
		now:    cfg.now,
	}, nil
}

// Layout returns a copy of the formatter's layout.
func (f *Formatter) Layout() Layout {
	return f.layout.clone()
}

// FormatServerStatus renders data and ranking into e and returns it wrapped
// in a [embed.Response].
//
// e receives, in order: two inline region fields per [ServiceRow] followed
// by a spacer, the non-inline ranking field, and the footer.
//
// FormatServerStatus never panics. If assembly fails for any reason,
// including a nil e, the failure is logged with a correlation ID and the
// response carries a single red error panel instead. e is only modified
// when assembly succeeds.
func (f *Formatter) FormatServerStatus(data any, e *embed.Embed, ranking any) (resp embed.Response) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			f.logger.Error("error formatting server status",
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			resp = embed.Response{Embeds: []*embed.Embed{f.ErrorPanel()}}
		}
	}()

	fields := f.Fields(data, ranking)

	e.AddFields(fields...)
	e.SetFooter(f.layout.Footer)

	return embed.Response{Embeds: []*embed.Embed{e}}
}

// Fields returns the report fields without touching any embed. Unlike
// [Formatter.FormatServerStatus], it does not recover from panics raised by
// a misbehaving [Node].
func (f *Formatter) Fields(data any, ranking any) []embed.Field {
	fields := make([]embed.Field, 0, 3*len(f.layout.Rows)+1)

	for _, row := range f.layout.Rows {
		left, right := FormatRegionPair(f.layout.Regions, data, row[0].Path, row[1].Path,
			[2]float64{row[0].DefaultResponseTime, row[1].DefaultResponseTime})

		fields = append(fields,
			regionField(row[0].Label, left),
			regionField(row[1].Label, right),
			embed.Spacer(),
		)
	}

	fields = append(fields, embed.Field{
		Name:  f.layout.RankingTitle,
		Value: FormatRankingFor(ranking, f.layout.Platforms),
	})

	return fields
}

// ErrorPanel returns the generic error embed, stamped with the current time.
func (f *Formatter) ErrorPanel() *embed.Embed {
	return embed.New().
		SetColor(embed.ColorRed).
		SetTitle(ErrorTitle).
		SetDescription(ErrorMessage).
		SetTimestamp(f.now())
}

func regionField(label, value string) embed.Field {
	if value == "" {
		value = NoData
	}
	return embed.Field{Name: label, Value: value, Inline: true}
}

// FormatServerStatus renders a report with the default layout, logging
// failures to [slog.Default]. See [Formatter.FormatServerStatus].
func FormatServerStatus(data any, e *embed.Embed, ranking any) embed.Response {
	f := &Formatter{
		layout: DefaultLayout(),
		logger: slog.Default(),
		now:    time.Now,
	}
	return f.FormatServerStatus(data, e, ranking)
}

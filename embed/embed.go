package embed

import "time"

// ZeroWidthSpace is the name and value of a layout-only spacer field.
// Chat clients reject empty field names, so a zero-width space is used.
const ZeroWidthSpace = "\u200B"

// Common side colors.
const (
	ColorRed   = 0xFF0000
	ColorGreen = 0x2ECC71
)

// Field is one named entry of an [Embed].
type Field struct {
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Inline bool   `json:"inline,omitempty" yaml:"inline,omitempty"`
}

// Spacer returns an empty non-inline field used to break a row of inline
// fields.
func Spacer() Field {
	return Field{Name: ZeroWidthSpace, Value: ZeroWidthSpace}
}

// IsSpacer reports whether f carries no content.
func (f Field) IsSpacer() bool {
	return f.Name == ZeroWidthSpace && f.Value == ZeroWidthSpace && !f.Inline
}

// Footer is the small text shown below the fields.
type Footer struct {
	Text string `json:"text" yaml:"text"`
}

// Embed is a rich chat message panel.
type Embed struct {
	Title       string     `json:"title,omitempty" yaml:"title,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Color       int        `json:"color,omitempty" yaml:"color,omitempty"`
	Fields      []Field    `json:"fields,omitempty" yaml:"fields,omitempty"`
	Footer      *Footer    `json:"footer,omitempty" yaml:"footer,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// New returns an empty [Embed].
func New() *Embed {
	return &Embed{}
}

// AddFields appends fields in order.
func (e *Embed) AddFields(fields ...Field) *Embed {
	e.Fields = append(e.Fields, fields...)
	return e
}

// SetFooter sets the footer text, replacing any previous footer.
func (e *Embed) SetFooter(text string) *Embed {
	e.Footer = &Footer{Text: text}
	return e
}

// SetTitle sets the panel title.
func (e *Embed) SetTitle(title string) *Embed {
	e.Title = title
	return e
}

// SetDescription sets the text shown under the title.
func (e *Embed) SetDescription(description string) *Embed {
	e.Description = description
	return e
}

// SetColor sets the side color as a 0xRRGGBB value.
func (e *Embed) SetColor(color int) *Embed {
	e.Color = color
	return e
}

// SetTimestamp stamps the panel. The time is stored in UTC.
func (e *Embed) SetTimestamp(t time.Time) *Embed {
	ts := t.UTC()
	e.Timestamp = &ts
	return e
}

// Response is the envelope a chat client sends: one message carrying one or
// more embeds.
type Response struct {
	Embeds []*Embed `json:"embeds" yaml:"embeds"`
}

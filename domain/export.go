package domain

import (
	"fmt"
	"time"
)

const DefaultDateFormat = "02-Jan-06 03:04 PM"

type Guild struct {
	ID      string
	Name    string
	IconURL string
}

type Channel struct {
	ID       string
	Name     string
	Category string
	Topic    string
}

// ExportFormat identifies one member of the writer family.
type ExportFormat string

const (
	HTMLDark  ExportFormat = "HtmlDark"
	HTMLLight ExportFormat = "HtmlLight"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case HTMLDark, HTMLLight:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// ThemeName returns the theme used to render the format.
func (f ExportFormat) ThemeName() string {
	switch f {
	case HTMLLight:
		return "Light"
	default:
		return "Dark"
	}
}

func (f ExportFormat) IsHTML() bool {
	return f == HTMLDark || f == HTMLLight
}

// Range bounds the messages of an export. A nil bound is open.
type Range struct {
	After  *time.Time
	Before *time.Time
}

func (r Range) Contains(t time.Time) bool {
	if r.After != nil && !t.After(*r.After) {
		return false
	}
	if r.Before != nil && !t.Before(*r.Before) {
		return false
	}
	return true
}

// ExportRequest describes what is being exported. It is shared by every
// render context of one export.
type ExportRequest struct {
	Guild      Guild
	Channel    Channel
	Range      Range
	Format     ExportFormat
	DateFormat string
}

func (r ExportRequest) FormatDate(t time.Time) string {
	layout := r.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}
	return t.Format(layout)
}

// LayoutContext is handed to the preamble and postamble templates.
type LayoutContext struct {
	Request      ExportRequest
	ThemeName    string
	MessageCount int64
}

// GroupContext is handed to the message group template.
type GroupContext struct {
	Request ExportRequest
	Group   MessageGroup
}

package row

import (
	"strings"

	"beagle/internal/app/event"
)

const defaultTimeFormat = "15:04:05.000"

// Layout formats the summary line of an event
type Layout struct {
	TimeFormat string
}

// NewLayout creates a layout with the given timestamp format
func NewLayout(timeFormat string) *Layout {
	if timeFormat == "" {
		timeFormat = defaultTimeFormat
	}

	return &Layout{TimeFormat: timeFormat}
}

// Format renders "time LEVEL [thread] logger - message"
func (l *Layout) Format(e *event.Event) string {
	if e == nil {
		return ""
	}

	timeFormat := defaultTimeFormat
	if l != nil && l.TimeFormat != "" {
		timeFormat = l.TimeFormat
	}

	var b strings.Builder

	if !e.Timestamp.IsZero() {
		b.WriteString(e.Timestamp.Format(timeFormat))
		b.WriteByte(' ')
	}

	level := e.Level.String()
	b.WriteString(level)
	b.WriteString(strings.Repeat(" ", 5-len(level)))

	if e.Thread != "" {
		b.WriteString(" [")
		b.WriteString(e.Thread)
		b.WriteByte(']')
	}

	if e.Logger != "" {
		b.WriteByte(' ')
		b.WriteString(e.Logger)
	}

	b.WriteString(" - ")
	b.WriteString(firstLine(e.Message))

	return b.String()
}

// firstLine keeps the summary to a single display line
func firstLine(message string) string {
	if i := strings.IndexAny(message, "\r\n"); i >= 0 {
		return message[:i]
	}

	return message
}

package row

import (
	"fmt"

	"beagle/internal/app/event"
)

// Kind enumerates the row variants a log event expands into
type Kind uint8

const (
	KindEvent Kind = iota
	KindCauseHeader
	KindStackFrame
	KindElidedFrames
)

var kindNames = map[Kind]string{
	KindEvent:        "event",
	KindCauseHeader:  "cause",
	KindStackFrame:   "frame",
	KindElidedFrames: "elided",
}

// String returns the kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Cell is a view cell a row writes its representation into
type Cell interface {
	SetText(text string)
	SetKind(kind Kind)
	SetAlternate(alternate bool)
}

// Row is one display line derived from a log event
type Row struct {
	kind      Kind
	event     *event.Event
	throwable *event.Throwable
	index     int
	alternate bool
	layout    *Layout
}

// NewEvent creates the summary row of an event
func NewEvent(e *event.Event, alternate bool, layout *Layout) Row {
	return Row{kind: KindEvent, event: e, alternate: alternate, layout: layout}
}

// NewCauseHeader creates the header row of the causeIndex-th throwable in a chain
func NewCauseHeader(e *event.Event, t *event.Throwable, causeIndex int, alternate bool) Row {
	return Row{kind: KindCauseHeader, event: e, throwable: t, index: causeIndex, alternate: alternate}
}

// NewStackFrame creates the row of one stack frame of a throwable
func NewStackFrame(e *event.Event, t *event.Throwable, frameIndex int, alternate bool) Row {
	return Row{kind: KindStackFrame, event: e, throwable: t, index: frameIndex, alternate: alternate}
}

// NewElidedFrames creates the placeholder row for frames shared with the enclosing throwable
func NewElidedFrames(e *event.Event, t *event.Throwable, alternate bool) Row {
	return Row{kind: KindElidedFrames, event: e, throwable: t, index: t.CommonFrames, alternate: alternate}
}

// Kind returns the row variant
func (r Row) Kind() Kind {
	return r.kind
}

// Event returns the event the row was derived from
func (r Row) Event() *event.Event {
	return r.event
}

// Throwable returns the throwable of a cause, frame or elided row
func (r Row) Throwable() *event.Throwable {
	return r.throwable
}

// Index returns the cause chain index, frame index or common frame count depending on kind
func (r Row) Index() int {
	return r.index
}

// Alternate reports whether the row uses the alternate shade
func (r Row) Alternate() bool {
	return r.alternate
}

// Text renders the row as a single display line
func (r Row) Text() string {
	switch r.kind {
	case KindEvent:
		return r.layout.Format(r.event)
	case KindCauseHeader:
		if r.index == 0 {
			return r.throwable.Summary()
		}

		return "Caused by: " + r.throwable.Summary()
	case KindStackFrame:
		if r.index < 0 || r.index >= len(r.throwable.Frames) {
			return ""
		}

		return "    " + r.throwable.Frames[r.index].String()
	case KindElidedFrames:
		return fmt.Sprintf("    ... %d common frames omitted", r.index)
	default:
		return ""
	}
}

// Populate writes the row's representation into a view cell
func (r Row) Populate(cell Cell) {
	cell.SetText(r.Text())
	cell.SetKind(r.kind)
	cell.SetAlternate(r.alternate)
}

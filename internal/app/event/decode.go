package event

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"beagle/internal/app/errors"
)

// record is the JSON-lines wire shape of an event
type record struct {
	Timestamp time.Time        `json:"timestamp"`
	Level     string           `json:"level"`
	Logger    string           `json:"logger"`
	Thread    string           `json:"thread"`
	Message   string           `json:"message"`
	Throwable *throwableRecord `json:"throwable,omitempty"`
}

type throwableRecord struct {
	ClassName    string           `json:"class"`
	Message      string           `json:"message"`
	Frames       []frameRecord    `json:"frames"`
	CommonFrames int              `json:"common_frames"`
	Cause        *throwableRecord `json:"cause,omitempty"`
}

type frameRecord struct {
	Class  string `json:"class"`
	Method string `json:"method"`
	File   string `json:"file"`
	Line   int    `json:"line"`
}

// Decode parses one JSON-lines record into an Event
func Decode(data []byte) (*Event, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrMalformedEvent, err)
	}

	if r.Message == "" && r.Throwable == nil {
		return nil, fmt.Errorf("%w: neither message nor throwable", errors.ErrMalformedEvent)
	}

	return &Event{
		Timestamp: r.Timestamp,
		Level:     ParseLevel(r.Level),
		Logger:    r.Logger,
		Thread:    r.Thread,
		Message:   r.Message,
		Throwable: r.Throwable.toThrowable(),
	}, nil
}

// Encode renders an Event in the JSON-lines wire shape
func Encode(e *Event) ([]byte, error) {
	r := record{
		Timestamp: e.Timestamp,
		Level:     e.Level.String(),
		Logger:    e.Logger,
		Thread:    e.Thread,
		Message:   e.Message,
		Throwable: fromThrowable(e.Throwable, 0),
	}

	return json.Marshal(r)
}

// toThrowable converts the wire chain; JSON cannot express cycles
func (r *throwableRecord) toThrowable() *Throwable {
	if r == nil {
		return nil
	}

	frames := make([]Frame, len(r.Frames))
	for i, f := range r.Frames {
		frames[i] = Frame(f)
	}

	return &Throwable{
		ClassName:    r.ClassName,
		Message:      r.Message,
		Frames:       frames,
		CommonFrames: r.CommonFrames,
		Cause:        r.Cause.toThrowable(),
	}
}

// maxEncodeDepth stops Encode from following a cyclic chain forever
const maxEncodeDepth = 256

func fromThrowable(t *Throwable, depth int) *throwableRecord {
	if t == nil || depth >= maxEncodeDepth {
		return nil
	}

	frames := make([]frameRecord, len(t.Frames))
	for i, f := range t.Frames {
		frames[i] = frameRecord(f)
	}

	return &throwableRecord{
		ClassName:    t.ClassName,
		Message:      t.Message,
		Frames:       frames,
		CommonFrames: t.CommonFrames,
		Cause:        fromThrowable(t.Cause, depth+1),
	}
}

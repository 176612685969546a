package projector

import (
	"beagle/internal/app/errors"
	"beagle/internal/app/event"
	"beagle/internal/app/row"
	"beagle/internal/config/logger"
)

// Projector converts log events into display rows
type Projector interface {
	Project(e *event.Event) []row.Row
}

// projector implements Projector; parity is the running event counter used for shading
type projector struct {
	layout   *row.Layout
	maxDepth int
	parity   int
	log      logger.Logger
}

// New creates a projector with the given layout and cause chain depth bound
func New(layout *row.Layout, maxDepth int, log logger.Logger) Projector {
	return &projector{
		layout:   layout,
		maxDepth: maxDepth,
		log:      log,
	}
}

// Project emits the event row, then for each cause its header, frames and optional elided row.
// Callers serialize Project; the parity counter is not safe for concurrent use.
func (p *projector) Project(e *event.Event) []row.Row {
	if e == nil {
		return nil
	}

	p.parity++
	alternate := p.parity%2 == 0

	rows := make([]row.Row, 0, 1+estimateRows(e.Throwable, p.maxDepth))
	rows = append(rows, row.NewEvent(e, alternate, p.layout))

	seen := make(map[*event.Throwable]struct{})

	for t, depth := e.Throwable, 0; t != nil; t, depth = t.Cause, depth+1 {
		_, cyclic := seen[t]
		if cyclic || depth >= p.maxDepth {
			err := errors.ErrCauseTooDeep
			if cyclic {
				err = errors.ErrCyclicCause
			}

			p.log.Warn().
				Err(err).
				Bool("cyclic", cyclic).
				Str("logger", e.Logger).
				Int("depth", depth).
				Msg("Aborted cause chain walk")

			break
		}

		seen[t] = struct{}{}

		rows = append(rows, row.NewCauseHeader(e, t, depth, alternate))

		for i := range t.Frames {
			rows = append(rows, row.NewStackFrame(e, t, i, alternate))
		}

		if t.CommonFrames > 0 {
			rows = append(rows, row.NewElidedFrames(e, t, alternate))
		}
	}

	return rows
}

// estimateRows sizes the output for well-formed chains without following cycles
func estimateRows(t *event.Throwable, maxDepth int) int {
	n := 0

	for depth := 0; t != nil && depth < maxDepth; t, depth = t.Cause, depth+1 {
		n += 2 + len(t.Frames)
	}

	return n
}

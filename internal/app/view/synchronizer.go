package view

import (
	"sync/atomic"

	"beagle/internal/app/errors"
	"beagle/internal/app/row"
	"beagle/internal/config/logger"
)

// Synchronizer applies buffer mutations to a Surface through its Executor.
// Every call blocks until the surface has been updated.
type Synchronizer struct {
	surface Surface
	exec    Executor
	closed  atomic.Bool
	log     logger.Logger
}

// NewSynchronizer creates a synchronizer for the surface
func NewSynchronizer(surface Surface, exec Executor, log logger.Logger) *Synchronizer {
	return &Synchronizer{
		surface: surface,
		exec:    exec,
		log:     log,
	}
}

// MaterializeAppended creates one cell per row in order and reveals the last one when following
func (s *Synchronizer) MaterializeAppended(rows []row.Row, follow bool) {
	if len(rows) == 0 {
		return
	}

	s.run("materialize", func() {
		var last row.Cell

		for _, r := range rows {
			if s.closed.Load() {
				return
			}

			cell := s.surface.NewCell()
			r.Populate(cell)
			last = cell
		}

		if follow && last != nil {
			s.surface.Reveal(last)
		}
	})
}

// ResetAfterEviction drops all cells, resizes and moves the anchor up by shift rows
func (s *Synchronizer) ResetAfterEviction(count, shift int) {
	s.run("reset after eviction", func() {
		top := s.surface.TopIndex() - shift
		if top < 0 {
			top = 0
		}

		s.surface.ClearAll()
		s.surface.SetRowCount(count)
		s.surface.SetTopIndex(top)
	})
}

// ResetPlain drops all cells and resizes without moving the anchor
func (s *Synchronizer) ResetPlain(count int) {
	s.run("reset", func() {
		s.surface.ClearAll()
		s.surface.SetRowCount(count)
	})
}

// ClearCues resets auxiliary indicators on the surface
func (s *Synchronizer) ClearCues() {
	s.run("clear cues", s.surface.ClearCues)
}

// Close stops all further surface mutation, including a materialize in progress
func (s *Synchronizer) Close() {
	s.closed.Store(true)
}

// run executes fn on the surface context unless closed
func (s *Synchronizer) run(op string, fn func()) {
	if s.closed.Load() {
		return
	}

	ok := s.exec.Exec(func() {
		if s.closed.Load() {
			return
		}

		fn()
	})

	if !ok {
		s.log.Debug().Err(errors.ErrExecutorStopped).Str("op", op).Msg("Surface update dropped")
	}
}

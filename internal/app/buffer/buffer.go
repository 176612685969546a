//go:generate mockgen -source=buffer.go -destination=buffer_mock.go -package=buffer
package buffer

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/looplab/fsm"

	"beagle/internal/app/event"
	"beagle/internal/app/projector"
	"beagle/internal/app/row"
	"beagle/internal/config"
	"beagle/internal/config/logger"
)

// Synchronizer pushes buffer changes to the rendering surface.
// Each call returns once the surface has applied the change.
type Synchronizer interface {
	MaterializeAppended(rows []row.Row, follow bool)
	ResetAfterEviction(count, shift int)
	ResetPlain(count int)
	ClearCues()
	Close()
}

// Buffer is a bounded, ordered collection of rows backing a virtual view
type Buffer interface {
	AppendEvent(e *event.Event)
	AppendEvents(events []*event.Event)
	Append(rows []row.Row)
	RemoveRun(index int)
	InsertAt(r row.Row, index int)
	Get(index int) (row.Row, bool)
	Populate(index int, cell row.Cell) bool
	Size() int
	SetActive(active bool)
	IsActive() bool
	State() string
	ClearCues()
	Dispose()
}

// buffer implements Buffer.
// ingest serializes producers so rows of one append stay contiguous,
// mu serializes structural changes together with their surface handoff,
// rowsMu guards the slice so surface reads never wait on a handoff.
type buffer struct {
	capacity  int
	batch     int
	chunkSize int
	maxExtent int

	projector projector.Projector
	sync      Synchronizer
	lifecycle *fsm.FSM

	ingest   sync.Mutex
	mu       sync.Mutex
	rowsMu   sync.RWMutex
	rows     []row.Row
	disposed atomic.Bool

	log logger.Logger
}

// New creates a buffer that projects events with p and mirrors changes through s
func New(cfg config.Buffer, p projector.Projector, s Synchronizer, log logger.Logger) Buffer {
	return &buffer{
		capacity:  cfg.Capacity,
		batch:     cfg.EvictionBatch(),
		chunkSize: cfg.ChunkSize(),
		maxExtent: cfg.MaxExtent,
		projector: p,
		sync:      s,
		lifecycle: newLifecycleFSM(log),
		rows:      make([]row.Row, 0, cfg.Capacity),
		log:       log,
	}
}

// AppendEvent projects one event and appends its rows
func (b *buffer) AppendEvent(e *event.Event) {
	if e == nil || b.disposed.Load() {
		return
	}

	b.ingest.Lock()
	defer b.ingest.Unlock()

	b.appendLocked(b.projector.Project(e))
}

// AppendEvents projects events in order and appends all of their rows
func (b *buffer) AppendEvents(events []*event.Event) {
	if len(events) == 0 || b.disposed.Load() {
		return
	}

	b.ingest.Lock()
	defer b.ingest.Unlock()

	var rows []row.Row
	for _, e := range events {
		rows = append(rows, b.projector.Project(e)...)
	}

	b.appendLocked(rows)
}

// Append adds rows at the tail in sub-batches, evicting the oldest rows when full
func (b *buffer) Append(rows []row.Row) {
	if len(rows) == 0 || b.disposed.Load() {
		return
	}

	b.ingest.Lock()
	defer b.ingest.Unlock()

	b.appendLocked(rows)
}

func (b *buffer) appendLocked(rows []row.Row) {
	for i, chunk := range chunks(rows, b.chunkSize) {
		if !b.appendChunk(chunk) {
			b.log.Debug().Int("dropped", len(rows)-i*b.chunkSize).Msg("Buffer disposed, dropping remaining rows")
			return
		}
	}
}

// appendChunk runs one grow, materialize and contract step; false once disposed
func (b *buffer) appendChunk(chunk []row.Row) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed.Load() {
		return false
	}

	b.rowsMu.Lock()
	b.rows = append(b.rows, chunk...)
	b.rowsMu.Unlock()

	b.sync.MaterializeAppended(chunk, b.IsActive())

	b.rowsMu.Lock()

	if len(b.rows) < b.capacity {
		b.rowsMu.Unlock()
		return true
	}

	b.rows = slices.Delete(b.rows, 0, b.batch)
	size := len(b.rows)
	b.rowsMu.Unlock()

	b.log.Debug().Int("evicted", b.batch).Int("size", size).Msg("Buffer contracted")
	b.sync.ResetAfterEviction(size, b.batch)

	return true
}

// RemoveRun removes the contiguous run of elided-frame rows around index,
// looking at most maxExtent rows away in each direction
func (b *buffer) RemoveRun(index int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed.Load() {
		return
	}

	b.rowsMu.Lock()

	begin, end, ok := b.runBounds(index)
	if !ok {
		b.rowsMu.Unlock()
		return
	}

	b.rows = slices.Delete(b.rows, begin, end+1)
	size := len(b.rows)
	b.rowsMu.Unlock()

	b.sync.ResetPlain(size)
}

// runBounds finds the inclusive run around index; rowsMu must be held
func (b *buffer) runBounds(index int) (int, int, bool) {
	if index < 0 || index >= len(b.rows) || b.rows[index].Kind() != row.KindElidedFrames {
		return 0, 0, false
	}

	begin := index
	for i := index - 1; i >= 0 && index-i <= b.maxExtent; i-- {
		if b.rows[i].Kind() != row.KindElidedFrames {
			break
		}

		begin = i
	}

	end := index
	for i := index + 1; i < len(b.rows) && i-index <= b.maxExtent; i++ {
		if b.rows[i].Kind() != row.KindElidedFrames {
			break
		}

		end = i
	}

	return begin, end, true
}

// InsertAt inserts a single row, clamping index into [0, Size()]
func (b *buffer) InsertAt(r row.Row, index int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed.Load() {
		return
	}

	b.rowsMu.Lock()
	index = max(0, min(index, len(b.rows)))
	b.rows = slices.Insert(b.rows, index, r)
	size := len(b.rows)
	b.rowsMu.Unlock()

	b.sync.ResetPlain(size)
}

// Get returns the row at index, or false when index is out of range
func (b *buffer) Get(index int) (row.Row, bool) {
	b.rowsMu.RLock()
	defer b.rowsMu.RUnlock()

	if index < 0 || index >= len(b.rows) {
		return row.Row{}, false
	}

	return b.rows[index], true
}

// Populate fills cell from the row at index; stale indices are ignored
func (b *buffer) Populate(index int, cell row.Cell) bool {
	r, ok := b.Get(index)
	if !ok {
		return false
	}

	r.Populate(cell)

	return true
}

// Size returns the current number of rows
func (b *buffer) Size() int {
	b.rowsMu.RLock()
	defer b.rowsMu.RUnlock()

	return len(b.rows)
}

// SetActive releases the buffer to follow mode or freezes it on selection
func (b *buffer) SetActive(active bool) {
	if active {
		fire(b.lifecycle, Release, b.log)
		return
	}

	fire(b.lifecycle, Select, b.log)
}

// IsActive reports whether new rows are followed
func (b *buffer) IsActive() bool {
	return b.lifecycle.Current() == Active
}

// State returns the lifecycle state name
func (b *buffer) State() string {
	return b.lifecycle.Current()
}

// ClearCues resets auxiliary indicators on the surface
func (b *buffer) ClearCues() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed.Load() {
		return
	}

	b.sync.ClearCues()
}

// Dispose tears the buffer down; it never waits on an in-flight handoff
func (b *buffer) Dispose() {
	if b.disposed.Swap(true) {
		return
	}

	b.sync.Close()
	fire(b.lifecycle, Dispose, b.log)

	b.log.Debug().Msg("Buffer disposed")
}

package grid

import (
	"beagle/internal/app/event"
	"beagle/internal/app/row"
	"beagle/internal/app/view"
)

// Cell is one materialized line of the list
type Cell struct {
	index     int
	text      string
	kind      row.Kind
	alternate bool
}

func (c *Cell) SetText(text string)         { c.text = text }
func (c *Cell) SetKind(kind row.Kind)       { c.kind = kind }
func (c *Cell) SetAlternate(alternate bool) { c.alternate = alternate }

// Text returns the rendered line
func (c *Cell) Text() string { return c.text }

// List is the virtual list state behind the grid. It implements view.Surface
// and is only touched from the bubbletea event loop.
type List struct {
	cells    map[int]*Cell
	count    int
	top      int
	cursor   int
	height   int
	jump     *Blink
	selected *event.Event
}

// NewList creates an empty list
func NewList() *List {
	return &List{
		cells:  make(map[int]*Cell),
		height: 1,
		jump:   NewBlink(),
	}
}

// NewCell appends a cell at the end of the list
func (l *List) NewCell() row.Cell {
	c := &Cell{index: l.count}
	l.cells[l.count] = c
	l.count++

	return c
}

// Reveal moves the cursor to cell and scrolls so it is the last visible line
func (l *List) Reveal(cell row.Cell) {
	c, ok := cell.(*Cell)
	if !ok {
		return
	}

	l.cursor = c.index
	l.top = max(0, c.index-l.height+1)
}

// ClearAll drops every materialized cell; they are repopulated on demand
func (l *List) ClearAll() {
	l.cells = make(map[int]*Cell)
}

// SetRowCount sets the number of rows in the list
func (l *List) SetRowCount(n int) {
	l.count = max(0, n)
	l.clamp()
}

// TopIndex returns the first visible row
func (l *List) TopIndex() int {
	return l.top
}

// SetTopIndex moves the anchor; the cursor shifts with it so it stays on the same content
func (l *List) SetTopIndex(index int) {
	l.cursor += index - l.top
	l.top = index
	l.clamp()
}

// ClearCues stops the jump cue and forgets the diff reference
func (l *List) ClearCues() {
	l.jump.Stop()
	l.selected = nil
}

// SetHeight sets the number of visible rows
func (l *List) SetHeight(height int) {
	l.height = max(1, height)
	l.clamp()
}

// Move moves the cursor by delta rows, scrolling to keep it visible
func (l *List) Move(delta int) {
	l.cursor += delta
	l.clamp()

	if l.cursor < l.top {
		l.top = l.cursor
	}

	if l.cursor >= l.top+l.height {
		l.top = l.cursor - l.height + 1
	}
}

// End moves the cursor to the last row
func (l *List) End() {
	l.cursor = max(0, l.count-1)
	l.top = max(0, l.count-l.height)
}

// Cursor returns the cursor row
func (l *List) Cursor() int {
	return l.cursor
}

// Count returns the number of rows
func (l *List) Count() int {
	return l.count
}

// Visible returns the cells in the visible window, populating missing ones from src.
// A nil entry marks a row src could not provide.
func (l *List) Visible(src view.Source) []*Cell {
	end := min(l.top+l.height, l.count)
	if end <= l.top {
		return nil
	}

	cells := make([]*Cell, 0, end-l.top)

	for i := l.top; i < end; i++ {
		cells = append(cells, l.cell(i, src))
	}

	return cells
}

// cell returns the cached cell at index or asks src to populate a new one
func (l *List) cell(index int, src view.Source) *Cell {
	if c, ok := l.cells[index]; ok {
		return c
	}

	c := &Cell{index: index}
	if !src.Populate(index, c) {
		return nil
	}

	l.cells[index] = c

	return c
}

// clamp keeps cursor and anchor inside the list
func (l *List) clamp() {
	last := max(0, l.count-1)

	l.cursor = max(0, min(l.cursor, last))
	l.top = max(0, min(l.top, last))
}

package view

import (
	"sync"

	"beagle/internal/app/row"
)

// MemoryCell is a cell held by a Memory surface
type MemoryCell struct {
	Index     int
	Text      string
	Kind      row.Kind
	Alternate bool
}

func (c *MemoryCell) SetText(text string)         { c.Text = text }
func (c *MemoryCell) SetKind(kind row.Kind)       { c.Kind = kind }
func (c *MemoryCell) SetAlternate(alternate bool) { c.Alternate = alternate }

// Memory is a headless Surface that keeps its state in memory
type Memory struct {
	mu        sync.Mutex
	cells     map[int]*MemoryCell
	count     int
	top       int
	revealed  int
	resets    int
	cueResets int
}

// NewMemory creates an empty headless surface
func NewMemory() *Memory {
	return &Memory{
		cells:    make(map[int]*MemoryCell),
		revealed: -1,
	}
}

// NewCell appends a cell at the end of the list
func (m *Memory) NewCell() row.Cell {
	m.mu.Lock()
	defer m.mu.Unlock()

	cell := &MemoryCell{Index: m.count}
	m.cells[m.count] = cell
	m.count++

	return cell
}

// Reveal scrolls so the cell is the last visible row
func (m *Memory) Reveal(cell row.Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := cell.(*MemoryCell); ok {
		m.revealed = c.Index
	}
}

// ClearAll drops every materialized cell
func (m *Memory) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cells = make(map[int]*MemoryCell)
	m.resets++
}

// SetRowCount sets the virtual row count
func (m *Memory) SetRowCount(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.count = n
}

// TopIndex returns the scroll anchor
func (m *Memory) TopIndex() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.top
}

// SetTopIndex sets the scroll anchor
func (m *Memory) SetTopIndex(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.top = index
}

// ClearCues counts cue resets
func (m *Memory) ClearCues() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cueResets++
}

// Count returns the virtual row count
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.count
}

// Cell returns the materialized cell at index, if any
func (m *Memory) Cell(index int) (*MemoryCell, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cells[index]

	return c, ok
}

// Revealed returns the index of the last revealed cell, -1 if none
func (m *Memory) Revealed() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.revealed
}

// Resets returns how many times the surface was cleared
func (m *Memory) Resets() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.resets
}

// CueResets returns how many times cues were cleared
func (m *Memory) CueResets() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cueResets
}

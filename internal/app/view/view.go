//go:generate mockgen -source=view.go -destination=view_mock.go -package=view
package view

import (
	"beagle/internal/app/row"
)

// Surface is the virtual list the buffer is rendered into.
// All methods are called on the surface's own mutation context only.
type Surface interface {
	NewCell() row.Cell
	Reveal(cell row.Cell)
	ClearAll()
	SetRowCount(n int)
	TopIndex() int
	SetTopIndex(index int)
	ClearCues()
}

// Source answers lazy population requests from the surface
type Source interface {
	Populate(index int, cell row.Cell) bool
	Size() int
}

// Executor runs functions on the surface's single mutation context
type Executor interface {
	// Exec blocks until fn has run; it returns false without running fn once stopped
	Exec(fn func()) bool
}

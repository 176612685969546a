package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"beagle/internal/app/event"
	"beagle/internal/app/row"
	"beagle/internal/app/view"
)

func Test_List_NewCellAndReveal(t *testing.T) {
	l := NewList()
	l.SetHeight(3)

	var last row.Cell
	for i := 0; i < 5; i++ {
		last = l.NewCell()
	}

	l.Reveal(last)

	assert.Equal(t, 5, l.Count())
	assert.Equal(t, 4, l.Cursor())
	assert.Equal(t, 2, l.TopIndex())
}

func Test_List_SetTopIndexShiftsCursor(t *testing.T) {
	l := NewList()
	l.SetHeight(5)
	l.SetRowCount(100)
	l.Move(30)

	assert.Equal(t, 30, l.Cursor())
	assert.Equal(t, 26, l.TopIndex())

	l.SetTopIndex(16)

	assert.Equal(t, 16, l.TopIndex())
	assert.Equal(t, 20, l.Cursor())
}

func Test_List_SetRowCountClamps(t *testing.T) {
	l := NewList()
	l.SetHeight(5)
	l.SetRowCount(50)
	l.End()

	l.SetRowCount(10)

	assert.Equal(t, 9, l.Cursor())
	assert.LessOrEqual(t, l.TopIndex(), 9)

	l.SetRowCount(0)

	assert.Equal(t, 0, l.Cursor())
	assert.Equal(t, 0, l.TopIndex())
}

func Test_List_Move(t *testing.T) {
	tests := []struct {
		name   string
		moves  []int
		cursor int
		top    int
	}{
		{name: "Down within page", moves: []int{2}, cursor: 2, top: 0},
		{name: "Down past page scrolls", moves: []int{6}, cursor: 6, top: 3},
		{name: "Up past top scrolls", moves: []int{8, -7}, cursor: 1, top: 1},
		{name: "Clamped at end", moves: []int{100}, cursor: 19, top: 16},
		{name: "Clamped at start", moves: []int{-5}, cursor: 0, top: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList()
			l.SetHeight(4)
			l.SetRowCount(20)

			for _, d := range tt.moves {
				l.Move(d)
			}

			assert.Equal(t, tt.cursor, l.Cursor())
			assert.Equal(t, tt.top, l.TopIndex())
		})
	}
}

func Test_List_VisiblePopulatesLazily(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := view.NewMockSource(ctrl)

	l := NewList()
	l.SetHeight(3)
	l.SetRowCount(3)

	src.EXPECT().Populate(0, gomock.Any()).DoAndReturn(func(_ int, c row.Cell) bool {
		row.NewEvent(&event.Event{Message: "zero"}, false, nil).Populate(c)
		return true
	}).Times(1)
	src.EXPECT().Populate(1, gomock.Any()).Return(false).Times(2)
	src.EXPECT().Populate(2, gomock.Any()).Return(true).Times(1)

	first := l.Visible(src)
	second := l.Visible(src)

	assert.Len(t, first, 3)
	assert.Nil(t, first[1])
	assert.Same(t, first[0], second[0])
	assert.Contains(t, first[0].Text(), "zero")
}

func Test_List_ClearAllDropsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := view.NewMockSource(ctrl)

	l := NewList()
	l.SetHeight(2)
	l.NewCell()

	src.EXPECT().Populate(0, gomock.Any()).Return(true).Times(1)

	l.Visible(src)
	l.ClearAll()
	l.Visible(src)
}

func Test_List_ClearCues(t *testing.T) {
	l := NewList()
	l.jump.Start()
	l.selected = &event.Event{}

	l.ClearCues()

	assert.False(t, l.jump.IsActive())
	assert.Nil(t, l.selected)
}

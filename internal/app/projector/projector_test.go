package projector

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"beagle/internal/app/event"
	"beagle/internal/app/row"
	"beagle/internal/config"
	"beagle/internal/config/logger"
)

// chain builds a cause chain with the given frame counts and elided flags, outermost first
func chain(frames []int, elided []bool) *event.Throwable {
	var head, tail *event.Throwable

	for i, n := range frames {
		t := &event.Throwable{ClassName: fmt.Sprintf("E%d", i)}
		for f := 0; f < n; f++ {
			t.Frames = append(t.Frames, event.Frame{Class: t.ClassName, Method: fmt.Sprintf("m%d", f)})
		}

		if elided[i] {
			t.CommonFrames = 7
		}

		if head == nil {
			head = t
		} else {
			tail.Cause = t
		}

		tail = t
	}

	return head
}

func kinds(rows []row.Row) []row.Kind {
	result := make([]row.Kind, len(rows))
	for i, r := range rows {
		result[i] = r.Kind()
	}

	return result
}

func Test_Project_NoThrowable(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := New(row.NewLayout(""), 64, logger.NewMockLogger(ctrl))

	rows := p.Project(&event.Event{Message: "hello"})

	require.Len(t, rows, 1)
	assert.Equal(t, row.KindEvent, rows[0].Kind())
}

func Test_Project_NilEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := New(row.NewLayout(""), 64, logger.NewMockLogger(ctrl))

	assert.Empty(t, p.Project(nil))
}

func Test_Project_RowCount(t *testing.T) {
	tests := []struct {
		name     string
		frames   []int
		elided   []bool
		expected int
	}{
		{name: "Two nested causes with elided frames", frames: []int{3, 2}, elided: []bool{true, true}, expected: 10},
		{name: "Single cause without elided frames", frames: []int{4}, elided: []bool{false}, expected: 6},
		{name: "Cause without frames", frames: []int{0}, elided: []bool{false}, expected: 2},
		{name: "Three causes mixed", frames: []int{5, 0, 1}, elided: []bool{false, true, true}, expected: 1 + (1 + 5) + (1 + 0 + 1) + (1 + 1 + 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p := New(row.NewLayout(""), 64, logger.NewMockLogger(ctrl))

			rows := p.Project(&event.Event{Message: "failed", Throwable: chain(tt.frames, tt.elided)})

			assert.Len(t, rows, tt.expected)
		})
	}
}

func Test_Project_Order(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := New(row.NewLayout(""), 64, logger.NewMockLogger(ctrl))

	e := &event.Event{Message: "failed", Throwable: chain([]int{3, 2}, []bool{true, true})}
	rows := p.Project(e)

	expected := []row.Kind{
		row.KindEvent,
		row.KindCauseHeader, row.KindStackFrame, row.KindStackFrame, row.KindStackFrame, row.KindElidedFrames,
		row.KindCauseHeader, row.KindStackFrame, row.KindStackFrame, row.KindElidedFrames,
	}
	assert.Equal(t, expected, kinds(rows))

	assert.Same(t, e.Throwable, rows[1].Throwable())
	assert.Equal(t, 0, rows[1].Index())
	assert.Same(t, e.Throwable.Cause, rows[6].Throwable())
	assert.Equal(t, 1, rows[6].Index())

	for i, r := range rows[2:5] {
		assert.Equal(t, i, r.Index())
	}

	assert.Equal(t, 7, rows[5].Index())
}

func Test_Project_AlternatesPerEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := New(row.NewLayout(""), 64, logger.NewMockLogger(ctrl))

	first := p.Project(&event.Event{Message: "a", Throwable: chain([]int{1}, []bool{false})})
	second := p.Project(&event.Event{Message: "b"})
	third := p.Project(&event.Event{Message: "c"})

	for _, r := range first {
		assert.False(t, r.Alternate())
	}

	assert.True(t, second[0].Alternate())
	assert.False(t, third[0].Alternate())
}

// warnings returns a JSON logger at warn level and its output
func warnings() (logger.Logger, *bytes.Buffer) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = logger.WarnLevel
	cfg.Logging.Format = logger.JSONFormat

	out := &bytes.Buffer{}

	return logger.NewLoggerWithOutput(cfg, out), out
}

func Test_Project_CyclicCause(t *testing.T) {
	log, out := warnings()
	p := New(row.NewLayout(""), 64, log)

	a := &event.Throwable{ClassName: "A", Frames: []event.Frame{{Method: "x"}}}
	b := &event.Throwable{ClassName: "B", Cause: a}
	a.Cause = b

	rows := p.Project(&event.Event{Message: "loop", Throwable: a})

	assert.Equal(t, []row.Kind{row.KindEvent, row.KindCauseHeader, row.KindStackFrame, row.KindCauseHeader}, kinds(rows))
	assert.Contains(t, out.String(), `"error":"cause chain does not terminate"`)
	assert.Contains(t, out.String(), `"cyclic":true`)
}

func Test_Project_DepthBound(t *testing.T) {
	log, out := warnings()
	p := New(row.NewLayout(""), 2, log)

	rows := p.Project(&event.Event{Message: "deep", Throwable: chain([]int{0, 0, 0, 0}, []bool{false, false, false, false})})

	assert.Len(t, rows, 3)
	assert.Contains(t, out.String(), `"error":"cause chain exceeds depth bound"`)
	assert.Contains(t, out.String(), `"cyclic":false`)
	assert.NotContains(t, out.String(), "does not terminate")
}

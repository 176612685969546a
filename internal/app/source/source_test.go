package source

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"beagle/internal/app/errors"
	"beagle/internal/app/event"
	"beagle/internal/config"
	"beagle/internal/config/logger"
)

// collector is a concurrency-safe Sink
type collector struct {
	mu      sync.Mutex
	batches [][]*event.Event
}

func (c *collector) AppendEvents(events []*event.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.batches = append(c.batches, events)
}

func (c *collector) messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []string

	for _, batch := range c.batches {
		for _, e := range batch {
			out = append(out, e.Message)
		}
	}

	return out
}

func testLogger() logger.Logger {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = logger.ErrorLevel

	return logger.NewLoggerWithOutput(cfg, io.Discard)
}

func lines(messages ...string) string {
	var b strings.Builder

	for _, m := range messages {
		b.WriteString(`{"level":"INFO","logger":"app","message":"` + m + `"}` + "\n")
	}

	return b.String()
}

func Test_Reader_Run(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		batch    int
		batches  int
		messages []string
	}{
		{
			name:     "Single partial batch flushed at EOF",
			input:    lines("a", "b"),
			batch:    10,
			batches:  1,
			messages: []string{"a", "b"},
		},
		{
			name:     "Full batches then remainder",
			input:    lines("a", "b", "c", "d", "e"),
			batch:    2,
			batches:  3,
			messages: []string{"a", "b", "c", "d", "e"},
		},
		{
			name:     "Malformed and blank lines skipped",
			input:    lines("a") + "not json\n\n   \n{}\n" + lines("b"),
			batch:    10,
			batches:  1,
			messages: []string{"a", "b"},
		},
		{
			name:     "Last line without newline",
			input:    strings.TrimSuffix(lines("a", "b"), "\n"),
			batch:    10,
			batches:  1,
			messages: []string{"a", "b"},
		},
		{
			name:    "Empty input",
			input:   "",
			batch:   10,
			batches: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &collector{}
			r := NewReader("test", strings.NewReader(tt.input), tt.batch, sink, testLogger())

			err := r.Run(context.Background())

			require.NoError(t, err)
			assert.Len(t, sink.batches, tt.batches)
			assert.Equal(t, tt.messages, sink.messages())
		})
	}
}

func Test_Reader_CancelledContextStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := NewMockSink(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewReader("test", strings.NewReader(lines("a", "b")), 10, sink, testLogger())

	assert.NoError(t, r.Run(ctx))
}

func Test_Reader_OversizedLine(t *testing.T) {
	sink := &collector{}
	input := strings.Repeat("x", config.MaxLineSize+1) + "\n"

	r := NewReader("big", strings.NewReader(input), 10, sink, testLogger())
	err := r.Run(context.Background())

	assert.ErrorIs(t, err, errors.ErrFailedToReadInput)
}

func Test_Reader_MalformedLinesAreLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := logger.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn().Return(nil).Times(2)
	mockLogger.EXPECT().Debug().Return(nil).Times(1)

	sink := NewMockSink(ctrl)
	sink.EXPECT().AppendEvents(gomock.Len(1)).Times(1)

	r := NewReader("test", strings.NewReader("oops\n"+lines("a")+"{}\n"), 10, sink, mockLogger)

	assert.NoError(t, r.Run(context.Background()))
}

func Test_RunAll(t *testing.T) {
	t.Run("All runners complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := NewMockRunner(ctrl)
		second := NewMockRunner(ctrl)

		first.EXPECT().Run(gomock.Any()).Return(nil)
		second.EXPECT().Run(gomock.Any()).Return(nil)

		assert.NoError(t, RunAll(context.Background(), first, second))
	})

	t.Run("First error cancels the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		failing := NewMockRunner(ctrl)
		waiting := NewMockRunner(ctrl)

		failing.EXPECT().Run(gomock.Any()).Return(errors.ErrFailedToWatch)
		waiting.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		})

		err := RunAll(context.Background(), failing, waiting)

		assert.ErrorIs(t, err, errors.ErrFailedToWatch)
	})
}

func Test_NewMatcher(t *testing.T) {
	_, err := NewMatcher([]string{"[invalid"})
	assert.Error(t, err)

	m, err := NewMatcher([]string{"**/*.jsonl", "app.log"})
	require.NoError(t, err)

	tests := []struct {
		path     string
		expected bool
	}{
		{path: "events.jsonl", expected: true},
		{path: "./events.jsonl", expected: true},
		{path: "nested/dir/events.jsonl", expected: true},
		{path: "app.log", expected: true},
		{path: "nested/app.log", expected: false},
		{path: "events.json", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Match(tt.path))
		})
	}
}

func Test_NewTail_InvalidPattern(t *testing.T) {
	_, err := NewTail(t.TempDir(), []string{"[invalid"}, 10, &collector{}, testLogger())

	assert.ErrorIs(t, err, errors.ErrInvalidSourcePattern)
}

func Test_Tail_FollowsAppendedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.jsonl")

	require.NoError(t, os.WriteFile(path, []byte(lines("existing")), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte(lines("ignored")), 0o600))

	sink := &collector{}
	tail, err := NewTail(dir, []string{"*.jsonl"}, 10, sink, testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- tail.Run(ctx) }()

	require.Eventually(t, func() bool {
		return len(sink.messages()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)

	_, err = f.WriteString(lines("appended") + `{"message":"par`)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(sink.messages()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	_, err = f.WriteString(`tial"}` + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.Eventually(t, func() bool {
		return len(sink.messages()) == 3
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("tail did not stop")
	}

	assert.Equal(t, []string{"existing", "appended", "partial"}, sink.messages())
}

func Test_Tail_DropsOversizedPartialUntilNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.jsonl")

	cfg := config.DefaultConfig()
	cfg.Logging.Level = logger.WarnLevel
	cfg.Logging.Format = logger.JSONFormat

	var out bytes.Buffer

	sink := &collector{}
	tail, err := NewTail(dir, []string{"*.jsonl"}, 10, sink, logger.NewLoggerWithOutput(cfg, &out))
	require.NoError(t, err)
	t.Cleanup(func() { tail.fsWatcher.Close() })

	require.NoError(t, os.WriteFile(path, []byte(`{"message":"`+strings.Repeat("x", config.MaxLineSize)), 0o600))
	tail.follow(path)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)

	_, err = f.WriteString(strings.Repeat("x", 64))
	require.NoError(t, err)
	tail.follow(path)

	_, err = f.WriteString(`xx"}` + "\n" + lines("after"))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	tail.follow(path)

	assert.Equal(t, []string{"after"}, sink.messages())
	assert.Equal(t, 1, strings.Count(out.String(), "Dropping oversized line"))
	assert.NotContains(t, out.String(), "Skipping malformed event")
	assert.False(t, tail.files[path].discarding)
}

func Test_Factory_Tail(t *testing.T) {
	cfg := config.DefaultConfig()
	f := NewFactory(cfg, testLogger())

	t.Run("Configured patterns by default", func(t *testing.T) {
		runner, err := f.Tail(t.TempDir(), nil, &collector{})

		require.NoError(t, err)
		assert.NotNil(t, runner)
	})

	t.Run("Explicit patterns are validated", func(t *testing.T) {
		runner, err := f.Tail(t.TempDir(), []string{"[bad"}, &collector{})

		assert.ErrorIs(t, err, errors.ErrInvalidSourcePattern)
		assert.Nil(t, runner)
	})
}

//go:generate mockgen -source=source.go -destination=source_mock.go -package=source
package source

import (
	"bytes"
	"context"

	"golang.org/x/sync/errgroup"

	"beagle/internal/app/event"
	"beagle/internal/config/logger"
)

// Sink receives decoded events in arrival order
type Sink interface {
	AppendEvents(events []*event.Event)
}

// Runner produces events until its input is exhausted or ctx is cancelled
type Runner interface {
	Run(ctx context.Context) error
}

// RunAll runs every runner concurrently and returns the first error
func RunAll(ctx context.Context, runners ...Runner) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, r := range runners {
		g.Go(func() error {
			return r.Run(ctx)
		})
	}

	return g.Wait()
}

// batcher decodes lines and hands full batches to the sink
type batcher struct {
	size    int
	sink    Sink
	pending []*event.Event
	skipped int
	log     logger.Logger
}

func newBatcher(size int, sink Sink, log logger.Logger) *batcher {
	return &batcher{
		size:    size,
		sink:    sink,
		pending: make([]*event.Event, 0, size),
		log:     log,
	}
}

// add decodes one line; blank lines are ignored and malformed ones skipped
func (b *batcher) add(line []byte) {
	if len(bytes.TrimSpace(line)) == 0 {
		return
	}

	e, err := event.Decode(line)
	if err != nil {
		b.skipped++
		b.log.Warn().Err(err).Msg("Skipping malformed event")

		return
	}

	b.pending = append(b.pending, e)
	if len(b.pending) >= b.size {
		b.flush()
	}
}

// flush hands pending events to the sink
func (b *batcher) flush() {
	if len(b.pending) == 0 {
		return
	}

	b.sink.AppendEvents(b.pending)
	b.pending = make([]*event.Event, 0, b.size)
}

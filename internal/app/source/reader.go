package source

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"beagle/internal/app/errors"
	"beagle/internal/config"
	"beagle/internal/config/logger"
)

// Reader decodes JSON lines from a stream into batches of events
type Reader struct {
	name  string
	input io.Reader
	batch int
	sink  Sink
	log   logger.Logger
}

// NewReader creates a reader; name identifies the stream in logs
func NewReader(name string, input io.Reader, batch int, sink Sink, log logger.Logger) *Reader {
	return &Reader{
		name:  name,
		input: input,
		batch: batch,
		sink:  sink,
		log:   log,
	}
}

// Run reads until EOF, flushing the last partial batch.
// Cancellation is observed between lines.
func (r *Reader) Run(ctx context.Context) error {
	b := newBatcher(r.batch, r.sink, r.log)
	defer b.flush()

	scanner := bufio.NewScanner(r.input)
	scanner.Buffer(make([]byte, 0, 64*1024), config.MaxLineSize)

	lines := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		lines++

		b.add(scanner.Bytes())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w '%s': %w", errors.ErrFailedToReadInput, r.name, err)
	}

	r.log.Debug().Str("input", r.name).Int("lines", lines).Int("skipped", b.skipped).Msg("Finished reading input")

	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"beagle/internal/app/errors"
	"beagle/internal/app/source"
	"beagle/internal/app/ui/grid"
	"beagle/internal/app/view"
)

// inputs are the producers for one session and the files they read
type inputs struct {
	runners []source.Runner
	files   []*os.File
}

// close releases every opened file
func (in *inputs) close() {
	for _, f := range in.files {
		f.Close()
	}
}

// show ingests events into a buffer shown by the grid or, with --no-ui, by a headless surface
func (c *cli) show(ctx context.Context, opts *Options) error {
	if opts.Stdin() && c.stdinIsTerminal() {
		return errors.ErrNoInput
	}

	if opts.NoUI {
		return c.showHeadless(ctx, opts)
	}

	return c.showGrid(ctx, opts)
}

// showHeadless runs producers to completion against an in-memory surface
func (c *cli) showHeadless(ctx context.Context, opts *Options) error {
	loop := view.NewLoop()
	go loop.Run(ctx)
	defer loop.Stop()

	surface := view.NewMemory()
	buf := c.buffers(view.NewSynchronizer(surface, loop, c.log))
	defer buf.Dispose()

	in, err := c.openInputs(opts, buf)
	if err != nil {
		return err
	}
	defer in.close()

	start := time.Now()
	err = source.RunAll(ctx, in.runners...)

	c.log.Info().
		Int("rows", buf.Size()).
		Int("cells", surface.Count()).
		Int("resets", surface.Resets()).
		Dur("elapsed", time.Since(start)).
		Msg("Ingest finished")

	return err
}

// showGrid shows the buffer in the grid until the user quits
func (c *cli) showGrid(ctx context.Context, opts *Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	list := grid.NewList()
	exec := grid.NewProgramExecutor()
	buf := c.buffers(view.NewSynchronizer(list, exec, c.log))

	in, err := c.openInputs(opts, buf)
	if err != nil {
		exec.Stop()
		buf.Dispose()

		return err
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Stdin() {
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	model := grid.NewModel(ctx, title(opts), buf, list, c.monitor, c.log)
	p := tea.NewProgram(model, programOpts...)
	exec.Bind(p.Send)

	go func() {
		defer in.close()

		if err := source.RunAll(ctx, in.runners...); err != nil {
			c.log.Error().Err(err).Msg("Event source failed")
		}
	}()

	_, err = p.Run()

	cancel()
	exec.Stop()
	buf.Dispose()

	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}

	return err
}

// openInputs builds one producer per file, one for --dir and one for stdin when nothing else is given
func (c *cli) openInputs(opts *Options, sink source.Sink) (*inputs, error) {
	in := &inputs{}

	for _, path := range opts.Files {
		f, err := os.Open(path)
		if err != nil {
			in.close()
			return nil, fmt.Errorf("%w '%s': %w", errors.ErrFailedToOpenInput, path, err)
		}

		in.files = append(in.files, f)
		in.runners = append(in.runners, c.sources.Reader(filepath.Base(path), f, sink))
	}

	if opts.Dir != "" {
		tail, err := c.sources.Tail(opts.Dir, opts.Patterns, sink)
		if err != nil {
			in.close()
			return nil, err
		}

		in.runners = append(in.runners, tail)
	}

	if opts.Stdin() {
		in.runners = append(in.runners, c.sources.Reader("stdin", c.stdin, sink))
	}

	return in, nil
}

// title names the inputs in the grid header
func title(opts *Options) string {
	var names []string

	for _, path := range opts.Files {
		names = append(names, filepath.Base(path))
	}

	if opts.Dir != "" {
		names = append(names, opts.Dir+"/")
	}

	if len(names) == 0 {
		return "stdin"
	}

	return strings.Join(names, ", ")
}

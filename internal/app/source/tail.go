package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"beagle/internal/app/errors"
	"beagle/internal/config"
	"beagle/internal/config/logger"
)

// followed is the read position of one tailed file; partial holds an unterminated last line.
// discarding is set after an oversized partial is dropped, until its newline arrives.
type followed struct {
	offset     int64
	partial    []byte
	discarding bool
}

// Tail follows files under a directory that match glob patterns
type Tail struct {
	dir       string
	matcher   Matcher
	batch     int
	sink      Sink
	fsWatcher *fsnotify.Watcher
	files     map[string]*followed
	log       logger.Logger
}

// NewTail creates a tail over dir; files already present are read from the start
func NewTail(dir string, patterns []string, batch int, sink Sink, log logger.Logger) (*Tail, error) {
	matcher, err := NewMatcher(patterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidSourcePattern, err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", errors.ErrFailedToWatch, dir, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", errors.ErrFailedToWatch, dir, err)
	}

	return &Tail{
		dir:       absDir,
		matcher:   matcher,
		batch:     batch,
		sink:      sink,
		fsWatcher: fsw,
		files:     make(map[string]*followed),
		log:       log,
	}, nil
}

// Run watches the directory tree and streams appended events until ctx is cancelled
func (t *Tail) Run(ctx context.Context) error {
	defer t.fsWatcher.Close()

	if err := t.addDirRecursive(t.dir); err != nil {
		return fmt.Errorf("%w '%s': %w", errors.ErrFailedToWatch, t.dir, err)
	}

	t.log.Info().Msgf("Following %s", t.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-t.fsWatcher.Events:
			if !ok {
				return nil
			}

			t.handleEvent(event)
		case err, ok := <-t.fsWatcher.Errors:
			if !ok {
				return nil
			}

			t.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// handleEvent processes a single fsnotify event
func (t *Tail) handleEvent(event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		delete(t.files, event.Name)
	case event.Has(fsnotify.Create):
		t.handleCreate(event.Name)
	case event.Has(fsnotify.Write):
		if t.matches(event.Name) {
			t.follow(event.Name)
		}
	}
}

// handleCreate watches new directories and reads new matching files
func (t *Tail) handleCreate(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	if info.IsDir() {
		if err := t.addDirRecursive(path); err != nil {
			t.log.Warn().Err(err).Msgf("Failed to watch new directory: %s", path)
		}

		return
	}

	if t.matches(path) {
		t.follow(path)
	}
}

// addDirRecursive watches a directory tree and reads the matching files already in it
func (t *Tail) addDirRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			if t.matches(path) {
				t.follow(path)
			}

			return nil
		}

		if path != t.dir && shouldSkipDir(info.Name()) {
			return filepath.SkipDir
		}

		if err := t.fsWatcher.Add(path); err != nil {
			t.log.Warn().Err(err).Msgf("Failed to watch directory: %s", path)
		}

		return nil
	})
}

// matches reports whether path, relative to the tailed directory, matches a pattern
func (t *Tail) matches(path string) bool {
	rel, err := filepath.Rel(t.dir, path)
	if err != nil || (len(rel) > 2 && rel[:2] == "..") {
		return false
	}

	return t.matcher.Match(rel)
}

// follow reads the bytes appended to path since the last read
func (t *Tail) follow(path string) {
	f, err := os.Open(path)
	if err != nil {
		t.log.Warn().Err(err).Msgf("Failed to open %s", path)
		return
	}
	defer f.Close()

	state, exists := t.files[path]
	if !exists {
		state = &followed{}
		t.files[path] = state
	}

	if info, err := f.Stat(); err == nil && info.Size() < state.offset {
		t.log.Info().Msgf("File %s was truncated, reading from start", path)

		state.offset = 0
		state.partial = nil
		state.discarding = false
	}

	if _, err := f.Seek(state.offset, io.SeekStart); err != nil {
		t.log.Warn().Err(err).Msgf("Failed to seek %s", path)
		return
	}

	b := newBatcher(t.batch, t.sink, t.log)
	defer b.flush()

	reader := bufio.NewReader(f)

	for {
		line, err := reader.ReadBytes('\n')
		state.offset += int64(len(line))

		if err == nil {
			if !state.discarding {
				b.add(append(state.partial, line...))
			}

			state.partial = nil
			state.discarding = false

			continue
		}

		if !state.discarding {
			state.partial = append(state.partial, line...)
		}

		if len(state.partial) > config.MaxLineSize {
			t.log.Warn().Msgf("Dropping oversized line in %s", path)
			state.partial = nil
			state.discarding = true
		}

		if err != io.EOF {
			t.log.Warn().Err(err).Msgf("Failed to read %s", path)
		}

		return
	}
}

// shouldSkipDir returns true if the directory should not be watched
func shouldSkipDir(name string) bool {
	skip := []string{".git", "node_modules", "vendor", ".idea", ".vscode"}

	for _, s := range skip {
		if name == s {
			return true
		}
	}

	return false
}

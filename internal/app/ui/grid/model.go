package grid

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"beagle/internal/app/buffer"
	"beagle/internal/app/event"
	"beagle/internal/app/monitor"
	"beagle/internal/app/row"
	"beagle/internal/config/logger"
)

// UI timing constants
const (
	tickInterval     = 100 * time.Millisecond
	ticksPerSecond   = int(time.Second / tickInterval)
	statsInterval    = 2 * time.Second
	statsCallTimeout = time.Second
)

// Layout constants
const (
	headerHeight = 1
	footerHeight = 2
	minBodyLines = 1
)

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// statsMsg carries the viewer's own resource usage
type statsMsg monitor.Stats

// copiedMsg reports the outcome of a clipboard write
type copiedMsg struct {
	err error
}

// Model is the bubbletea model rendering a buffer as a virtual list
type Model struct {
	ctx     context.Context
	buf     buffer.Buffer
	list    *List
	monitor monitor.Monitor
	title   string
	clip    func(text string) error

	state struct {
		width  int
		height int
		ready  bool
		stats  monitor.Stats
		notice string
	}

	ui struct {
		keys KeyMap
		help help.Model
	}

	log logger.Logger
}

// NewModel creates a grid over buf; list must be the surface buf's synchronizer writes to
func NewModel(ctx context.Context, title string, buf buffer.Buffer, list *List, mon monitor.Monitor, log logger.Logger) Model {
	m := Model{
		ctx:     ctx,
		buf:     buf,
		list:    list,
		monitor: mon,
		title:   title,
		clip:    clipboard.WriteAll,
		log:     log.WithComponent("GRID"),
	}

	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()

	return m
}

// Init starts the animation tick and the stats worker
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), statsCmd(m.ctx, m.monitor))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case execMsg:
		m.applyExec(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.width = msg.Width
		m.state.height = msg.Height
		m.state.ready = true
		m.ui.help.Width = msg.Width
		m.list.SetHeight(max(minBodyLines, msg.Height-headerHeight-footerHeight))

		return m, nil

	case tickMsg:
		m.list.jump.Update()
		return m, tickCmd()

	case statsMsg:
		m.state.stats = monitor.Stats(msg)
		return m, statsCmd(m.ctx, m.monitor)

	case copiedMsg:
		m.state.notice = "copied"
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("Failed to copy row")
			m.state.notice = "copy failed"
		}

		return m, nil
	}

	return m, nil
}

// applyExec runs a surface mutation and starts the jump cue when rows arrive while frozen
func (m Model) applyExec(msg execMsg) {
	before := m.list.Count()

	msg.fn()
	close(msg.done)

	if m.list.Count() > before && !m.buf.IsActive() {
		m.list.jump.Start()
	}
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := max(1, m.list.height-1)
	m.state.notice = ""

	switch {
	case key.Matches(msg, m.ui.keys.ForceQuit), key.Matches(msg, m.ui.keys.Quit):
		m.log.Debug().Msg("Quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Up):
		m.navigate(-1)

	case key.Matches(msg, m.ui.keys.Down):
		m.navigate(1)

	case key.Matches(msg, m.ui.keys.PageUp):
		m.navigate(-page)

	case key.Matches(msg, m.ui.keys.PageDown):
		m.navigate(page)

	case key.Matches(msg, m.ui.keys.Select):
		m.buf.SetActive(false)

		if r, ok := m.buf.Get(m.list.Cursor()); ok {
			m.list.selected = r.Event()
		}

	case key.Matches(msg, m.ui.keys.Release):
		m.buf.SetActive(true)
		m.list.jump.Stop()
		m.list.End()

	case key.Matches(msg, m.ui.keys.Collapse):
		return m, collapseCmd(m.buf, m.list.Cursor())

	case key.Matches(msg, m.ui.keys.Expand):
		return m, expandCmd(m.buf, m.list.Cursor())

	case key.Matches(msg, m.ui.keys.ClearCues):
		return m, clearCuesCmd(m.buf)

	case key.Matches(msg, m.ui.keys.Copy):
		var c Cell
		if m.buf.Populate(m.list.Cursor(), &c) {
			return m, copyCmd(m.clip, c.text)
		}

	case key.Matches(msg, m.ui.keys.CopyEvent):
		if r, ok := m.buf.Get(m.list.Cursor()); ok && r.Event() != nil {
			return m, copyEventCmd(m.clip, r.Event())
		}
	}

	return m, nil
}

// navigate moves the cursor; manual navigation freezes the list
func (m Model) navigate(delta int) {
	m.buf.SetActive(false)
	m.list.Move(delta)
}

// collapseCmd removes the elided-frame run at index off the event loop
func collapseCmd(buf buffer.Buffer, index int) tea.Cmd {
	return func() tea.Msg {
		buf.RemoveRun(index)
		return nil
	}
}

// expandCmd re-inserts the elided-frame row of the throwable at index off the event loop
func expandCmd(buf buffer.Buffer, index int) tea.Cmd {
	return func() tea.Msg {
		expandAt(buf, index)
		return nil
	}
}

// clearCuesCmd resets cues through the buffer off the event loop
func clearCuesCmd(buf buffer.Buffer) tea.Cmd {
	return func() tea.Msg {
		buf.ClearCues()
		return nil
	}
}

// copyCmd writes text to the system clipboard off the event loop
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

// copyEventCmd writes the event under the cursor to the clipboard as one JSON line
func copyEventCmd(write func(string) error, e *event.Event) tea.Cmd {
	return func() tea.Msg {
		data, err := event.Encode(e)
		if err != nil {
			return copiedMsg{err: err}
		}

		return copiedMsg{err: write(string(data))}
	}
}

// expandAt inserts an elided row after the frames of the throwable at index,
// unless that throwable has no common frames or its elided row is present
func expandAt(buf buffer.Buffer, index int) {
	r, ok := buf.Get(index)
	if !ok {
		return
	}

	t := r.Throwable()
	if t == nil || t.CommonFrames == 0 {
		return
	}

	end := index

	for {
		next, ok := buf.Get(end + 1)
		if !ok || next.Throwable() != t {
			break
		}

		end++
	}

	if last, ok := buf.Get(end); ok && last.Kind() == row.KindElidedFrames {
		return
	}

	buf.InsertAt(row.NewElidedFrames(r.Event(), t, r.Alternate()), end+1)
}

// tickCmd schedules the next animation tick
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statsCmd samples the viewer's own CPU and RSS after statsInterval
func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	return tea.Tick(statsInterval, func(time.Time) tea.Msg {
		callCtx, cancel := context.WithTimeout(ctx, statsCallTimeout)
		defer cancel()

		// zero stats on error keep the worker alive
		stats, _ := mon.Self(callCtx)

		return statsMsg(stats)
	})
}

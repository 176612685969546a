package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"beagle/internal/app/buffer"
	"beagle/internal/config"
)

// View renders the header, the visible rows and the status footer
func (m Model) View() string {
	if !m.state.ready {
		return ""
	}

	lines := make([]string, 0, m.list.height+headerHeight+footerHeight)
	lines = append(lines, m.renderHeader())

	cells := m.list.Visible(m.buf)
	for i, c := range cells {
		lines = append(lines, m.renderCell(c, m.list.top+i == m.list.cursor))
	}

	for i := len(cells); i < m.list.height; i++ {
		lines = append(lines, "")
	}

	lines = append(lines, m.renderStatus(), helpStyle.Render(m.ui.help.View(m.ui.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderHeader renders: ─── <title> ─────── v<version> ───
func (m Model) renderHeader() string {
	title := titleStyle.Render(m.title)
	version := fmt.Sprintf("v%s", config.Version)

	fill := m.state.width - lipgloss.Width(title) - lipgloss.Width(version) - 10
	if fill < 4 {
		fill = 4
	}

	return renderLine(3) + " " + title + " " + renderLine(fill) + " " + version + " " + renderLine(3)
}

// renderCell renders one row truncated to the terminal width
func (m Model) renderCell(c *Cell, selected bool) string {
	if c == nil {
		return ""
	}

	text := truncate(c.text, m.state.width)

	if selected {
		return cursorStyle.Render(text)
	}

	return cellStyle(c).Render(text)
}

// renderStatus renders row count, lifecycle state, cues and own RSS
func (m Model) renderStatus() string {
	parts := []string{
		fmt.Sprintf("%d rows", m.list.Count()),
		m.renderState(),
	}

	if m.list.jump.IsActive() {
		parts = append(parts, m.list.jump.Render(jumpStyle)+" new rows")
	}

	if diff, ok := m.diffCue(); ok {
		parts = append(parts, "Δ "+formatDiff(diff))
	}

	if m.state.notice != "" {
		parts = append(parts, m.state.notice)
	}

	parts = append(parts, fmt.Sprintf("%.1f MB", m.state.stats.MEM))

	return statusStyle.Render(strings.Join(parts, separatorStyle.Render(" · ")))
}

func (m Model) renderState() string {
	state := m.buf.State()
	if state == buffer.Active {
		return followStyle.Render("following")
	}

	return frozenStyle.Render(state)
}

// diffCue is the time between the selected event and the event at the cursor
func (m Model) diffCue() (time.Duration, bool) {
	if m.list.selected == nil {
		return 0, false
	}

	r, ok := m.buf.Get(m.list.Cursor())
	if !ok || r.Event() == nil {
		return 0, false
	}

	return r.Event().Timestamp.Sub(m.list.selected.Timestamp), true
}

func formatDiff(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}

	return sign + d.Truncate(time.Millisecond).String()
}

// renderLine renders a horizontal separator of the given width
func renderLine(width int) string {
	return separatorStyle.Render(strings.Repeat("─", max(0, width)))
}

// truncate cuts s to maxWidth terminal cells, marking the cut with an ellipsis
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	return runewidth.Truncate(s, maxWidth, "…")
}

package grid

import (
	"github.com/charmbracelet/lipgloss"

	"beagle/internal/app/row"
)

const (
	ColorPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	ColorBorder  = lipgloss.Color("8")       // Gray - borders and help text
	ColorMuted   = lipgloss.Color("7")       // Light gray - muted elements
	ColorCause   = lipgloss.Color("9")       // Red - cause headers
	ColorWarning = lipgloss.Color("11")      // Yellow - jump cue
	ColorFollow  = lipgloss.Color("10")      // Green - following state
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	separatorStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorBorder).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	followStyle = lipgloss.NewStyle().
			Foreground(ColorFollow).
			Bold(true)

	frozenStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	jumpStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15"))

	alternateShade = lipgloss.Color("235")

	kindStyles = map[row.Kind]lipgloss.Style{
		row.KindEvent:        lipgloss.NewStyle(),
		row.KindCauseHeader:  lipgloss.NewStyle().Foreground(ColorCause).Bold(true),
		row.KindStackFrame:   lipgloss.NewStyle().Foreground(ColorMuted),
		row.KindElidedFrames: lipgloss.NewStyle().Foreground(ColorBorder).Italic(true),
	}
)

// cellStyle returns the style of a cell by kind and shade
func cellStyle(c *Cell) lipgloss.Style {
	style := kindStyles[c.kind]
	if c.alternate {
		style = style.Background(alternateShade)
	}

	return style
}

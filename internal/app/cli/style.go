package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"beagle/internal/config"
)

// Headline - High-emphasis text for section headers
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
)

// Title - Medium-emphasis text for titles and subtitles
var (
	titleMedium = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
)

// Body - Main content text
var (
	bodyLarge  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	bodyMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
)

// Semantic styles
var (
	sectionHeader = headlineLarge.MarginBottom(1)

	commandName = titleMedium
	exampleCode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	errorLabel  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E57373"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

type entry struct {
	name string
	desc string
}

var usageEntries = []entry{
	{name: "beagle [files...]", desc: "View events from files, or from stdin when none are given"},
	{name: "beagle --dir <DIR>", desc: "Follow matching files under a directory"},
	{name: "beagle --pattern <GLOB>", desc: "Glob for followed files, repeatable"},
	{name: "beagle --no-ui", desc: "Ingest without the grid and log a summary"},
	{name: "beagle init [--force] [--dry-run]", desc: "Generate beagle.yaml with default settings"},
	{name: "beagle version", desc: "Show version"},
	{name: "beagle help", desc: "Show help"},
}

var exampleEntries = []entry{
	{name: "beagle app.jsonl", desc: "View one file"},
	{name: "kubectl logs api | beagle", desc: "View piped events"},
	{name: "beagle -d ./logs -p '**/*.jsonl'", desc: "Follow a log directory"},
}

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderHelp renders usage and examples
func RenderHelp() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		renderEntries(usageEntries, commandName),
		sectionHeader.Render("Examples:"),
		renderEntries(exampleEntries, exampleCode),
	) + "\n"
}

// RenderError renders an error line for the terminal
func RenderError(err error) string {
	return fmt.Sprintf("%s %v\n", errorLabel.Render("Error:"), err)
}

func renderEntries(entries []entry, style lipgloss.Style) string {
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.name))
	}

	lines := make([]string, 0, len(entries))

	for _, e := range entries {
		pad := strings.Repeat(" ", width-lipgloss.Width(e.name)+4)
		lines = append(lines, bodyMedium.Render("  "+style.Render(e.name)+pad+e.desc))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

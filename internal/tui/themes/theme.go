// Package themes holds the lipgloss styles used by the PLU table.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI. Text styles carry no margins
// so rendered heights stay predictable for mouse hit-testing.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Code          lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	BorderedBox   lipgloss.Style
	ChipOn        lipgloss.Style
	ChipOff       lipgloss.Style
	ChipFocused   lipgloss.Style
	ChipDragging  lipgloss.Style
	DropMarker    lipgloss.Style
	PageCurrent   lipgloss.Style
	PageOther     lipgloss.Style
	PageDisabled  lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Info          lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	// Colors
	Primary:    lipgloss.Color("#0d9488"),
	Secondary:  lipgloss.Color("#5eead4"),
	Success:    lipgloss.Color("#10b981"),
	Error:      lipgloss.Color("#ef4444"),
	Info:       lipgloss.Color("#0284c7"),
	Foreground: lipgloss.Color("#fafafa"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5eead4")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Code: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#0d9488")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#0d9488")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#404040")).
		Foreground(lipgloss.Color("#fafafa")),

	// Component styles
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#0d9488")).
		Padding(1, 2),

	// Column chips
	ChipOn: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5eead4")).
		Bold(true),
	ChipOff: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	ChipFocused: lipgloss.NewStyle().
		Underline(true),
	ChipDragging: lipgloss.NewStyle().
		Faint(true),
	DropMarker: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#2dd4bf")).
		Bold(true),

	// Pagination
	PageCurrent: lipgloss.NewStyle().
		Background(lipgloss.Color("#0284c7")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	PageOther: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e5e5e5")),
	PageDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#525252")),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0284c7")).
		Bold(true),
}

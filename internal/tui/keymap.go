package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Focus     key.Binding

	// Sorting
	SortCode    key.Binding
	SortKorean  key.Binding
	SortEnglish key.Binding
	SortFrench  key.Binding
	SortSeason  key.Binding

	// Actions
	Select key.Binding
	Back   key.Binding
	Search key.Binding
	Copy   key.Binding
	Toggle key.Binding
	Grab   key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev page / column"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next page / column"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "prev page"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "last page"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "cycle focus"),
		),

		SortCode: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort by PLU"),
		),
		SortKorean: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort by Korean"),
		),
		SortEnglish: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort by English"),
		),
		SortFrench: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "sort by French"),
		),
		SortSeason: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "sort by season"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "details / drop"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back / cancel"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy PLU"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "toggle column"),
		),
		Grab: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move column"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Focus, k.Select, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.FirstPage, k.LastPage},
		{k.SortCode, k.SortKorean, k.SortEnglish, k.SortFrench, k.SortSeason},
		{k.Search, k.Select, k.Back, k.Copy},
		{k.Focus, k.Toggle, k.Grab},
		{k.Help, k.Quit},
	}
}

package tui

import (
	"fmt"
	"time"

	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/controller"
	"github.com/Veraticus/plu/internal/layout"
	"github.com/Veraticus/plu/internal/model"
	"github.com/Veraticus/plu/internal/tui/components"
	"github.com/Veraticus/plu/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus is the area receiving keyboard input.
type Focus int

const (
	FocusTable Focus = iota
	FocusSearch
	FocusColumns
)

const focusCount = 3

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 3 * time.Second

// Model holds the TUI state. The view state itself lives in the controller;
// the model only keeps what the terminal needs on top of it.
type Model struct {
	theme     themes.Theme
	ctrl      *controller.Controller
	detail    *components.DetailRenderer
	status    string
	config    Config
	keymap    KeyMap
	view      controller.View
	help      help.Model
	search    textinput.Model
	table     components.PLUTable
	bar       components.ColumnBar
	pressed   model.Field
	focus     Focus
	grabIndex int
	statusID  int
	width     int
	height    int
	statusErr bool
	grabbing  bool
	dragged   bool
	quitting  bool
}

// New creates the TUI model over records.
func New(records []model.Record, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(records, cfg)
}

func newModel(records []model.Record, cfg Config) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search PLU, Korean, English or French..."
	search.CharLimit = 64

	m := Model{
		theme:  cfg.Theme,
		config: cfg,
		keymap: DefaultKeyMap(),
		ctrl:   controller.New(records, cfg.PageSize, controller.WithLogger(cfg.Logger)),
		detail: components.NewDetailRenderer(cfg.MarkdownStyle),
		help:   help.New(),
		search: search,
		table:  components.NewPLUTable(cfg.Theme, cfg.PageSize),
		bar:    components.NewColumnBar(cfg.Theme),
		width:  cfg.Width,
		height: cfg.Height,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the view controller.
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}

// Focus returns the focused area.
func (m Model) Focus() Focus {
	return m.focus
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case copiedMsg:
		if msg.err != nil {
			m.config.Logger.Warn("clipboard write failed", "error", msg.err)
			cmd = m.setStatus("Could not copy "+msg.code+": "+msg.err.Error(), true)
		} else {
			cmd = m.setStatus("Copied PLU "+msg.code, false)
		}

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusErr = false
		}
	}

	m.refresh()
	return m, cmd
}

// refresh re-derives the view and pushes it into the components.
func (m *Model) refresh() {
	m.view = m.ctrl.View()
	m.table.SetView(m.view)
	m.bar.SetChips(m.view.Chips)
	m.bar.Focused = m.focus == FocusColumns
	if m.focus == FocusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusID++
	m.status = text
	m.statusErr = isErr
	id := m.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *Model) setFocus(f Focus) {
	m.cancelTouch()
	if m.grabbing {
		m.cancelGrab()
	}
	m.focus = f
	if f == FocusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return tea.Quit
	}

	// Any key abandons a mouse drag; esc does nothing else.
	if m.pressed != model.FieldNone {
		m.cancelTouch()
		if key.Matches(msg, m.keymap.Back) {
			return nil
		}
	}

	if m.view.Selected != nil {
		return m.handleDetailKey(msg)
	}
	if m.focus == FocusSearch {
		return m.handleSearchKey(msg)
	}
	if m.grabbing {
		m.handleGrabKey(msg)
		return nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keymap.Search):
		m.setFocus(FocusSearch)
		return textinput.Blink
	case key.Matches(msg, m.keymap.Focus):
		m.setFocus((m.focus + 1) % focusCount)
		return nil
	}

	if field, ok := m.sortKey(msg); ok {
		m.ctrl.RequestSort(field)
		return nil
	}

	if m.focus == FocusColumns {
		m.handleColumnKey(msg)
		return nil
	}
	return m.handleTableKey(msg)
}

func (m Model) sortKey(msg tea.KeyMsg) (model.Field, bool) {
	switch {
	case key.Matches(msg, m.keymap.SortCode):
		return model.FieldCode, true
	case key.Matches(msg, m.keymap.SortKorean):
		return model.FieldKorean, true
	case key.Matches(msg, m.keymap.SortEnglish):
		return model.FieldEnglish, true
	case key.Matches(msg, m.keymap.SortFrench):
		return model.FieldFrench, true
	case key.Matches(msg, m.keymap.SortSeason):
		return model.FieldSeason, true
	}
	return model.FieldNone, false
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.Select):
		m.ctrl.DismissSelection()
	case key.Matches(msg, m.keymap.Copy):
		return m.copyCode(m.view.Selected.Code)
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.Select):
		m.setFocus(FocusTable)
		return nil
	case key.Matches(msg, m.keymap.Focus):
		m.setFocus(FocusColumns)
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.ctrl.SetQuery(m.search.Value())
	return cmd
}

func (m *Model) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.table.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.table.MoveDown()
	case key.Matches(msg, m.keymap.Left), key.Matches(msg, m.keymap.PageUp):
		m.ctrl.PrevPage()
	case key.Matches(msg, m.keymap.Right), key.Matches(msg, m.keymap.PageDown):
		m.ctrl.NextPage()
	case key.Matches(msg, m.keymap.FirstPage):
		m.ctrl.SetPage(1)
	case key.Matches(msg, m.keymap.LastPage):
		m.ctrl.LastPage()
	case key.Matches(msg, m.keymap.Select):
		if r, ok := m.table.SelectedRecord(); ok {
			m.ctrl.SelectRecord(r)
		}
	case key.Matches(msg, m.keymap.Copy):
		if r, ok := m.table.SelectedRecord(); ok {
			return m.copyCode(r.Code)
		}
	case key.Matches(msg, m.keymap.Back):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.ctrl.SetQuery("")
		}
	}
	return nil
}

func (m *Model) handleColumnKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keymap.Left):
		m.bar.MoveFocus(-1)
	case key.Matches(msg, m.keymap.Right):
		m.bar.MoveFocus(1)
	case key.Matches(msg, m.keymap.Toggle), key.Matches(msg, m.keymap.Select):
		m.ctrl.ToggleColumn(m.bar.FocusedField())
	case key.Matches(msg, m.keymap.Grab):
		m.startGrab()
	case key.Matches(msg, m.keymap.Back):
		m.setFocus(FocusTable)
	}
}

// pointer drives keyboard grabs. A grab names its drop target directly,
// like a native drag-and-drop source does.
func (m *Model) pointer() layout.PointerAdapter {
	return layout.PointerAdapter{Gesture: m.ctrl.Gesture()}
}

func (m *Model) startGrab() {
	field := m.bar.FocusedField()
	if !field.IsColumn() {
		return
	}
	m.cancelTouch()
	m.pointer().DragStart(field)
	m.grabbing = true
	m.grabIndex = m.ctrl.Layout().Index(field)
}

func (m *Model) handleGrabKey(msg tea.KeyMsg) {
	order := m.ctrl.Layout().Order()
	switch {
	case key.Matches(msg, m.keymap.Left):
		m.grabIndex = max(m.grabIndex-1, 0)
		m.pointer().DragOver(order[m.grabIndex])
	case key.Matches(msg, m.keymap.Right):
		m.grabIndex = min(m.grabIndex+1, len(order)-1)
		m.pointer().DragOver(order[m.grabIndex])
	case key.Matches(msg, m.keymap.Select), key.Matches(msg, m.keymap.Grab):
		source := m.ctrl.Gesture().Source()
		move, ok := m.pointer().Drop(order[m.grabIndex])
		m.ctrl.ApplyMove(move, ok)
		m.grabbing = false
		m.refresh()
		m.bar.FocusField(source)
	case key.Matches(msg, m.keymap.Back):
		m.cancelGrab()
	}
}

func (m *Model) cancelGrab() {
	m.pointer().DragEnd()
	m.grabbing = false
}

func (m *Model) copyCode(code string) tea.Cmd {
	write := m.config.Clipboard
	return func() tea.Msg {
		if write == nil {
			return copiedMsg{code: code, err: common.ErrClipboardUnavailable}
		}
		if err := write(code); err != nil {
			return copiedMsg{code: code, err: fmt.Errorf("%w: %w", common.ErrClipboardUnavailable, err)}
		}
		return copiedMsg{code: code}
	}
}

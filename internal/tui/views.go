package tui

import (
	"fmt"

	"github.com/Veraticus/plu/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// Screen sections, top to bottom.
const (
	sectionTitle = iota
	sectionSearch
	sectionColumns
	sectionBody
	sectionPages
	sectionStatus
	sectionHelp
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.sections()...)
}

func (m Model) sections() []string {
	return []string{
		sectionTitle:   m.renderTitle(),
		sectionSearch:  m.renderSearch(),
		sectionColumns: m.bar.View(),
		sectionBody:    m.renderBody(),
		sectionPages:   m.renderPages(),
		sectionStatus:  m.renderStatus(),
		sectionHelp:    m.help.View(m.keymap),
	}
}

// sectionTop returns the screen row where section i starts.
func (m Model) sectionTop(i int) int {
	top := 0
	for _, s := range m.sections()[:i] {
		top += lipgloss.Height(s)
	}
	return top
}

func (m Model) renderTitle() string {
	title := m.theme.Title.Render("PLU Codes")
	count := m.theme.Subtitle.Render(fmt.Sprintf(" %d produce codes", m.ctrl.Total()))
	return title + count
}

func (m Model) renderSearch() string {
	if m.focus == FocusSearch || m.search.Value() != "" {
		return m.search.View()
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("/ to search")
}

func (m Model) renderBody() string {
	if m.view.Selected == nil {
		return m.table.View()
	}

	width := min(max(m.width-4, 20), 80)
	content := m.detail.Render(*m.view.Selected, width)
	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("esc close · c copy PLU")
	return m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left, content, hint))
}

func (m Model) renderPages() string {
	if m.view.IsEmpty() {
		msg := "No PLU codes to show."
		if m.view.Query != "" {
			msg = fmt.Sprintf("No PLU codes match %q.", m.view.Query)
		}
		return m.theme.Subtitle.Render(msg)
	}
	return components.RenderPagination(m.view, m.theme)
}

func (m Model) renderStatus() string {
	switch {
	case m.status == "":
		if m.grabbing {
			return m.theme.StatusInfo.Render("Moving column: ←/→ choose position, enter drop, esc cancel")
		}
		return ""
	case m.statusErr:
		return m.theme.StatusError.Render(m.status)
	default:
		return m.theme.StatusSuccess.Render(m.status)
	}
}

package tui

import (
	"github.com/Veraticus/plu/internal/layout"
	"github.com/Veraticus/plu/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// touch returns the adapter for terminal mouse input. Terminal mouse
// events carry only coordinates, so chips are found by hit-testing.
func (m *Model) touch() layout.TouchAdapter {
	return layout.TouchAdapter{
		Gesture: m.ctrl.Gesture(),
		Hits:    m.bar.Segments(0, m.sectionTop(sectionColumns)),
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.config.MouseSupport {
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.view.Selected == nil {
			m.ctrl.PrevPage()
		}
		return
	case tea.MouseButtonWheelDown:
		if m.view.Selected == nil {
			m.ctrl.NextPage()
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.mousePress(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if m.pressed != model.FieldNone {
			m.touch().TouchMove(msg.X, msg.Y)
			if m.ctrl.Gesture().Candidate() != model.FieldNone {
				m.dragged = true
			}
		}
	case tea.MouseActionRelease:
		m.mouseRelease(msg.X, msg.Y)
	}
}

func (m *Model) mousePress(x, y int) {
	if m.view.Selected != nil {
		m.ctrl.DismissSelection()
		return
	}
	if m.grabbing {
		m.cancelGrab()
	}
	m.cancelTouch()

	if field, ok := m.touch().TouchStart(x, y); ok {
		m.focus = FocusColumns
		m.search.Blur()
		m.bar.FocusField(field)
		m.pressed = field
		return
	}

	top := m.sectionTop(sectionBody)
	if field, ok := m.table.HeaderSegments(0, top).ColumnAt(x, y); ok {
		m.ctrl.RequestSort(field)
		return
	}
	if i, ok := m.table.RowAt(top, y); ok {
		m.setFocus(FocusTable)
		m.table.SetCursor(i)
	}
}

// mouseRelease ends a chip gesture. Releasing on the pressed chip toggles
// it, unless another chip was hovered on the way.
func (m *Model) mouseRelease(x, y int) {
	pressed, dragged := m.pressed, m.dragged
	m.pressed, m.dragged = model.FieldNone, false
	if pressed == model.FieldNone {
		return
	}

	touch := m.touch()
	if move, ok := touch.TouchEnd(x, y); ok {
		m.ctrl.ApplyMove(move, ok)
		return
	}
	if field, ok := touch.Hits.ColumnAt(x, y); ok && field == pressed && !dragged {
		m.ctrl.ToggleColumn(field)
	}
}

// cancelTouch abandons a mouse gesture that is still in progress.
func (m *Model) cancelTouch() {
	if m.pressed == model.FieldNone {
		return
	}
	m.touch().TouchCancel()
	m.pressed = model.FieldNone
	m.dragged = false
}

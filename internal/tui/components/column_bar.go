package components

import (
	"strings"

	"github.com/Veraticus/plu/internal/controller"
	"github.com/Veraticus/plu/internal/layout"
	"github.com/Veraticus/plu/internal/model"
	"github.com/Veraticus/plu/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// ColumnBarLabel prefixes the chip row.
const ColumnBarLabel = "Columns: "

const chipGap = 1

// ColumnBar renders the column toggle and reorder chips.
type ColumnBar struct {
	theme themes.Theme
	chips []controller.Chip
	focus int
	// Focused is true when keyboard input goes to the bar.
	Focused bool
}

// NewColumnBar creates a column bar.
func NewColumnBar(theme themes.Theme) ColumnBar {
	return ColumnBar{theme: theme}
}

// SetChips replaces the chips, keeping the focus index in range.
func (b *ColumnBar) SetChips(chips []controller.Chip) {
	b.chips = chips
	b.focus = min(max(b.focus, 0), max(len(chips)-1, 0))
}

// Focus returns the focused chip index.
func (b ColumnBar) Focus() int {
	return b.focus
}

// FocusedField returns the field of the focused chip.
func (b ColumnBar) FocusedField() model.Field {
	if b.focus < 0 || b.focus >= len(b.chips) {
		return model.FieldNone
	}
	return b.chips[b.focus].Field
}

// MoveFocus shifts the focus by delta, stopping at either end.
func (b *ColumnBar) MoveFocus(delta int) {
	b.focus = min(max(b.focus+delta, 0), max(len(b.chips)-1, 0))
}

// FocusField moves the focus onto f if present.
func (b *ColumnBar) FocusField(f model.Field) {
	for i, c := range b.chips {
		if c.Field == f {
			b.focus = i
			return
		}
	}
}

// chipText is the unstyled label of a chip. The leading cell is the drop
// marker slot so chip widths do not change while hovering.
func chipText(c controller.Chip) string {
	box := "[ ]"
	if c.Visible {
		box = "[x]"
	}
	return box + " " + c.Label
}

func (b ColumnBar) renderChip(i int, c controller.Chip) string {
	style := b.theme.ChipOff
	if c.Visible {
		style = b.theme.ChipOn
	}
	if b.Focused && i == b.focus {
		style = style.Inherit(b.theme.ChipFocused)
	}
	if c.Dragging {
		style = style.Inherit(b.theme.ChipDragging)
	}

	marker := " "
	if c.DropCandidate {
		marker = b.theme.DropMarker.Render("▎")
	}
	return marker + style.Render(chipText(c))
}

// View renders the bar on a single line.
func (b ColumnBar) View() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(b.theme.Muted).Render(strings.TrimSpace(ColumnBarLabel)))
	sb.WriteString(" ")
	for i, c := range b.chips {
		if i > 0 {
			sb.WriteString(strings.Repeat(" ", chipGap))
		}
		sb.WriteString(b.renderChip(i, c))
	}
	return sb.String()
}

// Segments returns the screen area of each chip when the bar is drawn at
// row y starting from column x.
func (b ColumnBar) Segments(x, y int) layout.Segments {
	fields := make([]model.Field, len(b.chips))
	widths := make([]int, len(b.chips))
	for i, c := range b.chips {
		fields[i] = c.Field
		widths[i] = 1 + lipgloss.Width(chipText(c))
	}
	return layout.Row(fields, widths, x+lipgloss.Width(ColumnBarLabel), y, chipGap)
}

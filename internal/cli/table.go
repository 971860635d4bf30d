package cli

import (
	"fmt"

	"github.com/Veraticus/plu/internal/controller"
	"github.com/Veraticus/plu/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable renders one derived page as a bordered table followed by a
// page summary line.
func RenderTable(v controller.View) string {
	if v.IsEmpty() {
		if v.Query != "" {
			return FormatInfo(fmt.Sprintf("No PLU codes match %q.", v.Query))
		}
		return FormatInfo("No PLU codes to show.")
	}

	headers := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		headers[i] = headerLabel(col)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
	for _, r := range v.Rows {
		t.Row(v.Cells(r)...)
	}

	summary := SubtleStyle.Render(fmt.Sprintf("Page %d of %d · %d results", v.Page, v.TotalPages, v.TotalRows))
	return lipgloss.JoinVertical(lipgloss.Left, t.String(), summary)
}

func headerLabel(col controller.Column) string {
	switch col.Direction {
	case model.DirectionAscending:
		return col.Label + " ▲"
	case model.DirectionDescending:
		return col.Label + " ▼"
	case model.DirectionNone:
	}
	return col.Label
}

package components

import (
	"github.com/Veraticus/plu/internal/controller"
	"github.com/Veraticus/plu/internal/layout"
	"github.com/Veraticus/plu/internal/model"
	"github.com/Veraticus/plu/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// headerLines is the header row plus its bottom border.
const headerLines = 2

// cellPadding is the horizontal padding table styles add to each cell.
const cellPadding = 2

var fieldWidths = map[model.Field]int{
	model.FieldCode:    6,
	model.FieldKorean:  12,
	model.FieldEnglish: 26,
	model.FieldFrench:  26,
	model.FieldSeason:  30,
}

// PLUTable renders one page of records with a sortable header.
type PLUTable struct {
	columns  []controller.Column
	rows     []model.Record
	table    table.Model
	pageSize int
}

// NewPLUTable creates a table tall enough to hold pageSize rows without
// scrolling.
func NewPLUTable(theme themes.Theme, pageSize int) PLUTable {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(pageSize+headerLines),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return PLUTable{table: t, pageSize: pageSize}
}

// SetView loads the columns and rows of v. The cursor stays on the same
// index when it still exists.
func (t *PLUTable) SetView(v controller.View) {
	t.columns = v.Columns
	t.rows = v.Rows

	columns := make([]table.Column, len(v.Columns))
	for i, col := range v.Columns {
		columns[i] = table.Column{Title: headerTitle(col), Width: fieldWidths[col.Field]}
	}
	rows := make([]table.Row, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = v.Cells(r)
	}

	cursor := t.table.Cursor()
	// Rows must never be wider than the columns while either is replaced.
	t.table.SetRows(nil)
	t.table.SetColumns(columns)
	t.table.SetHeight(t.pageSize + headerLines)
	t.table.SetRows(rows)
	t.table.SetCursor(max(cursor, 0))
}

func headerTitle(col controller.Column) string {
	title := col.Label
	switch col.Direction {
	case model.DirectionAscending:
		title += " ▲"
	case model.DirectionDescending:
		title += " ▼"
	case model.DirectionNone:
	}
	if col.DropCandidate {
		title = "» " + title
	}
	return title
}

// Focus gives the table keyboard focus.
func (t *PLUTable) Focus() {
	t.table.Focus()
}

// Blur removes keyboard focus.
func (t *PLUTable) Blur() {
	t.table.Blur()
}

// Focused reports whether the table has focus.
func (t PLUTable) Focused() bool {
	return t.table.Focused()
}

// MoveUp moves the cursor up one row.
func (t *PLUTable) MoveUp() {
	t.table.MoveUp(1)
}

// MoveDown moves the cursor down one row.
func (t *PLUTable) MoveDown() {
	t.table.MoveDown(1)
}

// SetCursor moves the cursor to row i.
func (t *PLUTable) SetCursor(i int) {
	t.table.SetCursor(i)
}

// Cursor returns the cursor row index.
func (t PLUTable) Cursor() int {
	return t.table.Cursor()
}

// SelectedRecord returns the record under the cursor.
func (t PLUTable) SelectedRecord() (model.Record, bool) {
	i := t.table.Cursor()
	if i < 0 || i >= len(t.rows) {
		return model.Record{}, false
	}
	return t.rows[i], true
}

// View renders the table.
func (t PLUTable) View() string {
	return t.table.View()
}

// HeaderSegments returns the screen area of each header cell when the table
// is drawn with its top-left corner at (x, y).
func (t PLUTable) HeaderSegments(x, y int) layout.Segments {
	fields := make([]model.Field, len(t.columns))
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		fields[i] = col.Field
		widths[i] = fieldWidths[col.Field] + cellPadding
	}
	return layout.Row(fields, widths, x, y, 0)
}

// RowAt maps a screen row to a record index when the table top is at top.
func (t PLUTable) RowAt(top, y int) (int, bool) {
	i := y - top - headerLines
	if i < 0 || i >= len(t.rows) {
		return 0, false
	}
	return i, true
}

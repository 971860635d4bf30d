// Package controller owns the interactive view state of the PLU table and
// derives the page to render from it.
package controller

import (
	"log/slog"

	"github.com/Veraticus/plu/internal/layout"
	"github.com/Veraticus/plu/internal/model"
	"github.com/Veraticus/plu/internal/pipeline"
)

// Column is one visible column in display order.
type Column struct {
	Field         model.Field
	Label         string
	Direction     model.Direction
	DropCandidate bool
}

// Chip is one entry of the column toggle bar, visible or not.
type Chip struct {
	Field         model.Field
	Label         string
	Visible       bool
	Dragging      bool
	DropCandidate bool
}

// View is the derived snapshot handed to the presentation layer.
type View struct {
	Selected   *model.Record
	Query      string
	Rows       []model.Record
	Columns    []Column // code column first, then visible columns in order
	Chips      []Chip
	PageNums   []int
	Sort       model.Sort
	Page       int
	PageSize   int
	TotalPages int
	TotalRows  int
	HasPrev    bool
	HasNext    bool
}

// IsEmpty reports whether the query matched nothing.
func (v View) IsEmpty() bool {
	return v.TotalRows == 0
}

// Controller is the single owner of the view state. It is not safe for
// concurrent use; callers apply one transition at a time.
type Controller struct {
	deriver  *pipeline.Deriver
	layout   *layout.Layout
	gesture  layout.Gesture
	selected *model.Record
	logger   *slog.Logger
	query    string
	sort     model.Sort
	page     int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New creates a controller over records with the given page size. Every
// controller starts from the defaults: empty query, no sort, page 1 and the
// default column layout.
func New(records []model.Record, pageSize int, opts ...Option) *Controller {
	c := &Controller{
		deriver: pipeline.NewDeriver(records, pageSize),
		layout:  layout.New(),
		logger:  slog.Default(),
		page:    1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query returns the current filter text.
func (c *Controller) Query() string {
	return c.query
}

// Sort returns the active sort.
func (c *Controller) Sort() model.Sort {
	return c.sort
}

// CurrentPage returns the current page number after clamping.
func (c *Controller) CurrentPage() int {
	return c.derive().Number
}

// Layout returns the column layout.
func (c *Controller) Layout() *layout.Layout {
	return c.layout
}

// Gesture returns the reorder gesture state for device adapters.
func (c *Controller) Gesture() *layout.Gesture {
	return &c.gesture
}

// Total returns the number of records before filtering.
func (c *Controller) Total() int {
	return c.deriver.Len()
}

// Selected returns the record shown in the detail view, or nil.
func (c *Controller) Selected() *model.Record {
	return c.selected
}

// SetQuery replaces the filter text. A changed query resets to page 1.
func (c *Controller) SetQuery(text string) {
	if text == c.query {
		return
	}
	c.query = text
	c.page = 1
	c.logger.Debug("query changed", "query", text)
}

// RequestSort sorts by field, toggling direction when it is already the
// sort key. Any sort request resets to page 1. Unknown fields are ignored.
func (c *Controller) RequestSort(field model.Field) {
	if !field.IsValid() {
		return
	}
	c.sort = c.sort.Next(field)
	c.page = 1
	c.logger.Debug("sort changed", "field", field, "direction", c.sort.Direction)
}

// SetPage moves to page n, clamped to the available pages.
func (c *Controller) SetPage(n int) {
	total := pipeline.TotalPages(len(c.deriver.Sorted(c.query, c.sort)), c.deriver.PageSize())
	c.page = pipeline.ClampPage(n, total)
}

// NextPage moves forward one page when possible.
func (c *Controller) NextPage() {
	c.SetPage(c.CurrentPage() + 1)
}

// PrevPage moves back one page when possible.
func (c *Controller) PrevPage() {
	c.SetPage(c.CurrentPage() - 1)
}

// LastPage moves to the final page.
func (c *Controller) LastPage() {
	c.SetPage(pipeline.TotalPages(len(c.deriver.Sorted(c.query, c.sort)), c.deriver.PageSize()))
}

// ToggleColumn flips a column's visibility.
func (c *Controller) ToggleColumn(col model.Field) {
	if c.layout.Toggle(col) {
		c.logger.Debug("column toggled", "column", col, "visible", c.layout.IsVisible(col))
	}
}

// ReorderColumn moves a column onto target's position.
func (c *Controller) ReorderColumn(moved, target model.Field) {
	if c.layout.Reorder(moved, target) {
		c.logger.Debug("column moved", "column", moved, "target", target, "order", c.layout.Order())
	}
}

// ApplyMove commits a move produced by a gesture adapter.
func (c *Controller) ApplyMove(m layout.Move, ok bool) {
	if ok {
		c.ReorderColumn(m.Source, m.Target)
	}
}

// SelectRecord opens the detail view for r, replacing any earlier selection.
func (c *Controller) SelectRecord(r model.Record) {
	c.selected = &r
}

// DismissSelection closes the detail view.
func (c *Controller) DismissSelection() {
	c.selected = nil
}

func (c *Controller) derive() pipeline.Page[model.Record] {
	p := c.deriver.Derive(pipeline.Controls{Query: c.query, Sort: c.sort, Page: c.page})
	c.page = p.Number
	return p
}

// View derives the current page and presentation state.
func (c *Controller) View() View {
	p := c.derive()

	candidate := c.gesture.Candidate()
	source := c.gesture.Source()

	columns := make([]Column, 0, len(c.layout.Order())+1)
	columns = append(columns, Column{
		Field:     model.FieldCode,
		Label:     model.CodeLabel,
		Direction: c.sort.DirectionFor(model.FieldCode),
	})
	for _, f := range c.layout.Visible() {
		columns = append(columns, Column{
			Field:         f,
			Label:         f.Label(),
			Direction:     c.sort.DirectionFor(f),
			DropCandidate: f == candidate,
		})
	}

	order := c.layout.Order()
	chips := make([]Chip, 0, len(order))
	for _, f := range order {
		chips = append(chips, Chip{
			Field:         f,
			Label:         f.Label(),
			Visible:       c.layout.IsVisible(f),
			Dragging:      f == source,
			DropCandidate: f == candidate,
		})
	}

	return View{
		Query:      c.query,
		Sort:       c.sort,
		Rows:       p.Items,
		Columns:    columns,
		Chips:      chips,
		Page:       p.Number,
		PageSize:   p.Size,
		TotalPages: p.TotalPages,
		TotalRows:  p.TotalItems,
		PageNums:   pipeline.PageWindow(p.Number, p.TotalPages, pipeline.MaxPageButtons),
		HasPrev:    p.HasPrev(),
		HasNext:    p.HasNext(),
		Selected:   c.selected,
	}
}

// Cells projects r onto the visible columns, code first.
func (v View) Cells(r model.Record) []string {
	cells := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		cells[i] = r.Value(col.Field)
	}
	return cells
}

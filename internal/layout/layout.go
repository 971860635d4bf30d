// Package layout tracks which columns are shown and in what order, and
// implements the gesture protocol used to reorder them.
package layout

import (
	"slices"

	"github.com/Veraticus/plu/internal/model"
)

// Layout holds column order and visibility. The order is always a
// permutation of the fixed column set from model.Columns.
type Layout struct {
	order   []model.Field
	visible map[model.Field]bool
}

// New returns a layout with the default column order and visibility.
func New() *Layout {
	cols := model.Columns()
	l := &Layout{
		order:   make([]model.Field, 0, len(cols)),
		visible: make(map[model.Field]bool, len(cols)),
	}
	for _, c := range cols {
		l.order = append(l.order, c.Field)
		l.visible[c.Field] = c.DefaultVisible
	}
	return l
}

// Order returns a copy of the current column order.
func (l *Layout) Order() []model.Field {
	return slices.Clone(l.order)
}

// IsVisible reports whether the field is shown. The code column is always
// visible.
func (l *Layout) IsVisible(f model.Field) bool {
	if f == model.FieldCode {
		return true
	}
	return l.visible[f]
}

// Visible returns the visible columns in display order, excluding the code
// column which always comes first.
func (l *Layout) Visible() []model.Field {
	out := make([]model.Field, 0, len(l.order))
	for _, f := range l.order {
		if l.visible[f] {
			out = append(out, f)
		}
	}
	return out
}

// Index returns the position of f in the order, or -1.
func (l *Layout) Index(f model.Field) int {
	return slices.Index(l.order, f)
}

// Toggle flips the visibility of a column. The code column and fields
// outside the column set are ignored. It reports whether anything changed.
func (l *Layout) Toggle(f model.Field) bool {
	if !f.IsColumn() {
		return false
	}
	l.visible[f] = !l.visible[f]
	return true
}

// SetVisible sets the visibility of a column. Same rules as Toggle.
func (l *Layout) SetVisible(f model.Field, visible bool) bool {
	if !f.IsColumn() || l.visible[f] == visible {
		return false
	}
	l.visible[f] = visible
	return true
}

// Reorder moves moved into the position currently held by target: moved is
// removed, then reinserted at target's former index, shifting the columns
// in between by one. Equal or unknown columns are a no-op. It reports
// whether the order changed.
func (l *Layout) Reorder(moved, target model.Field) bool {
	if moved == target {
		return false
	}
	from := l.Index(moved)
	to := l.Index(target)
	if from < 0 || to < 0 {
		return false
	}

	l.order = slices.Delete(l.order, from, from+1)
	l.order = slices.Insert(l.order, to, moved)
	return true
}

// Apply commits a move produced by a gesture.
func (l *Layout) Apply(m Move) bool {
	return l.Reorder(m.Source, m.Target)
}

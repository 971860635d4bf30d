package layout

import "github.com/Veraticus/plu/internal/model"

// Segment is the screen area covered by one rendered column element.
// X1 and Y1 are exclusive.
type Segment struct {
	Field  model.Field
	X0, X1 int
	Y0, Y1 int
}

// Contains reports whether (x, y) lies inside the segment.
func (s Segment) Contains(x, y int) bool {
	return x >= s.X0 && x < s.X1 && y >= s.Y0 && y < s.Y1
}

// Segments is a HitTester over a set of rendered elements.
type Segments []Segment

// ColumnAt returns the first segment containing (x, y).
func (s Segments) ColumnAt(x, y int) (model.Field, bool) {
	for _, seg := range s {
		if seg.Contains(x, y) {
			return seg.Field, true
		}
	}
	return model.FieldNone, false
}

// Row lays out segments for labels rendered left to right on a single line
// starting at (x, y), each widths[i] cells wide and separated by gap cells.
func Row(fields []model.Field, widths []int, x, y, gap int) Segments {
	segs := make(Segments, 0, len(fields))
	for i, f := range fields {
		if i >= len(widths) {
			break
		}
		segs = append(segs, Segment{Field: f, X0: x, X1: x + widths[i], Y0: y, Y1: y + 1})
		x += widths[i] + gap
	}
	return segs
}

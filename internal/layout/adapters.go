package layout

import "github.com/Veraticus/plu/internal/model"

// PointerAdapter translates drag-and-drop events that carry their own drop
// target (as a mouse drag over labelled elements does) into gesture phases.
type PointerAdapter struct {
	Gesture *Gesture
}

// DragStart begins dragging col.
func (a PointerAdapter) DragStart(col model.Field) {
	a.Gesture.Start(col)
}

// DragOver reports that the pointer is over col.
func (a PointerAdapter) DragOver(col model.Field) {
	a.Gesture.Over(col)
}

// DragLeave reports that the pointer left the element it was over.
func (a PointerAdapter) DragLeave() {
	a.Gesture.Leave()
}

// Drop ends the drag on target.
func (a PointerAdapter) Drop(target model.Field) (Move, bool) {
	a.Gesture.Over(target)
	return a.Gesture.Drop()
}

// DragEnd ends the drag without a drop, e.g. released outside any target.
func (a PointerAdapter) DragEnd() {
	a.Gesture.Cancel()
}

// HitTester maps a point to the column whose element contains it.
type HitTester interface {
	ColumnAt(x, y int) (model.Field, bool)
}

// TouchAdapter translates coordinate-only events (touch, terminal mouse)
// into gesture phases. Such sources have no drag-over target events, so the
// column under each point is found by hit-testing.
type TouchAdapter struct {
	Gesture *Gesture
	Hits    HitTester
}

// TouchStart begins a gesture on the column at (x, y). It reports whether a
// column was hit.
func (a TouchAdapter) TouchStart(x, y int) (model.Field, bool) {
	col, ok := a.hit(x, y)
	if !ok {
		a.Gesture.Cancel()
		return model.FieldNone, false
	}
	return col, a.Gesture.Start(col)
}

// TouchMove updates the drop candidate. Moving outside every column is a
// leave.
func (a TouchAdapter) TouchMove(x, y int) {
	if !a.Gesture.Active() {
		return
	}
	if col, ok := a.hit(x, y); ok {
		a.Gesture.Over(col)
		return
	}
	a.Gesture.Leave()
}

// TouchEnd finishes the gesture at (x, y) and returns the move to commit.
func (a TouchAdapter) TouchEnd(x, y int) (Move, bool) {
	if !a.Gesture.Active() {
		return Move{}, false
	}
	a.TouchMove(x, y)
	return a.Gesture.Drop()
}

// TouchCancel abandons the gesture, e.g. when the sequence is interrupted.
func (a TouchAdapter) TouchCancel() {
	a.Gesture.Cancel()
}

func (a TouchAdapter) hit(x, y int) (model.Field, bool) {
	if a.Hits == nil {
		return model.FieldNone, false
	}
	return a.Hits.ColumnAt(x, y)
}

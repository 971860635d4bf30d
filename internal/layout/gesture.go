package layout

import "github.com/Veraticus/plu/internal/model"

// Phase is the state of a reorder gesture.
type Phase int

const (
	// PhaseIdle means no gesture is in progress.
	PhaseIdle Phase = iota
	// PhaseDragging means a column has been picked up but no drop target is
	// under the pointer.
	PhaseDragging
	// PhaseHovering means a column is being dragged over a drop candidate.
	PhaseHovering
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseHovering:
		return "hovering"
	default:
		return "idle"
	}
}

// Move is a committed reorder: Source lands where Target was.
type Move struct {
	Source model.Field
	Target model.Field
}

// Gesture is the device independent reorder state machine. Hover updates
// only drive visual feedback; the layout changes only through the Move
// returned by Drop.
type Gesture struct {
	source    model.Field
	candidate model.Field
	phase     Phase
}

// Phase returns the current phase.
func (g *Gesture) Phase() Phase {
	return g.phase
}

// Active reports whether a column is being dragged.
func (g *Gesture) Active() bool {
	return g.phase != PhaseIdle
}

// Source returns the column being dragged, or model.FieldNone.
func (g *Gesture) Source() model.Field {
	return g.source
}

// Candidate returns the current drop candidate, or model.FieldNone.
func (g *Gesture) Candidate() model.Field {
	return g.candidate
}

// Start picks up a column. Starting while another gesture is active
// abandons the old one. Fields outside the column set are ignored.
func (g *Gesture) Start(source model.Field) bool {
	if !source.IsColumn() {
		return false
	}
	*g = Gesture{source: source, phase: PhaseDragging}
	return true
}

// Over reports the column currently under the pointer. Hovering the source
// itself clears the candidate.
func (g *Gesture) Over(candidate model.Field) {
	if g.phase == PhaseIdle {
		return
	}
	if candidate == g.source || !candidate.IsColumn() {
		g.Leave()
		return
	}
	g.candidate = candidate
	g.phase = PhaseHovering
}

// Leave clears the drop candidate without committing anything.
func (g *Gesture) Leave() {
	if g.phase == PhaseIdle {
		return
	}
	g.candidate = model.FieldNone
	g.phase = PhaseDragging
}

// Drop ends the gesture. It returns the move to commit when a candidate is
// being hovered, and false otherwise. The gesture is idle afterwards.
func (g *Gesture) Drop() (Move, bool) {
	defer g.Cancel()
	if g.phase != PhaseHovering {
		return Move{}, false
	}
	return Move{Source: g.source, Target: g.candidate}, true
}

// Cancel abandons the gesture without committing.
func (g *Gesture) Cancel() {
	*g = Gesture{}
}

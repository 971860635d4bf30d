package layout

import (
	"testing"

	"github.com/Veraticus/plu/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestGesture_Phases(t *testing.T) {
	var g Gesture
	assert.Equal(t, PhaseIdle, g.Phase())

	assert.True(t, g.Start(ko))
	assert.Equal(t, PhaseDragging, g.Phase())
	assert.Equal(t, ko, g.Source())

	g.Over(fr)
	assert.Equal(t, PhaseHovering, g.Phase())
	assert.Equal(t, fr, g.Candidate())

	g.Over(se)
	assert.Equal(t, se, g.Candidate(), "rapid hover changes track the latest candidate")

	move, ok := g.Drop()
	assert.True(t, ok)
	assert.Equal(t, Move{Source: ko, Target: se}, move)
	assert.Equal(t, PhaseIdle, g.Phase())
	assert.Equal(t, model.FieldNone, g.Source())
}

func TestGesture_NoCommitWithoutCandidate(t *testing.T) {
	var g Gesture
	g.Start(ko)
	_, ok := g.Drop()
	assert.False(t, ok)
	assert.False(t, g.Active())
}

func TestGesture_LeaveClearsCandidate(t *testing.T) {
	var g Gesture
	g.Start(ko)
	g.Over(en)
	g.Leave()
	assert.Equal(t, PhaseDragging, g.Phase())
	assert.Equal(t, model.FieldNone, g.Candidate())

	_, ok := g.Drop()
	assert.False(t, ok)
}

func TestGesture_OverSourceClearsCandidate(t *testing.T) {
	var g Gesture
	g.Start(ko)
	g.Over(en)
	g.Over(ko)
	assert.Equal(t, PhaseDragging, g.Phase())
	_, ok := g.Drop()
	assert.False(t, ok)
}

func TestGesture_IgnoresInvalid(t *testing.T) {
	var g Gesture
	assert.False(t, g.Start(model.FieldCode))
	assert.False(t, g.Active())

	g.Over(en)
	assert.False(t, g.Active(), "hover without a drag is ignored")

	g.Start(en)
	g.Over(model.Field("price"))
	assert.Equal(t, PhaseDragging, g.Phase())
}

func TestGesture_Cancel(t *testing.T) {
	l := New()
	var g Gesture
	g.Start(ko)
	g.Over(se)
	g.Cancel()

	_, ok := g.Drop()
	assert.False(t, ok)
	assert.Equal(t, []model.Field{ko, en, fr, se}, l.Order())
}

func TestGesture_RestartAbandonsPrevious(t *testing.T) {
	var g Gesture
	g.Start(ko)
	g.Over(se)
	g.Start(fr)
	assert.Equal(t, PhaseDragging, g.Phase())
	assert.Equal(t, fr, g.Source())
}

package tui

import (
	"testing"

	"github.com/Veraticus/plu/internal/layout"
	"github.com/Veraticus/plu/internal/model"
	tuitest "github.com/Veraticus/plu/internal/tui/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locate(t *testing.T, m Model, text string) (int, int) {
	t.Helper()
	x, y, ok := tuitest.Locate(m.View(), text)
	require.True(t, ok, "%q not on screen", text)
	return x, y
}

func locateHeader(t *testing.T, m Model, text string) (int, int) {
	t.Helper()
	x, y, ok := tuitest.LocateBelow(m.View(), text, m.sectionTop(sectionBody))
	require.True(t, ok, "%q not in table", text)
	return x, y
}

func defaultOrder() []model.Field {
	return []model.Field{model.FieldKorean, model.FieldEnglish, model.FieldFrench, model.FieldSeason}
}

func TestMouse_DragChipOntoAnother(t *testing.T) {
	m := newTestModel()
	xe, y := locate(t, m, "[x] English")
	xk, _ := locate(t, m, "[x] Korean")

	m = send(t, m, tuitest.MouseDrag(xe, y, xk, y)...)

	assert.Equal(t, []model.Field{
		model.FieldEnglish, model.FieldKorean, model.FieldFrench, model.FieldSeason,
	}, m.Controller().Layout().Order())
	assert.False(t, m.Controller().Gesture().Active())
	assert.True(t, m.Controller().Layout().IsVisible(model.FieldEnglish))
}

func TestMouse_HoverShowsDropCandidate(t *testing.T) {
	m := newTestModel()
	xk, y := locate(t, m, "[x] Korean")
	xs, _ := locate(t, m, "[ ] Season")

	m = send(t, m, tuitest.MousePress(xk, y), tuitest.MouseMotion(xs, y))

	assert.Equal(t, layout.PhaseHovering, m.Controller().Gesture().Phase())
	assert.Equal(t, model.FieldSeason, m.Controller().Gesture().Candidate())
	assert.Contains(t, tuitest.StripANSI(m.View()), "▎[ ] Season")
	assert.Equal(t, defaultOrder(), m.Controller().Layout().Order())
}

func TestMouse_ReleaseOutsideChipsDoesNothing(t *testing.T) {
	m := newTestModel()
	xe, y := locate(t, m, "[x] English")
	xk, _ := locate(t, m, "[x] Korean")

	m = send(t, m,
		tuitest.MousePress(xe, y),
		tuitest.MouseMotion(xk, y),
		tuitest.MouseMotion(95, y),
		tuitest.MouseRelease(95, y),
	)

	assert.Equal(t, defaultOrder(), m.Controller().Layout().Order())
	assert.True(t, m.Controller().Layout().IsVisible(model.FieldEnglish))
	assert.False(t, m.Controller().Gesture().Active())
}

func TestMouse_ClickChipToggles(t *testing.T) {
	m := newTestModel()
	x, y := locate(t, m, "[ ] French")

	m = send(t, m, tuitest.MouseClick(x, y)...)
	assert.True(t, m.Controller().Layout().IsVisible(model.FieldFrench))
	assert.Equal(t, FocusColumns, m.Focus())

	_, _, ok := tuitest.LocateBelow(m.View(), "French", m.sectionTop(sectionBody))
	assert.True(t, ok)

	m = send(t, m, tuitest.MouseClick(x, y)...)
	assert.False(t, m.Controller().Layout().IsVisible(model.FieldFrench))
}

func TestMouse_HeaderClickSorts(t *testing.T) {
	m := newTestModel()
	x, y := locateHeader(t, m, "English")

	m = send(t, m, tuitest.MouseClick(x, y)...)
	assert.Equal(t, model.Sort{Key: model.FieldEnglish, Direction: model.DirectionAscending}, m.Controller().Sort())

	m = send(t, m, tuitest.MouseClick(x, y)...)
	assert.Equal(t, model.Sort{Key: model.FieldEnglish, Direction: model.DirectionDescending}, m.Controller().Sort())

	x, y = locateHeader(t, m, "PLU")
	m = send(t, m, tuitest.MouseClick(x, y)...)
	assert.Equal(t, model.Sort{Key: model.FieldCode, Direction: model.DirectionAscending}, m.Controller().Sort())
}

func TestMouse_RowClickMovesCursor(t *testing.T) {
	m := newTestModel()
	x, y := locateHeader(t, m, "3107")

	m = send(t, m, tuitest.MouseClick(x, y)...)

	r, ok := m.table.SelectedRecord()
	require.True(t, ok)
	assert.Equal(t, "3107", r.Code)
	assert.Equal(t, FocusTable, m.Focus())
}

func TestMouse_WheelPages(t *testing.T) {
	m := newTestModel()
	m = send(t, m, tuitest.MouseWheel(true))
	assert.Equal(t, 2, m.Controller().CurrentPage())

	m = send(t, m, tuitest.MouseWheel(true), tuitest.MouseWheel(true))
	assert.Equal(t, 3, m.Controller().CurrentPage())

	m = send(t, m, tuitest.MouseWheel(false))
	assert.Equal(t, 2, m.Controller().CurrentPage())
}

func TestMouse_ClickDismissesDetail(t *testing.T) {
	m := newTestModel()
	m = send(t, m, tuitest.KeyEnter())
	require.NotNil(t, m.Controller().Selected())

	m = send(t, m, tuitest.MouseClick(1, 1)...)
	assert.Nil(t, m.Controller().Selected())
}

func TestMouse_Disabled(t *testing.T) {
	m := newTestModel(WithMouse(false))
	x, y := locate(t, m, "[ ] French")

	m = send(t, m, tuitest.MouseClick(x, y)...)
	m = send(t, m, tuitest.MouseWheel(true))

	assert.False(t, m.Controller().Layout().IsVisible(model.FieldFrench))
	assert.Equal(t, 1, m.Controller().CurrentPage())
}

func TestMouse_AdaptersConverge(t *testing.T) {
	byMouse := newTestModel()
	xs, y := locate(t, byMouse, "[ ] Season")
	xk, _ := locate(t, byMouse, "[x] Korean")
	byMouse = send(t, byMouse, tuitest.MouseDrag(xs, y, xk, y)...)

	byKeyboard := newTestModel()
	byKeyboard = send(t, byKeyboard, tuitest.KeyTab(), tuitest.KeyTab())
	for range 3 {
		byKeyboard = send(t, byKeyboard, tuitest.KeyRight())
	}
	byKeyboard = send(t, byKeyboard, tuitest.KeyPress("m"))
	for range 3 {
		byKeyboard = send(t, byKeyboard, tuitest.KeyLeft())
	}
	byKeyboard = send(t, byKeyboard, tuitest.KeyEnter())

	want := []model.Field{model.FieldSeason, model.FieldKorean, model.FieldEnglish, model.FieldFrench}
	assert.Equal(t, want, byMouse.Controller().Layout().Order())
	assert.Equal(t, want, byKeyboard.Controller().Layout().Order())
}

func TestMouse_EscAbandonsDrag(t *testing.T) {
	m := newTestModel()
	xe, y := locate(t, m, "[x] English")
	xk, _ := locate(t, m, "[x] Korean")

	m = send(t, m, tuitest.MousePress(xe, y), tuitest.MouseMotion(xk, y))
	require.Equal(t, layout.PhaseHovering, m.Controller().Gesture().Phase())

	m = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, layout.PhaseIdle, m.Controller().Gesture().Phase())
	assert.NotContains(t, tuitest.StripANSI(m.View()), "▎")
	assert.Equal(t, FocusColumns, m.Focus())

	m = send(t, m, tuitest.MouseMotion(xk, y), tuitest.MouseRelease(xk, y))
	assert.Equal(t, defaultOrder(), m.Controller().Layout().Order())
	assert.True(t, m.Controller().Layout().IsVisible(model.FieldKorean))
	assert.True(t, m.Controller().Layout().IsVisible(model.FieldEnglish))
}

func TestMouse_FocusChangeAbandonsDrag(t *testing.T) {
	m := newTestModel()
	xe, y := locate(t, m, "[x] English")
	xk, _ := locate(t, m, "[x] Korean")

	m = send(t, m, tuitest.MousePress(xe, y), tuitest.MouseMotion(xk, y), tuitest.KeyTab())
	assert.False(t, m.Controller().Gesture().Active())

	m = send(t, m, tuitest.MouseRelease(xk, y))
	assert.Equal(t, defaultOrder(), m.Controller().Layout().Order())
}

func TestMouse_GrabKeyDuringDragStartsKeyboardGrab(t *testing.T) {
	m := newTestModel()
	xe, y := locate(t, m, "[x] English")
	xk, _ := locate(t, m, "[x] Korean")

	m = send(t, m, tuitest.MousePress(xe, y), tuitest.MouseMotion(xk, y), tuitest.KeyPress("m"))
	assert.Equal(t, layout.PhaseDragging, m.Controller().Gesture().Phase())
	assert.Equal(t, model.FieldEnglish, m.Controller().Gesture().Source())

	// the mouse release belongs to the abandoned drag
	m = send(t, m, tuitest.MouseRelease(xk, y))
	assert.Equal(t, defaultOrder(), m.Controller().Layout().Order())
	assert.True(t, m.Controller().Gesture().Active())

	m = send(t, m, tuitest.KeyLeft(), tuitest.KeyEnter())
	assert.Equal(t, []model.Field{
		model.FieldEnglish, model.FieldKorean, model.FieldFrench, model.FieldSeason,
	}, m.Controller().Layout().Order())
	assert.False(t, m.Controller().Gesture().Active())
}

func TestMouse_DragBackToSourceDoesNotToggle(t *testing.T) {
	m := newTestModel()
	xe, y := locate(t, m, "[x] English")
	xk, _ := locate(t, m, "[x] Korean")

	m = send(t, m,
		tuitest.MousePress(xe, y),
		tuitest.MouseMotion(xk, y),
		tuitest.MouseMotion(xe, y),
		tuitest.MouseRelease(xe, y),
	)

	assert.True(t, m.Controller().Layout().IsVisible(model.FieldEnglish))
	assert.Equal(t, defaultOrder(), m.Controller().Layout().Order())
	assert.False(t, m.Controller().Gesture().Active())
}

package layout

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/Veraticus/plu/internal/model"
	"github.com/stretchr/testify/assert"
)

var (
	ko = model.FieldKorean
	en = model.FieldEnglish
	fr = model.FieldFrench
	se = model.FieldSeason
)

func TestNew_Defaults(t *testing.T) {
	l := New()
	assert.Equal(t, []model.Field{ko, en, fr, se}, l.Order())
	assert.Equal(t, []model.Field{ko, en}, l.Visible())
	assert.True(t, l.IsVisible(model.FieldCode))
	assert.False(t, l.IsVisible(se))
}

func TestLayout_Toggle(t *testing.T) {
	l := New()

	assert.True(t, l.Toggle(fr))
	assert.True(t, l.IsVisible(fr))
	assert.True(t, l.IsVisible(ko))
	assert.True(t, l.IsVisible(en))
	assert.False(t, l.IsVisible(se))

	assert.False(t, l.Toggle(model.FieldCode), "code column is not toggleable")
	assert.True(t, l.IsVisible(model.FieldCode))
	assert.False(t, l.Toggle(model.Field("price")))
}

func TestLayout_ToggleTwiceRestores(t *testing.T) {
	for _, f := range []model.Field{ko, en, fr, se} {
		l := New()
		before := map[model.Field]bool{}
		for _, c := range l.Order() {
			before[c] = l.IsVisible(c)
		}

		l.Toggle(f)
		for _, c := range l.Order() {
			if c != f {
				assert.Equal(t, before[c], l.IsVisible(c), "toggling %s changed %s", f, c)
			}
		}
		l.Toggle(f)
		for _, c := range l.Order() {
			assert.Equal(t, before[c], l.IsVisible(c))
		}
	}
}

func TestLayout_Reorder(t *testing.T) {
	tests := []struct {
		name    string
		moved   model.Field
		target  model.Field
		want    []model.Field
		changed bool
	}{
		{name: "forward lands on target index", moved: ko, target: fr, want: []model.Field{en, fr, ko, se}, changed: true},
		{name: "backward lands on target index", moved: se, target: en, want: []model.Field{ko, se, en, fr}, changed: true},
		{name: "adjacent swap", moved: ko, target: en, want: []model.Field{en, ko, fr, se}, changed: true},
		{name: "to the end", moved: ko, target: se, want: []model.Field{en, fr, se, ko}, changed: true},
		{name: "same column is a no-op", moved: en, target: en, want: []model.Field{ko, en, fr, se}},
		{name: "unknown moved is a no-op", moved: model.Field("price"), target: en, want: []model.Field{ko, en, fr, se}},
		{name: "code column is a no-op", moved: model.FieldCode, target: en, want: []model.Field{ko, en, fr, se}},
		{name: "unknown target is a no-op", moved: en, target: model.FieldNone, want: []model.Field{ko, en, fr, se}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			assert.Equal(t, tt.changed, l.Reorder(tt.moved, tt.target))
			assert.Equal(t, tt.want, l.Order())
		})
	}
}

func TestLayout_ReorderRoundTrip(t *testing.T) {
	t.Run("adjacent pair restores", func(t *testing.T) {
		l := New()
		l.Reorder(en, fr)
		assert.Equal(t, []model.Field{ko, fr, en, se}, l.Order())
		l.Reorder(fr, en)
		assert.Equal(t, []model.Field{ko, en, fr, se}, l.Order())
	})

	t.Run("moving back onto the column now at the old index restores", func(t *testing.T) {
		l := New()
		l.Reorder(ko, fr)
		assert.Equal(t, []model.Field{en, fr, ko, se}, l.Order())
		// ko started at index 0, which en now holds.
		l.Reorder(ko, en)
		assert.Equal(t, []model.Field{ko, en, fr, se}, l.Order())
	})

	t.Run("non adjacent reverse call does not restore", func(t *testing.T) {
		l := New()
		l.Reorder(ko, fr)
		l.Reorder(fr, ko)
		assert.Equal(t, []model.Field{en, ko, fr, se}, l.Order())
	})
}

func TestLayout_ReorderKeepsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	all := []model.Field{ko, en, fr, se, model.FieldCode, model.Field("x")}
	l := New()

	for i := 0; i < 500; i++ {
		l.Reorder(all[rng.Intn(len(all))], all[rng.Intn(len(all))])
		order := l.Order()
		assert.Len(t, order, 4)
		sorted := slices.Clone(order)
		slices.Sort(sorted)
		assert.Equal(t, []model.Field{en, fr, ko, se}, sorted)
	}
}

func TestLayout_OrderIsCopy(t *testing.T) {
	l := New()
	order := l.Order()
	order[0] = se
	assert.Equal(t, ko, l.Order()[0])
}

func TestLayout_SetVisible(t *testing.T) {
	l := New()
	assert.False(t, l.SetVisible(ko, true))
	assert.True(t, l.SetVisible(ko, false))
	assert.Equal(t, []model.Field{en}, l.Visible())
}

package controller

import (
	"fmt"
	"testing"

	"github.com/Veraticus/plu/internal/layout"
	"github.com/Veraticus/plu/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func produce(n int) []model.Record {
	out := make([]model.Record, n)
	for i := range out {
		out[i] = model.Record{
			Code:    fmt.Sprintf("%04d", 4000+i),
			Korean:  fmt.Sprintf("과일 %d", i),
			English: fmt.Sprintf("Fruit %02d", i%7),
			French:  fmt.Sprintf("Fruit %d", i),
		}
	}
	return out
}

func TestController_Defaults(t *testing.T) {
	c := New(produce(25), 10)
	v := c.View()

	assert.Equal(t, "", v.Query)
	assert.True(t, v.Sort.IsNone())
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, 25, v.TotalRows)
	assert.Len(t, v.Rows, 10)
	assert.Nil(t, v.Selected)
	assert.Equal(t, []int{1, 2, 3}, v.PageNums)

	labels := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		labels[i] = col.Label
	}
	assert.Equal(t, []string{"PLU", "Korean", "English"}, labels)
	assert.Len(t, v.Chips, 4)
}

func TestController_PageThree(t *testing.T) {
	records := produce(25)
	c := New(records, 10)
	c.SetPage(3)

	v := c.View()
	assert.Equal(t, 3, v.Page)
	assert.Equal(t, records[20:25], v.Rows)
	assert.True(t, v.HasPrev)
	assert.False(t, v.HasNext)
}

func TestController_SetPageClamps(t *testing.T) {
	c := New(produce(25), 10)

	c.SetPage(99)
	assert.Equal(t, 3, c.CurrentPage())
	c.SetPage(-4)
	assert.Equal(t, 1, c.CurrentPage())

	c.PrevPage()
	assert.Equal(t, 1, c.CurrentPage())
	c.NextPage()
	c.NextPage()
	c.NextPage()
	assert.Equal(t, 3, c.CurrentPage())
	c.LastPage()
	assert.Equal(t, 3, c.CurrentPage())
}

func TestController_QueryResetsPage(t *testing.T) {
	c := New(produce(25), 10)
	c.SetPage(3)

	c.SetQuery("fruit 06")
	v := c.View()
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, "fruit 06", v.Query)
	require.Len(t, v.Rows, 3)
	for _, r := range v.Rows {
		assert.Equal(t, "Fruit 06", r.English)
	}
}

func TestController_SameQueryKeepsPage(t *testing.T) {
	c := New(produce(25), 10)
	c.SetQuery("fruit")
	c.SetPage(2)
	c.SetQuery("fruit")
	assert.Equal(t, 2, c.CurrentPage())
}

func TestController_SortResetsPageAndToggles(t *testing.T) {
	c := New(produce(25), 10)
	c.SetPage(2)

	c.RequestSort(model.FieldCode)
	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, model.DirectionAscending, c.Sort().Direction)

	c.SetPage(2)
	c.RequestSort(model.FieldCode)
	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, model.DirectionDescending, c.Sort().Direction)
	assert.Equal(t, "4024", c.View().Rows[0].Code)

	c.RequestSort(model.FieldCode)
	assert.Equal(t, model.DirectionAscending, c.Sort().Direction)

	c.RequestSort(model.Field("price"))
	assert.Equal(t, model.FieldCode, c.Sort().Key)
}

func TestController_SortIsStableAcrossPages(t *testing.T) {
	records := produce(25)
	c := New(records, 10)
	c.RequestSort(model.FieldEnglish)

	var all []model.Record
	for page := 1; page <= 3; page++ {
		c.SetPage(page)
		all = append(all, c.View().Rows...)
	}
	require.Len(t, all, 25)
	for i := 1; i < len(all); i++ {
		if all[i-1].English == all[i].English {
			assert.Less(t, all[i-1].Code, all[i].Code)
		}
	}
}

func TestController_EmptyResult(t *testing.T) {
	c := New(produce(5), 10)
	c.SetQuery("durian")
	v := c.View()
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 0, v.TotalPages)
	assert.Empty(t, v.Rows)
	assert.Nil(t, v.PageNums)
}

func TestController_Columns(t *testing.T) {
	c := New(produce(3), 10)

	c.ToggleColumn(model.FieldSeason)
	c.ReorderColumn(model.FieldSeason, model.FieldKorean)
	c.ToggleColumn(model.FieldCode)

	v := c.View()
	fields := make([]model.Field, len(v.Columns))
	for i, col := range v.Columns {
		fields[i] = col.Field
	}
	assert.Equal(t, []model.Field{model.FieldCode, model.FieldSeason, model.FieldKorean, model.FieldEnglish}, fields)

	r := model.Record{Code: "4011", Korean: "바나나", English: "Banana", Season: "All year"}
	assert.Equal(t, []string{"4011", "All year", "바나나", "Banana"}, v.Cells(r))
}

func TestController_GestureFeedback(t *testing.T) {
	c := New(produce(3), 10)
	g := c.Gesture()
	g.Start(model.FieldKorean)
	g.Over(model.FieldEnglish)

	v := c.View()
	for _, chip := range v.Chips {
		assert.Equal(t, chip.Field == model.FieldKorean, chip.Dragging)
		assert.Equal(t, chip.Field == model.FieldEnglish, chip.DropCandidate)
	}
	assert.Equal(t, []model.Field{model.FieldKorean, model.FieldEnglish, model.FieldFrench, model.FieldSeason},
		c.Layout().Order(), "hovering never commits")

	c.ApplyMove(g.Drop())
	assert.Equal(t, []model.Field{model.FieldEnglish, model.FieldKorean, model.FieldFrench, model.FieldSeason},
		c.Layout().Order())

	c.ApplyMove(layout.Move{Source: model.FieldFrench, Target: model.FieldKorean}, false)
	assert.Equal(t, model.FieldFrench, c.Layout().Order()[2])
}

func TestController_Selection(t *testing.T) {
	records := produce(3)
	c := New(records, 10)

	c.SelectRecord(records[0])
	c.SelectRecord(records[1])
	require.NotNil(t, c.View().Selected)
	assert.Equal(t, records[1].Code, c.View().Selected.Code)

	c.DismissSelection()
	assert.Nil(t, c.Selected())
}

func TestController_Deterministic(t *testing.T) {
	a := New(produce(25), 10)
	b := New(produce(25), 10)

	for _, c := range []*Controller{a, b} {
		c.SetQuery("fruit 1")
		c.RequestSort(model.FieldFrench)
		c.RequestSort(model.FieldFrench)
		c.SetPage(1)
	}
	assert.Equal(t, a.View(), b.View())
	assert.Equal(t, a.View(), a.View())
}

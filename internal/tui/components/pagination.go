package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/plu/internal/controller"
	"github.com/Veraticus/plu/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// RenderPagination renders the page controls and result count. Prev and
// next are drawn disabled at the boundaries. With a single page only the
// count is shown.
func RenderPagination(v controller.View, theme themes.Theme) string {
	count := lipgloss.NewStyle().Foreground(theme.Muted).Render(resultSummary(v))
	if v.TotalPages <= 1 {
		return count
	}

	parts := make([]string, 0, len(v.PageNums)+2)
	parts = append(parts, pageControl("‹ Prev", v.HasPrev, theme))
	for _, n := range v.PageNums {
		label := " " + strconv.Itoa(n) + " "
		if n == v.Page {
			parts = append(parts, theme.PageCurrent.Render(label))
		} else {
			parts = append(parts, theme.PageOther.Render(label))
		}
	}
	parts = append(parts, pageControl("Next ›", v.HasNext, theme))

	return strings.Join(parts, " ") + "   " + count
}

func pageControl(label string, enabled bool, theme themes.Theme) string {
	if enabled {
		return theme.PageOther.Render(label)
	}
	return theme.PageDisabled.Render(label)
}

func resultSummary(v controller.View) string {
	noun := "results"
	if v.TotalRows == 1 {
		noun = "result"
	}
	if v.TotalPages == 0 {
		return fmt.Sprintf("0 %s", noun)
	}
	return fmt.Sprintf("Page %d of %d · %d %s", v.Page, v.TotalPages, v.TotalRows, noun)
}

package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Veraticus/plu/internal/model"
	"github.com/charmbracelet/glamour"
)

// Markdown styles understood by DetailRenderer.
const (
	MarkdownAuto  = "auto"
	MarkdownDark  = "dark"
	MarkdownLight = "light"
)

// DetailRenderer turns a record into the seasonality panel text using
// glamour. Renderers are built lazily per wrap width.
type DetailRenderer struct {
	renderers map[int]*glamour.TermRenderer
	style     string
	mu        sync.Mutex
}

// NewDetailRenderer creates a renderer for the given markdown style.
func NewDetailRenderer(style string) *DetailRenderer {
	return &DetailRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// DetailMarkdown is the markdown source of the detail panel.
func DetailMarkdown(r model.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s (%s)\n\n", r.English, r.Korean)
	fmt.Fprintf(&sb, "**Seasonality:** %s\n\n", r.SeasonOrNA())
	fmt.Fprintf(&sb, "| PLU | French |\n|---|---|\n| `%s` | %s |\n", r.Code, r.French)
	return sb.String()
}

// Render returns the terminal rendering of r wrapped at width. On renderer
// failure the raw markdown is returned.
func (d *DetailRenderer) Render(r model.Record, width int) string {
	source := DetailMarkdown(r)
	renderer, err := d.renderer(width)
	if err != nil {
		return source
	}
	out, err := renderer.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimRight(out, "\n")
}

func (d *DetailRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r, ok := d.renderers[width]; ok {
		return r, nil
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(max(width, 0))}
	switch d.style {
	case MarkdownDark, MarkdownLight:
		options = append(options, glamour.WithStandardStyle(d.style))
	default:
		options = append(options, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return nil, err
	}
	d.renderers[width] = r
	return r, nil
}

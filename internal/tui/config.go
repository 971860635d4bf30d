package tui

import (
	"log/slog"

	"github.com/Veraticus/plu/internal/pipeline"
	"github.com/Veraticus/plu/internal/tui/components"
	"github.com/Veraticus/plu/internal/tui/themes"
	"github.com/atotto/clipboard"
)

// Config holds TUI configuration.
type Config struct {
	Theme         themes.Theme
	Clipboard     func(string) error
	Logger        *slog.Logger
	MarkdownStyle string
	PageSize      int
	Width         int
	Height        int
	MouseSupport  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:         themes.Default,
		Clipboard:     clipboard.WriteAll,
		Logger:        slog.Default(),
		MarkdownStyle: components.MarkdownAuto,
		PageSize:      pipeline.DefaultPageSize,
		Width:         100,
		Height:        32,
		MouseSupport:  true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithPageSize sets the number of rows per page. Values below 1 are
// ignored.
func WithPageSize(size int) Option {
	return func(c *Config) {
		if size >= 1 {
			c.PageSize = size
		}
	}
}

// WithMouse enables or disables mouse input.
func WithMouse(enabled bool) Option {
	return func(c *Config) {
		c.MouseSupport = enabled
	}
}

// WithMarkdownStyle sets the glamour style of the detail panel.
func WithMarkdownStyle(style string) Option {
	return func(c *Config) {
		c.MarkdownStyle = style
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(c *Config) {
		c.Clipboard = write
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

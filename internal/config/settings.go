package config

import (
	"fmt"
	"path/filepath"

	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/pipeline"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyPageSize      = "view.page_size"
	KeyDatasetPath   = "dataset.path"
	KeyMouse         = "ui.mouse"
	KeyMarkdownStyle = "ui.markdown_style"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyLogFile       = "logging.file"
)

// Markdown styles accepted by ui.markdown_style.
const (
	MarkdownAuto  = "auto"
	MarkdownDark  = "dark"
	MarkdownLight = "light"
)

// Settings is the resolved application configuration.
type Settings struct {
	DatasetPath   string
	MarkdownStyle string
	LogLevel      string
	LogFormat     string
	LogFile       string
	PageSize      int
	Mouse         bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPageSize, pipeline.DefaultPageSize)
	v.SetDefault(KeyDatasetPath, "")
	v.SetDefault(KeyMouse, true)
	v.SetDefault(KeyMarkdownStyle, MarkdownAuto)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
}

// Load reads Settings from v and validates them. File paths are resolved
// relative to the directory of the config file in use, if any.
func Load(v *viper.Viper) (Settings, error) {
	baseDir := ""
	if used := v.ConfigFileUsed(); used != "" {
		baseDir = filepath.Dir(used)
	}

	s := Settings{
		PageSize:      v.GetInt(KeyPageSize),
		DatasetPath:   ResolvePath(v.GetString(KeyDatasetPath), baseDir),
		Mouse:         v.GetBool(KeyMouse),
		MarkdownStyle: v.GetString(KeyMarkdownStyle),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),
		LogFile:       ResolvePath(v.GetString(KeyLogFile), baseDir),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if s.PageSize < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", common.ErrInvalidConfig, KeyPageSize, s.PageSize)
	}

	switch s.MarkdownStyle {
	case MarkdownAuto, MarkdownDark, MarkdownLight:
	default:
		return fmt.Errorf("%w: %s must be auto, dark or light, got %q", common.ErrInvalidConfig, KeyMarkdownStyle, s.MarkdownStyle)
	}

	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, s.LogFormat)
	}
	return nil
}

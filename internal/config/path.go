// Package config loads the settings that shape the PLU table: page size,
// dataset source, UI features and logging.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath expands ~ and environment variables in path. Relative results
// are taken relative to baseDir when one is given, so paths written in a
// config file refer to files next to it.
func ResolvePath(path, baseDir string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	path = os.ExpandEnv(path)

	if baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return filepath.Clean(path)
}

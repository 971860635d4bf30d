package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/tui"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse PLU codes interactively",
		Long: `Open the interactive table.

Search with /, sort with 1-5, page with ←/→, toggle columns with space and
move them with m (or drag the column chips with the mouse). Press ? for help.`,
		RunE: runBrowse,
	}

	cmd.Flags().Bool("no-mouse", false, "Disable mouse input")

	return cmd
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	noMouse, _ := cmd.Flags().GetBool("no-mouse")

	// The TUI owns the terminal; logs go to a file or nowhere.
	logger, closeLog, err := tuiLogger(settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	store, err := loadStore(ctx)
	if err != nil {
		return err
	}

	return tui.Run(ctx, store.Records(),
		tui.WithPageSize(settings.PageSize),
		tui.WithMouse(settings.Mouse && !noMouse),
		tui.WithMarkdownStyle(settings.MarkdownStyle),
		tui.WithLogger(logger),
	)
}

func tuiLogger(path string) (*slog.Logger, func(), error) {
	level, err := common.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	if path == "" {
		logger, err := common.NewLogger(io.Discard, level, settings.LogFormat)
		return logger, func() {}, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600) // #nosec G304 -- path is user configuration
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger, err := common.NewLogger(f, level, settings.LogFormat)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, func() { _ = f.Close() }, nil
}

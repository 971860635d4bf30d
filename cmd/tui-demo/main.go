// Package main provides a demo program for the TUI
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Veraticus/plu/internal/dataset"
	"github.com/Veraticus/plu/internal/model"
	"github.com/Veraticus/plu/internal/tui"
)

// copies is how many times the embedded table is repeated, enough to page
// through dozens of screens.
const copies = 40

func main() {
	ctx := context.Background()

	store, err := dataset.Embedded()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	records := make([]model.Record, 0, store.Len()*copies)
	for i := range copies {
		for _, r := range store.Records() {
			r.Code = fmt.Sprintf("%s-%02d", r.Code, i)
			records = append(records, r)
		}
	}

	// Clipboard writes are printed on exit instead of touching the system clipboard
	var copied []string
	err = tui.Run(ctx, records,
		tui.WithSize(120, 40),
		tui.WithPageSize(15),
		tui.WithClipboard(func(code string) error {
			copied = append(copied, code)
			return nil
		}),
	)
	if err != nil {
		// Use explicit error check to satisfy forbidigo
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	for _, code := range copied {
		_, _ = fmt.Fprintf(os.Stdout, "copied %s\n", code)
	}
}

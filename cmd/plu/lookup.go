package main

import (
	"fmt"

	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/tui/components"
	"github.com/spf13/cobra"
)

func lookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <code>",
		Short: "Show the details of one PLU code",
		Args:  cobra.ExactArgs(1),
		RunE:  runLookup,
	}

	cmd.Flags().Int("width", 80, "Wrap width")

	return cmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")

	store, err := loadStore(cmd.Context())
	if err != nil {
		return err
	}

	record, ok := store.Lookup(args[0])
	if !ok {
		return common.NewUserError(fmt.Sprintf("no PLU code %s in %s dataset", args[0], store.Source()), nil)
	}

	renderer := components.NewDetailRenderer(settings.MarkdownStyle)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(record, width))
	return err
}

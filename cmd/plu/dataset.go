package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/plu/internal/cli"
	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/dataset"
	"github.com/spf13/cobra"
)

func datasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect and convert PLU datasets",
	}

	cmd.AddCommand(datasetShowCmd())
	cmd.AddCommand(datasetBuildCmd())
	cmd.AddCommand(datasetExportCmd())

	return cmd
}

func datasetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show where the dataset comes from and how many codes it holds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadStore(cmd.Context())
			if err != nil {
				return err
			}

			content := fmt.Sprintf("Source:  %s\nRecords: %d", store.Source(), store.Len())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(cli.FormatTitle("PLU dataset"), content))
			return err
		},
	}
}

func datasetBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a SQLite dataset",
		Long: `Read a CSV or YAML dataset (or the embedded one) and write it to a SQLite
database that can be used as dataset.path.`,
		Example: `  plu dataset build --out ~/.local/share/plu/plu.db
  plu dataset build --from codes.yaml --out codes.db`,
		RunE: runDatasetBuild,
	}

	cmd.Flags().String("from", "", "Source dataset (.csv, .yaml, .db); embedded data when empty")
	cmd.Flags().String("out", "", "Output SQLite file")
	cmd.Flags().Bool("quiet", false, "Do not show a progress bar")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runDatasetBuild(cmd *cobra.Command, _ []string) error {
	from, _ := cmd.Flags().GetString("from")
	out, _ := cmd.Flags().GetString("out")
	quiet, _ := cmd.Flags().GetBool("quiet")

	store, err := dataset.Load(cmd.Context(), from)
	if err != nil {
		return common.NewUserError("failed to read source dataset", err)
	}

	if abs, absErr := filepath.Abs(from); absErr == nil && from != "" {
		if outAbs, outErr := filepath.Abs(out); outErr == nil && abs == outAbs {
			return common.NewUserError("--out must differ from --from", nil)
		}
	}

	slog.Info("Building dataset", "source", store.Source(), "out", out, "records", store.Len())

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Dataset build", "No database was written.")
	ctx := handler.HandleInterrupts(cmd.Context())

	var progress func()
	if !quiet {
		progress = cli.Step(cli.NewProgressBar(cmd.ErrOrStderr(), store.Len(), "Writing PLU codes..."))
	}

	if err := dataset.WriteSQLite(ctx, out, store.Records(), progress); err != nil {
		if handler.WasInterrupted() {
			return ctx.Err()
		}
		return fmt.Errorf("failed to build dataset: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Wrote %d PLU codes to %s", store.Len(), out)))
	return err
}

func datasetExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset as CSV or YAML",
		RunE:  runDatasetExport,
	}

	cmd.Flags().String("format", "csv", "Output format (csv, yaml)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runDatasetExport(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	var write func(io.Writer, *dataset.Store) error
	switch strings.ToLower(format) {
	case "csv":
		write = func(w io.Writer, s *dataset.Store) error { return dataset.WriteCSV(w, s.Records()) }
	case "yaml", "yml":
		write = func(w io.Writer, s *dataset.Store) error { return dataset.WriteYAML(w, s.Records()) }
	default:
		return common.NewUserError("--format must be csv or yaml", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format))
	}

	store, err := loadStore(cmd.Context())
	if err != nil {
		return err
	}

	if output == "" {
		return write(cmd.OutOrStdout(), store)
	}

	f, err := os.Create(output) // #nosec G304 -- output path is provided by the user
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f, store); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to export dataset: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	slog.Info("Exported dataset", "records", store.Len(), "format", format, "output", output)
	return nil
}

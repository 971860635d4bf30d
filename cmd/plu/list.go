package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/Veraticus/plu/internal/cli"
	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/controller"
	"github.com/Veraticus/plu/internal/model"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var errInvalidFlag = errors.New("invalid flag")

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the PLU table",
		Long: `Filter, sort and paginate the table once and print the resulting page.

Columns are given in display order; the PLU column is always shown first.`,
		Example: `  plu list --query banana
  plu list --sort english --desc --page 2
  plu list --columns french,season --format json`,
		RunE: runList,
	}

	cmd.Flags().StringP("query", "q", "", "Case-insensitive search over code and names")
	cmd.Flags().String("sort", "", fmt.Sprintf("Sort field (%s)", fieldNames(model.SortableFields())))
	cmd.Flags().Bool("desc", false, "Sort descending")
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().StringSlice("columns", nil, "Visible columns in order (korean, english, french, season)")
	cmd.Flags().String("format", formatTable, "Output format (table, json)")

	return cmd
}

type listOptions struct {
	query   string
	sort    string
	format  string
	columns []string
	page    int
	desc    bool
}

func runList(cmd *cobra.Command, _ []string) error {
	var opts listOptions
	opts.query, _ = cmd.Flags().GetString("query")
	opts.sort, _ = cmd.Flags().GetString("sort")
	opts.desc, _ = cmd.Flags().GetBool("desc")
	opts.page, _ = cmd.Flags().GetInt("page")
	opts.columns, _ = cmd.Flags().GetStringSlice("columns")
	opts.format, _ = cmd.Flags().GetString("format")

	if opts.format != formatTable && opts.format != formatJSON {
		return common.NewUserError("--format must be table or json", fmt.Errorf("%w: %q", errInvalidFlag, opts.format))
	}

	store, err := loadStore(cmd.Context())
	if err != nil {
		return err
	}

	c := controller.New(store.Records(), settings.PageSize, controller.WithLogger(slog.Default()))
	if err := applyListOptions(c, opts); err != nil {
		return err
	}

	view := c.View()
	common.LogDebug("Listing page", common.Fields{
		"page":        view.Page,
		"total_pages": view.TotalPages,
		"rows":        len(view.Rows),
	})

	if opts.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), view)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTable(view))
	return err
}

// applyListOptions drives the controller the same way the interactive
// table does.
func applyListOptions(c *controller.Controller, opts listOptions) error {
	if len(opts.columns) > 0 {
		if err := applyColumns(c, opts.columns); err != nil {
			return err
		}
	}

	switch {
	case opts.sort != "":
		field, err := model.ParseField(opts.sort)
		if err != nil {
			return common.NewUserError("invalid --sort", err)
		}
		c.RequestSort(field)
		if opts.desc {
			c.RequestSort(field)
		}
	case opts.desc:
		return common.NewUserError("--desc requires --sort", errInvalidFlag)
	}

	c.SetQuery(opts.query)
	c.SetPage(opts.page)
	return nil
}

// applyColumns shows exactly the named columns, in the given order.
func applyColumns(c *controller.Controller, names []string) error {
	fields := make([]model.Field, 0, len(names))
	for _, name := range names {
		f := model.Field(name)
		if !f.IsColumn() {
			return common.NewUserError("invalid --columns", fmt.Errorf("%w: unknown column %q", errInvalidFlag, name))
		}
		if slices.Contains(fields, f) {
			return common.NewUserError("invalid --columns", fmt.Errorf("%w: duplicate column %q", errInvalidFlag, name))
		}
		fields = append(fields, f)
	}

	for _, col := range model.Columns() {
		c.Layout().SetVisible(col.Field, slices.Contains(fields, col.Field))
	}
	for i, f := range fields {
		c.ReorderColumn(f, c.Layout().Order()[i])
	}
	return nil
}

func fieldNames(fields []model.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

type jsonPage struct {
	Query      string              `json:"query,omitempty"`
	Sort       *jsonSort           `json:"sort,omitempty"`
	Columns    []string            `json:"columns"`
	Rows       []map[string]string `json:"rows"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
	TotalRows  int                 `json:"total_rows"`
}

type jsonSort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

func writeJSON(w io.Writer, v controller.View) error {
	page := jsonPage{
		Query:      v.Query,
		Columns:    make([]string, len(v.Columns)),
		Rows:       make([]map[string]string, len(v.Rows)),
		Page:       v.Page,
		PageSize:   v.PageSize,
		TotalPages: v.TotalPages,
		TotalRows:  v.TotalRows,
	}
	if !v.Sort.IsNone() {
		page.Sort = &jsonSort{Field: string(v.Sort.Key), Direction: v.Sort.Direction.String()}
	}
	for i, col := range v.Columns {
		page.Columns[i] = string(col.Field)
	}
	for i, r := range v.Rows {
		row := make(map[string]string, len(v.Columns))
		for _, col := range v.Columns {
			row[string(col.Field)] = r.Value(col.Field)
		}
		page.Rows[i] = row
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(page); err != nil {
		return fmt.Errorf("failed to encode page: %w", err)
	}
	return nil
}

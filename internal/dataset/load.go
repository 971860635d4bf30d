package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/model"
)

//go:embed data/plu.csv
var embeddedCSV []byte

// Embedded returns the store compiled into the binary.
func Embedded() (*Store, error) {
	records, err := ReadCSV(bytes.NewReader(embeddedCSV))
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	if err := validateRecords(records, SourceEmbedded); err != nil {
		return nil, err
	}
	return NewStore(records, SourceEmbedded), nil
}

// Load materializes the store at path. An empty path selects the embedded
// dataset. The format is chosen by file extension.
func Load(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return Embedded()
	}

	records, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := validateRecords(records, path); err != nil {
		return nil, err
	}

	slog.Debug("Loaded dataset", "source", path, "records", len(records))
	return NewStore(records, path), nil
}

func readFile(ctx context.Context, path string) ([]model.Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readWith(path, ReadCSV)
	case ".yaml", ".yml":
		return readWith(path, ReadYAML)
	case ".db", ".sqlite", ".sqlite3":
		src, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = src.Close() }()
		return src.Records(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
}

func readWith(path string, read func(io.Reader) ([]model.Record, error)) ([]model.Record, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

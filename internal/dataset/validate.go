package dataset

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/model"
)

// Header is the expected column layout of tabular dataset files.
var Header = []string{"plu", "korean", "english", "french", "season"}

// normalize trims every field of r.
func normalize(r model.Record) model.Record {
	return model.Record{
		Code:    strings.TrimSpace(r.Code),
		Korean:  strings.TrimSpace(r.Korean),
		English: strings.TrimSpace(r.English),
		French:  strings.TrimSpace(r.French),
		Season:  strings.TrimSpace(r.Season),
	}
}

// validateRecords rejects records without a code. Duplicate codes are kept
// but logged, since uniqueness is expected and not enforced.
func validateRecords(records []model.Record, source string) error {
	if len(records) == 0 {
		return fmt.Errorf("%s: %w", source, common.ErrEmptyDataset)
	}

	seen := make(map[string]int, len(records))
	for i, r := range records {
		if r.Code == "" {
			return fmt.Errorf("%s: record %d: missing plu code: %w", source, i+1, common.ErrInvalidDataset)
		}
		if first, dup := seen[r.Code]; dup {
			slog.Warn("Duplicate PLU code in dataset",
				"source", source,
				"code", r.Code,
				"first", first+1,
				"duplicate", i+1)
			continue
		}
		seen[r.Code] = i
	}
	return nil
}

// validateHeader checks a tabular header against Header, ignoring case and
// surrounding whitespace.
func validateHeader(header []string) error {
	if len(header) != len(Header) {
		return fmt.Errorf("%w: expected %d columns, got %d", common.ErrInvalidDataset, len(Header), len(header))
	}
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		if !strings.EqualFold(strings.TrimSpace(name), Header[i]) {
			return fmt.Errorf("%w: column %d is %q, expected %q", common.ErrInvalidDataset, i+1, name, Header[i])
		}
	}
	return nil
}

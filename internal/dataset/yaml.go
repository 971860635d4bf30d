package dataset

import (
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/model"
	"gopkg.in/yaml.v3"
)

type yamlRecord struct {
	PLU     string `yaml:"plu"`
	Korean  string `yaml:"korean"`
	English string `yaml:"english"`
	French  string `yaml:"french"`
	Season  string `yaml:"season,omitempty"`
}

// ReadYAML parses a YAML sequence of records keyed like the CSV header.
func ReadYAML(r io.Reader) ([]model.Record, error) {
	var raw []yamlRecord
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, common.ErrEmptyDataset
		}
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidDataset, err)
	}

	records := make([]model.Record, 0, len(raw))
	for _, y := range raw {
		records = append(records, normalize(model.Record{
			Code:    y.PLU,
			Korean:  y.Korean,
			English: y.English,
			French:  y.French,
			Season:  y.Season,
		}))
	}
	return records, nil
}

// WriteYAML writes records in the format read by ReadYAML.
func WriteYAML(w io.Writer, records []model.Record) error {
	raw := make([]yamlRecord, 0, len(records))
	for _, r := range records {
		raw = append(raw, yamlRecord{PLU: r.Code, Korean: r.Korean, English: r.English, French: r.French, Season: r.Season})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return enc.Close()
}

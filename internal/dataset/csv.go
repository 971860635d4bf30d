package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/model"
)

// ReadCSV parses a dataset with a plu,korean,english,french,season header.
func ReadCSV(r io.Reader) ([]model.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, common.ErrEmptyDataset
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var records []model.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidDataset, err)
		}

		records = append(records, normalize(model.Record{
			Code:    row[0],
			Korean:  row[1],
			English: row[2],
			French:  row[3],
			Season:  row[4],
		}))
	}

	return records, nil
}

// WriteCSV writes records in the format read by ReadCSV.
func WriteCSV(w io.Writer, records []model.Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		if err := writer.Write([]string{r.Code, r.Korean, r.English, r.French, r.Season}); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.Code, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

package pipeline

import (
	"slices"
	"strings"

	"github.com/Veraticus/plu/internal/model"
)

// SortRecords returns records ordered by the active sort. Comparison is
// byte-wise on the field value. Equal keys keep their input order. When no
// sort is active the input is returned unchanged.
func SortRecords(records []model.Record, s model.Sort) []model.Record {
	if s.IsNone() || !s.Key.IsValid() {
		return records
	}

	sorted := slices.Clone(records)
	key := s.Key
	desc := s.Direction == model.DirectionDescending

	slices.SortStableFunc(sorted, func(a, b model.Record) int {
		c := strings.Compare(a.Value(key), b.Value(key))
		if desc {
			return -c
		}
		return c
	})
	return sorted
}

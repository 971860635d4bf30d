// Package pipeline implements the derived-view stages that turn the static
// record set into the page being rendered: filter, sort and paginate.
//
// Every stage is a pure function of its inputs. None of them mutates the
// slice it receives.
package pipeline

import (
	"strings"

	"github.com/Veraticus/plu/internal/model"
)

// NormalizeQuery trims and case-folds a free-text query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Filter returns the records whose code or names contain query as a
// case-insensitive substring, in their original order. An empty or
// whitespace-only query returns records unchanged.
func Filter(records []model.Record, query string) []model.Record {
	q := NormalizeQuery(query)
	if q == "" {
		return records
	}

	matched := make([]model.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, q) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Matches reports whether r matches an already normalized query.
// Seasonality is not searched.
func Matches(r model.Record, normalized string) bool {
	return strings.Contains(strings.ToLower(r.Code), normalized) ||
		strings.Contains(strings.ToLower(r.Korean), normalized) ||
		strings.Contains(strings.ToLower(r.English), normalized) ||
		strings.Contains(strings.ToLower(r.French), normalized)
}

// Package dataset provides the read-only Record Store and the loaders that
// materialize it from the embedded table, CSV, YAML or SQLite files.
package dataset

import (
	"slices"

	"github.com/Veraticus/plu/internal/model"
)

// SourceEmbedded names the dataset compiled into the binary.
const SourceEmbedded = "embedded"

// Store is an immutable, ordered collection of records.
type Store struct {
	source  string
	records []model.Record
}

// NewStore copies records into a new store.
func NewStore(records []model.Record, source string) *Store {
	return &Store{
		source:  source,
		records: slices.Clone(records),
	}
}

// Records returns the records in dataset order. The returned slice is
// shared and must not be modified.
func (s *Store) Records() []model.Record {
	return s.records
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Source describes where the records came from.
func (s *Store) Source() string {
	return s.source
}

// Lookup returns the first record with the given code.
func (s *Store) Lookup(code string) (model.Record, bool) {
	for _, r := range s.records {
		if r.Code == code {
			return r, true
		}
	}
	return model.Record{}, false
}

package pipeline

import (
	"github.com/Veraticus/plu/internal/model"
)

// Controls is the input tuple of a derivation.
type Controls struct {
	Query string
	Sort  model.Sort
	Page  int
}

// Deriver computes pages from a fixed record set. Each stage result is
// memoized on the inputs that affect it, so repeated derivations with the
// same controls reuse earlier work. A Deriver is not safe for concurrent use.
type Deriver struct {
	records  []model.Record
	pageSize int

	filterKey   string
	filtered    []model.Record
	hasFiltered bool

	sortKey   sortMemoKey
	sorted    []model.Record
	hasSorted bool
}

type sortMemoKey struct {
	query string
	sort  model.Sort
}

// NewDeriver creates a Deriver over records with the given page size.
func NewDeriver(records []model.Record, pageSize int) *Deriver {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Deriver{records: records, pageSize: pageSize}
}

// PageSize returns the configured page size.
func (d *Deriver) PageSize() int {
	return d.pageSize
}

// Len returns the size of the unfiltered record set.
func (d *Deriver) Len() int {
	return len(d.records)
}

// Filtered returns the filter stage output for query.
func (d *Deriver) Filtered(query string) []model.Record {
	q := NormalizeQuery(query)
	if d.hasFiltered && d.filterKey == q {
		return d.filtered
	}
	d.filtered = Filter(d.records, q)
	d.filterKey = q
	d.hasFiltered = true
	return d.filtered
}

// Sorted returns the sort stage output for query and sort.
func (d *Deriver) Sorted(query string, s model.Sort) []model.Record {
	key := sortMemoKey{query: NormalizeQuery(query), sort: s}
	if s.IsNone() {
		key.sort = model.Sort{}
	}
	if d.hasSorted && d.sortKey == key {
		return d.sorted
	}
	d.sorted = SortRecords(d.Filtered(query), s)
	d.sortKey = key
	d.hasSorted = true
	return d.sorted
}

// Derive runs filter, sort and paginate for c.
func (d *Deriver) Derive(c Controls) Page[model.Record] {
	return Paginate(d.Sorted(c.Query, c.Sort), c.Page, d.pageSize)
}

// Derive is the unmemoized form of Deriver.Derive.
func Derive(records []model.Record, c Controls, pageSize int) Page[model.Record] {
	return Paginate(SortRecords(Filter(records, c.Query), c.Sort), c.Page, pageSize)
}

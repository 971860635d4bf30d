package pipeline

// DefaultPageSize is used when no positive page size is configured.
const DefaultPageSize = 20

// MaxPageButtons is the number of page numbers shown around the current page.
const MaxPageButtons = 5

// Page is one window of an ordered result set.
type Page[T any] struct {
	Items      []T
	Number     int // 1-based, always within [1, max(1, TotalPages)]
	Size       int
	TotalPages int
	TotalItems int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

// Offset is the zero-based index of the first item on the page.
func (p Page[T]) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns ceil(count/size). An empty set has zero pages.
func TotalPages(count, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// ClampPage forces page into [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if upper := max(1, totalPages); page > upper {
		return upper
	}
	return page
}

// Paginate slices items into the requested page. Out-of-range page numbers
// are clamped rather than rejected.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := TotalPages(len(items), size)
	p := Page[T]{
		Number:     ClampPage(page, total),
		Size:       size,
		TotalPages: total,
		TotalItems: len(items),
	}

	start := min(p.Offset(), len(items))
	end := min(start+size, len(items))
	p.Items = items[start:end:end]
	return p
}

// PageWindow returns the page numbers to display for the pagination
// control: every page when there are few, otherwise maxButtons pages
// centered on current and pinned to either end.
func PageWindow(current, total, maxButtons int) []int {
	if total <= 1 {
		return nil
	}
	if maxButtons <= 0 {
		maxButtons = MaxPageButtons
	}

	var start, end int
	half := maxButtons / 2
	switch {
	case total <= maxButtons:
		start, end = 1, total
	case current <= half+1:
		start, end = 1, maxButtons
	case current+half >= total:
		start, end = total-maxButtons+1, total
	default:
		start = current - half
		end = start + maxButtons - 1
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Package pagination normalizes page parameters and computes page metadata
// for list endpoints. Page indices are zero-based.
package pagination

// DefaultSize is used when the caller supplies a non-positive size.
const DefaultSize = 10

// Request is a normalized window over an ordered result set.
type Request struct {
	Page int
	Size int
}

// NewRequest clamps invalid inputs instead of rejecting them: a negative page
// becomes 0 and a non-positive size becomes DefaultSize.
func NewRequest(page, size int) Request {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultSize
	}
	return Request{Page: page, Size: size}
}

// Offset returns the number of records to skip for this page.
func (r Request) Offset() int {
	return r.Page * r.Size
}

// TotalPages returns ceil(totalItems / size), with a floor of one page so an
// empty result set still reports a single page.
func TotalPages(totalItems int64, size int) int {
	if size <= 0 {
		size = DefaultSize
	}
	pages := int((totalItems + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	return pages
}

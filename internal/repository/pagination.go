package repository

// Pagination describes a page window over an already-ordered query.  The
// window is applied with LIMIT/OFFSET, so the query it is applied to must
// carry a total order (callers sort and break ties by id); otherwise rows
// can be skipped or duplicated across pages.
type Pagination struct {
	Page           int // 1-based page number
	RecordsPerPage int // requested page size, clamped to maxRecordsPerPage
}

const (
	defaultRecordsPerPage = 10
	maxRecordsPerPage     = 50
)

// Normalized returns a copy with out-of-range values clamped: page numbers
// below 1 become 1, non-positive sizes fall back to the default, and sizes
// above the maximum silently clamp to 50.
func (p Pagination) Normalized() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.RecordsPerPage < 1 {
		p.RecordsPerPage = defaultRecordsPerPage
	}
	if p.RecordsPerPage > maxRecordsPerPage {
		p.RecordsPerPage = maxRecordsPerPage
	}
	return p
}

// Limit returns the LIMIT value for the normalized window.
func (p Pagination) Limit() int {
	return p.Normalized().RecordsPerPage
}

// Offset returns the OFFSET value for the normalized window.  Pages beyond
// the available range simply produce an empty result set.
func (p Pagination) Offset() int {
	n := p.Normalized()
	return (n.Page - 1) * n.RecordsPerPage
}

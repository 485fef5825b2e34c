package catalog

// DefaultPageSize is the number of records revealed per page.
const DefaultPageSize = 12

// Paginator tracks how much of a result set is revealed.
type Paginator struct {
	page int
	size int
}

// NewPaginator returns a paginator on page 1. A non-positive size falls
// back to DefaultPageSize.
func NewPaginator(size int) *Paginator {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Paginator{page: 1, size: size}
}

// Reset returns to page 1.
func (p *Paginator) Reset() {
	p.page = 1
}

// Advance moves to the next page. Callers check HasMore first.
func (p *Paginator) Advance() {
	p.page++
}

// Page returns the current page, starting at 1.
func (p *Paginator) Page() int {
	return p.page
}

// Size returns the page size.
func (p *Paginator) Size() int {
	return p.size
}

// VisibleCount is page*size clamped to total.
func (p *Paginator) VisibleCount(total int) int {
	n := p.page * p.size
	if n > total {
		return total
	}
	return n
}

// VisibleSlice returns the revealed prefix of results.
func (p *Paginator) VisibleSlice(results []Record) []Record {
	return results[:p.VisibleCount(len(results))]
}

// HasMore reports whether some of total is still hidden.
func (p *Paginator) HasMore(total int) bool {
	return total > p.VisibleCount(total)
}

// RevealIndex advances until index is inside the visible prefix.
// It reports whether the page changed. Out-of-range indexes are ignored.
func (p *Paginator) RevealIndex(index, total int) bool {
	if index < 0 || index >= total {
		return false
	}
	moved := false
	for index >= p.VisibleCount(total) {
		p.page++
		moved = true
	}
	return moved
}

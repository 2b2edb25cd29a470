// Package paginate slices a listing set into pages and computes the
// windowed page-index display.
package paginate

// Ellipsis marks a collapsed run of pages in a Window.
const Ellipsis = -1

// ValidPageSizes are the selectable sizes; 0 means "show everything".
var ValidPageSizes = []int{10, 20, 50, 0}

// ValidSize reports whether n is one of the selectable page sizes.
func ValidSize(n int) bool {
	for _, s := range ValidPageSizes {
		if n == s {
			return true
		}
	}
	return false
}

type Pager struct {
	pageSize int
	page     int
	total    int
}

func New(pageSize int) *Pager {
	return &Pager{pageSize: pageSize, page: 1}
}

// SetTotal records the item count and clamps the current page back into
// range, e.g. after a filter shrank the data set.
func (p *Pager) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
	p.SetPage(p.page)
}

// SetPageSize switches the page size and re-clamps.
func (p *Pager) SetPageSize(n int) {
	p.pageSize = n
	p.SetPage(p.page)
}

func (p *Pager) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if max := p.TotalPages(); n > max {
		n = max
	}
	p.page = n
}

func (p *Pager) Page() int     { return p.page }
func (p *Pager) PageSize() int { return p.pageSize }
func (p *Pager) Total() int    { return p.total }

// TotalPages is ceil(total/pageSize), never below 1 so an empty set still
// has a page to stand on.
func (p *Pager) TotalPages() int {
	if p.pageSize <= 0 || p.total <= p.pageSize {
		return 1
	}
	n := p.total / p.pageSize
	if p.total%p.pageSize != 0 {
		n++
	}
	return n
}

func (p *Pager) Next() { p.SetPage(p.page + 1) }
func (p *Pager) Prev() { p.SetPage(p.page - 1) }

func (p *Pager) AtFirst() bool { return p.page <= 1 }
func (p *Pager) AtLast() bool  { return p.page >= p.TotalPages() }

// Bounds returns the half-open index range [lo, hi) of the current page.
func (p *Pager) Bounds() (lo, hi int) {
	if p.pageSize <= 0 {
		return 0, p.total
	}
	lo = (p.page - 1) * p.pageSize
	hi = lo + p.pageSize
	if lo > p.total {
		lo = p.total
	}
	if hi > p.total {
		hi = p.total
	}
	return lo, hi
}

// Window lists the page numbers worth rendering: page 1, the last page,
// and every page within distance 1 of the current one. Any gap wider than
// one page collapses into a single Ellipsis entry.
func (p *Pager) Window() []int {
	last := p.TotalPages()

	include := func(n int) bool {
		if n == 1 || n == last {
			return true
		}
		d := n - p.page
		return d >= -1 && d <= 1
	}

	var out []int
	prev := 0
	for n := 1; n <= last; n++ {
		if !include(n) {
			continue
		}
		if prev != 0 && n-prev > 1 {
			out = append(out, Ellipsis)
		}
		out = append(out, n)
		prev = n
	}
	return out
}

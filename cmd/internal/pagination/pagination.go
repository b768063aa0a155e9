// Package pagination splits filtered collections into fixed-size pages.
package pagination

// PageSize is the number of rows shown per table page
const PageSize = 10

// TotalPages returns ceil(count/pageSize), never less than 1
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 1
	}
	total := count / pageSize
	if count%pageSize != 0 {
		total++
	}
	return total
}

// Slice returns the rows of the given 1-based page. Pages outside the
// collection yield an empty slice.
func Slice[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize <= 0 || page > TotalPages(len(items), pageSize) {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}

// Pager tracks the current page of one table. Current always lies in
// [1, Total].
type Pager struct {
	Current  int `json:"current"`
	Total    int `json:"total"`
	PageSize int `json:"page_size"`
}

func NewPager(count, pageSize int) Pager {
	return Pager{
		Current:  1,
		Total:    TotalPages(count, pageSize),
		PageSize: pageSize,
	}
}

// Reset recomputes Total for a new filtered count and returns to page 1
func (p *Pager) Reset(count int) {
	p.Total = TotalPages(count, p.PageSize)
	p.Current = 1
}

// Resize recomputes Total for count, keeping the current page if it is
// still in range
func (p *Pager) Resize(count int) {
	p.Total = TotalPages(count, p.PageSize)
	p.clamp()
}

// Jump moves to page n, clamped into range
func (p *Pager) Jump(n int) {
	p.Current = n
	p.clamp()
}

// Next advances one page; no-op on the last page
func (p *Pager) Next() {
	p.Jump(p.Current + 1)
}

// Previous goes back one page; no-op on the first page
func (p *Pager) Previous() {
	p.Jump(p.Current - 1)
}

func (p Pager) HasNext() bool {
	return p.Current < p.Total
}

func (p Pager) HasPrevious() bool {
	return p.Current > 1
}

func (p *Pager) clamp() {
	if p.Total < 1 {
		p.Total = 1
	}
	if p.Current > p.Total {
		p.Current = p.Total
	}
	if p.Current < 1 {
		p.Current = 1
	}
}

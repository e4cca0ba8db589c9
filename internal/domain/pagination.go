package domain

// Pagination page number (starting from 0) and page size
type Pagination struct {
	Page int
	Size int
}

// Normalize fills defaults and clamps the page size
func (p Pagination) Normalize() Pagination {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Limit returns the SQL LIMIT for the page
func (p Pagination) Limit() uint64 {
	return uint64(p.Normalize().Size)
}

// Offset returns the SQL OFFSET for the page
func (p Pagination) Offset() uint64 {
	n := p.Normalize()
	return uint64(n.Page * n.Size)
}

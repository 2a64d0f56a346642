package pagination

import "gorm.io/gorm"

// MaxLimit caps a single page so a caller cannot request an unbounded result set.
const MaxLimit = 250

const defaultLimit = 10

// Pagination is a 1-based page/limit pair.
type Pagination struct {
	Page  int `form:"page,default=1" validate:"gte=1"`
	Limit int `form:"limit,default=10" validate:"gte=1,lte=250"`
}

// Normalize clamps page and limit into their valid ranges.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Apply adds offset/limit to a gorm statement.
func (p Pagination) Apply(stmt *gorm.DB) *gorm.DB {
	return stmt.Offset(p.Offset()).Limit(p.Limit)
}

// Slice pages an in-memory result set, clamping out-of-range pages to empty.
func Slice[T any](rows []T, p Pagination) []T {
	start := p.Offset()
	if start >= len(rows) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

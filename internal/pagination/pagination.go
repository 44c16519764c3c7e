// Package pagination parses list parameters and applies them as GORM scopes.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Sort orders accepted by list endpoints.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortValueDesc = "value_desc"
	SortValueAsc  = "value_asc"
)

// orderClauses maps each sort key to its ORDER BY. The id tiebreak keeps
// pages stable when rows share a timestamp or value.
var orderClauses = map[string]string{
	SortNewest:    "created_at DESC, id DESC",
	SortOldest:    "created_at ASC, id ASC",
	SortValueDesc: "total_value DESC, id DESC",
	SortValueAsc:  "total_value ASC, id ASC",
}

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Sort     string `form:"sort" binding:"omitempty,oneof=newest oldest value_desc value_asc"`
}

// Defaults fills in default values when page, page_size or sort are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if _, ok := orderClauses[p.Sort]; !ok {
		p.Sort = SortNewest
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Paginate returns a GORM scope that applies ORDER BY, OFFSET and LIMIT for
// the given page request. Unknown sort keys fall back to newest first.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	order, ok := orderClauses[req.Sort]
	if !ok {
		order = orderClauses[SortNewest]
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(order).Offset(req.Offset()).Limit(req.PageSize)
	}
}

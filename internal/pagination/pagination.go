package pagination

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DefaultPerPage is the page size used for booking listings.
const DefaultPerPage = 10

// Params holds page-number pagination parameters extracted from a request.
type Params struct {
	Page    int
	PerPage int
}

// FromContext reads ?page=N. A missing or non-numeric value means page 1;
// numeric values are kept as given so callers can reject page < 1.
func FromContext(c *gin.Context, perPage int) Params {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}
	return Params{Page: page, PerPage: perPage}
}

// Offset returns the row offset of the first item on the page.
func (p Params) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Reachable reports whether the page exists in principle: it is at least 1
// and its last row index still fits in an int.
func (p Params) Reachable() bool {
	if p.Page < 1 || p.PerPage < 1 {
		return false
	}
	return p.Page-1 <= (math.MaxInt-p.PerPage)/p.PerPage
}

// Page is one page of results plus navigation metadata.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasPrev bool  `json:"has_prev"`
	HasNext bool  `json:"has_next"`
	PrevNum *int  `json:"prev_num"`
	NextNum *int  `json:"next_num"`
}

// NewPage builds the navigation metadata for items found at p out of total rows.
func NewPage[T any](items []T, p Params, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if p.PerPage > 0 {
		pages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}

	out := &Page[T]{
		Items:   items,
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   total,
		Pages:   pages,
		HasPrev: p.Page > 1,
		HasNext: p.Page < pages,
	}
	if out.HasPrev {
		prev := p.Page - 1
		out.PrevNum = &prev
	}
	if out.HasNext {
		next := p.Page + 1
		out.NextNum = &next
	}
	return out
}

// OutOfRange reports whether a page request should be answered with not found:
// unreachable pages, or any page past the first that holds no items.
func (p Params) OutOfRange(itemsOnPage int) bool {
	return !p.Reachable() || (p.Page > 1 && itemsOnPage == 0)
}

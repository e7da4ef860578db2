package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	// DefaultPerPage is used when a request does not specify a page size.
	DefaultPerPage = 20
	// DefaultMaxPerPage caps the page size unless overridden per Params.
	DefaultMaxPerPage = 100
)

// Params describes the requested slice of a collection. Zero values are
// normalized to sane defaults, so Params{} is ready to use.
type Params struct {
	Page       int
	PerPage    int
	MaxPerPage int
}

// normalize clamps page and per-page into valid ranges.
func (p Params) normalize() Params {
	if p.MaxPerPage <= 0 {
		p.MaxPerPage = DefaultMaxPerPage
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > p.MaxPerPage {
		p.PerPage = p.MaxPerPage
	}
	return p
}

// Offset returns the number of items to skip for the requested page.
func (p Params) Offset() int {
	p = p.normalize()
	return (p.Page - 1) * p.PerPage
}

// Limit returns the page size.
func (p Params) Limit() int {
	return p.normalize().PerPage
}

// FromRequest reads "page" and "per_page" query parameters, falling back to
// defaults for missing or malformed values.
func FromRequest(r *http.Request) Params {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	return Params{Page: page, PerPage: perPage}.normalize()
}

// Page is one page of items plus the figures clients need to navigate.
type Page[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// New builds a Page from items already sliced for the requested page and the
// total collection size.
func New[T any](items []T, total int, params Params) Page[T] {
	params = params.normalize()

	pages := 1
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(params.PerPage)))
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:   items,
		Total:   total,
		Page:    params.Page,
		PerPage: params.PerPage,
		Pages:   pages,
		HasNext: params.Page < pages,
		HasPrev: params.Page > 1,
	}
}

// Meta returns the navigation figures as response metadata, for embedding in
// a response envelope next to the items.
func (p Page[T]) Meta() map[string]any {
	return map[string]any{
		"total":    p.Total,
		"page":     p.Page,
		"per_page": p.PerPage,
		"pages":    p.Pages,
		"has_next": p.HasNext,
		"has_prev": p.HasPrev,
	}
}

// Slice paginates an in-memory slice.
func Slice[T any](items []T, params Params) Page[T] {
	params = params.normalize()

	total := len(items)
	start := min(params.Offset(), total)
	end := min(start+params.Limit(), total)

	return New(items[start:end], total, params)
}

// internal/app/system/paging/paging.go
package paging

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the number of entries on a listing page.
const PageSize = 12

// MaxPage is the highest page ParsePage returns. Larger requests are clamped
// so the skip count stays well inside int64.
const MaxPage = 1_000_000

// LimitPlusOne returns PageSize+1 as int64 for look-ahead pagination
// (fetch one extra document to detect HasNext).
func LimitPlusOne() int64 { return int64(PageSize + 1) }

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid, and MaxPage for anything above it.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		return MaxPage
	}
	if err != nil || n < 1 {
		return 1
	}
	return clamp(n)
}

// Skip returns the number of documents before page.
func Skip(page int) int64 {
	return int64(clamp(page)-1) * PageSize
}

func clamp(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	}
	return page
}

// Result describes where a page sits in the listing.
type Result struct {
	Page     int  `json:"page"`
	HasPrev  bool `json:"has_prev"`
	HasNext  bool `json:"has_next"`
	PrevPage int  `json:"prev_page,omitempty"`
	NextPage int  `json:"next_page,omitempty"`
}

// TrimPage trims rows fetched with LimitPlusOne down to PageSize and
// reports the neighbouring pages.
func TrimPage[T any](rows *[]T, page int) Result {
	page = clamp(page)
	res := Result{Page: page}
	if len(*rows) > PageSize {
		*rows = (*rows)[:PageSize]
		res.HasNext = true
		res.NextPage = page + 1
	}
	if page > 1 {
		res.HasPrev = true
		res.PrevPage = page - 1
	}
	return res
}

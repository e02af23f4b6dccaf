// Package pagination slices in-memory collections the way a SQL LIMIT/OFFSET
// would, returning accurate totals for pages past the end of the data.
package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

// DefaultPageSize applies when the query string carries no usable pageSize.
const DefaultPageSize = 5

// Params holds normalised pagination input.
type Params struct {
	Page     int
	PageSize int
}

// Page is one slice of an ordered collection.
type Page[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// ParseParams reads page/pageSize from the query string. Missing or unparsable
// values fall back to page 1 and defaultSize; an explicit pageSize <= 0 is
// rejected rather than silently corrected.
func ParseParams(c *gin.Context, defaultSize int) (Params, error) {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}

	page := 1
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			page = parsed
		}
	}

	pageSize := defaultSize
	if raw := strings.TrimSpace(c.Query("pageSize")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			if parsed <= 0 {
				return Params{}, appErrors.ErrInvalidPageSize
			}
			pageSize = parsed
		}
	}

	return Params{Page: page, PageSize: pageSize}, nil
}

// Paginate returns the requested slice of items. A page beyond the end of the
// collection yields empty items with an accurate total.
func Paginate[T any](items []T, p Params) (Page[T], error) {
	if p.PageSize <= 0 {
		return Page[T]{}, appErrors.ErrInvalidPageSize
	}
	page := p.Page
	if page < 1 {
		page = 1
	}

	total := len(items)

	// Bound-check before multiplying: (page-1)*pageSize overflows for huge
	// page values and a negative product would slip past a plain clamp.
	start := total
	if page <= (total-1)/p.PageSize+1 {
		start = (page - 1) * p.PageSize
		if start > total {
			start = total
		}
	}
	end := total
	if remaining := total - start; remaining > p.PageSize {
		end = start + p.PageSize
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{Items: out, Page: page, PageSize: p.PageSize, Total: total}, nil
}

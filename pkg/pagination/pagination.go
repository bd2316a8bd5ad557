// Package pagination parses page/limit query parameters.
package pagination

import (
	"net/http"
	"strconv"

	"hospital-booking-api/pkg/response"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 100
)

type Params struct {
	Page  int
	Limit int
}

// FromRequest reads ?page=&limit=, falling back to defaults for missing or
// invalid values and capping limit at MaxLimit.
func FromRequest(r *http.Request) Params {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return New(page, limit)
}

func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Params) Meta(total int64) *response.Meta {
	totalPages := int(total) / p.Limit
	if int(total)%p.Limit != 0 {
		totalPages++
	}
	return &response.Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

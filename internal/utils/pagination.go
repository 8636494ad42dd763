package utils

import (
	"net/url"
	"strconv"
)

type PaginationDefaults struct {
	Page        int
	PageSize    int
	MaxPageSize int
}

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Offset   int `json:"-"`
}

// ParsePagination clamps the page and pageSize query parameters into
// bounded integers. Invalid or sub-1 page falls back to the default;
// pageSize falls back on parse failure, then is clamped to
// [1, MaxPageSize].
func ParsePagination(query url.Values, defaults PaginationDefaults) Pagination {
	page := defaults.Page
	if raw := query.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			page = n
		}
	}

	pageSize := defaults.PageSize
	if raw := query.Get("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			pageSize = n
		}
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > defaults.MaxPageSize {
		pageSize = defaults.MaxPageSize
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

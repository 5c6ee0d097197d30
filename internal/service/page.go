package service

import (
	"math"
	"strings"

	"cmsapi/internal/repository"
)

const maxPageSize = 100

// PageRequest is a 0-based page request. Zero values select the defaults of each listing.
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// Page is the pagination envelope returned by list use cases.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// listing holds the defaults a use case applies to a PageRequest.
type listing struct {
	size   int
	sortBy string
}

// normalize clamps the request and resolves defaults. Sort direction defaults to descending.
func (l listing) normalize(pr PageRequest) (PageRequest, error) {
	if pr.Page < 0 {
		pr.Page = 0
	}
	switch {
	case pr.Size <= 0:
		pr.Size = l.size
	case pr.Size > maxPageSize:
		pr.Size = maxPageSize
	}
	if pr.Page > math.MaxInt/pr.Size {
		return pr, errorf(ErrInvalidRequest, "page %d is out of range", pr.Page)
	}
	if pr.SortBy == "" {
		pr.SortBy = l.sortBy
	}
	switch strings.ToLower(pr.SortDir) {
	case "", "desc":
		pr.SortDir = "desc"
	case "asc":
		pr.SortDir = "asc"
	default:
		return pr, errorf(ErrInvalidRequest, "invalid sort direction %q", pr.SortDir)
	}
	return pr, nil
}

func (pr PageRequest) query() repository.PageQuery {
	return repository.PageQuery{
		Limit:  pr.Size,
		Offset: pr.Page * pr.Size,
		SortBy: pr.SortBy,
		Desc:   pr.SortDir == "desc",
	}
}

func newPage[T, U any](res *repository.PageResult[T], pr PageRequest, conv func(*T) U) *Page[U] {
	content := make([]U, 0, len(res.Items))
	for i := range res.Items {
		content = append(content, conv(&res.Items[i]))
	}
	totalPages := int((res.Total + int64(pr.Size) - 1) / int64(pr.Size))
	return &Page[U]{
		Content:       content,
		Page:          pr.Page,
		Size:          pr.Size,
		TotalElements: res.Total,
		TotalPages:    totalPages,
		Last:          pr.Page+1 >= totalPages,
	}
}

func identity[T any](v *T) T { return *v }

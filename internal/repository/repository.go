package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) inside this directory.

import (
	"errors"

	"cmsapi/internal/model"
)

var (
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
	// ErrReference is returned when a write points at a row that no longer exists.
	ErrReference = errors.New("referenced record not found")
	// ErrInvalidSort is returned when PageQuery.SortBy names an unknown field.
	ErrInvalidSort = errors.New("invalid sort field")
)

// PageQuery holds limit/offset pagination and ordering parameters.
// SortBy is a public field name (e.g. "createdAt"); implementations map it to a column.
// An empty SortBy selects the repository default.
type PageQuery struct {
	Limit  int
	Offset int
	SortBy string
	Desc   bool
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int64
}

// MediaFilter narrows a media listing. Nil fields do not filter.
type MediaFilter struct {
	MediaType    *model.MediaType
	UploadedByID *int64
}

// PostFilter narrows a post listing. Zero fields do not filter.
type PostFilter struct {
	Status   *model.PostStatus
	AuthorID *int64
	TagID    *int64
	Featured bool
	// Search matches title or excerpt case-insensitively.
	Search string
}

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsapi/internal/model"
)

func fieldsOf(t *testing.T, err error) []FieldError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Fields
}

func TestCheckStruct_CreateTag(t *testing.T) {
	assert.NoError(t, checkStruct(&CreateTagRequest{Name: "Go", Slug: "go"}))

	err := checkStruct(&CreateTagRequest{Name: "  ", Slug: "Bad Slug"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "name: is required, slug: must be lowercase alphanumeric with hyphens")
}

func TestCheckStruct_CreatePost(t *testing.T) {
	long := make([]byte, 61)
	for i := range long {
		long[i] = 'a'
	}
	metaTitle := string(long)
	zero := 0

	err := checkStruct(&CreatePostRequest{
		Title:              "Hi",
		Slug:               "hello-world",
		MDXContent:         "body",
		TagIDs:             []int64{1, -2},
		Status:             "LIVE",
		MetaTitle:          &metaTitle,
		ReadingTimeMinutes: &zero,
	})

	assert.Equal(t, []FieldError{
		{Field: "title", Message: "must be at least 3 characters"},
		{Field: "tagIds[1]", Message: "must be positive"},
		{Field: "status", Message: "must be one of DRAFT PUBLISHED SCHEDULED ARCHIVED"},
		{Field: "metaTitle", Message: "must not exceed 60 characters"},
		{Field: "readingTimeMinutes", Message: "must be positive"},
	}, fieldsOf(t, err))
}

func TestCheckStruct_OptionalFields(t *testing.T) {
	// Absent and null values are not validated by tags.
	assert.NoError(t, checkStruct(&UpdatePostRequest{}))
	assert.NoError(t, checkStruct(&UpdatePostRequest{Excerpt: model.Null[string]()}))

	err := checkStruct(&UpdatePostRequest{
		Title:           model.Some(""),
		Slug:            model.Some("Not A Slug"),
		FeaturedMediaID: model.Some[int64](0),
		Status:          model.Some(model.PostStatus("LIVE")),
	})
	assert.Equal(t, []FieldError{
		{Field: "title", Message: "is required"},
		{Field: "slug", Message: "must be lowercase alphanumeric with hyphens"},
		{Field: "featuredMediaId", Message: "must be positive"},
		{Field: "status", Message: "must be one of DRAFT PUBLISHED SCHEDULED ARCHIVED"},
	}, fieldsOf(t, err))
}

func TestCheckStruct_NullChecks(t *testing.T) {
	req := UpdateTagRequest{Name: model.Null[string](), Slug: model.Some("ok-slug")}
	err := checkStruct(&req, nullErrors(
		nullCheck{"name", req.Name.IsNull()},
		nullCheck{"slug", req.Slug.IsNull()},
	)...)

	assert.EqualError(t, err, "name: must not be null")
}

func TestCheckStruct_CreateUser(t *testing.T) {
	err := checkStruct(&CreateUserRequest{
		Email:     "not-an-email",
		Password:  "short",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ad",
		Role:      "OWNER",
	})

	assert.Equal(t, []FieldError{
		{Field: "email", Message: "must be a valid email"},
		{Field: "password", Message: "must be at least 8 characters"},
		{Field: "username", Message: "must be at least 3 characters"},
		{Field: "role", Message: "must be one of ADMIN EDITOR AUTHOR"},
	}, fieldsOf(t, err))
}

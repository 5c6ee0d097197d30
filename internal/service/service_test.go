package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"cmsapi/internal/repository"
)

// fakeTx runs fn inline and records the mode of every transaction.
type fakeTx struct {
	readOnly  []bool
	commitErr error
}

func (f *fakeTx) InTx(ctx context.Context, readOnly bool, fn func(ctx context.Context) error) error {
	f.readOnly = append(f.readOnly, readOnly)
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

func TestRepoError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{
			name:    "no rows",
			err:     sql.ErrNoRows,
			wantIs:  ErrNotFound,
			wantMsg: "tag with id 4 not found",
		},
		{
			name:    "duplicate",
			err:     fmt.Errorf("%w: tags_slug_key", repository.ErrDuplicate),
			wantIs:  ErrDuplicate,
			wantMsg: "tag with id 4 already exists",
		},
		{
			name:    "dangling reference",
			err:     fmt.Errorf("%w: blog_posts_author_id_fkey", repository.ErrReference),
			wantIs:  ErrNotFound,
			wantMsg: "tag with id 4 references a record that does not exist",
		},
		{
			name:    "unknown sort",
			err:     fmt.Errorf("%w: %q", repository.ErrInvalidSort, "nope"),
			wantIs:  ErrInvalidRequest,
			wantMsg: `invalid request: invalid sort field: "nope"`,
		},
		{
			name:    "other errors pass through",
			err:     errors.New("conn reset"),
			wantMsg: "conn reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repoError(tt.err, "tag with id %d", 4)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := error(&ValidationError{Fields: []FieldError{
		{Field: "title", Message: "is required"},
		{Field: "slug", Message: "must be lowercase alphanumeric with hyphens"},
	}})

	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "title: is required, slug: must be lowercase alphanumeric with hyphens")
}

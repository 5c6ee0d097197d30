package repository

import (
	"context"

	"cmsapi/internal/model"
)

// UserRepository defines data access for users.
// Lookups return sql.ErrNoRows when no row matches.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// List returns all users ordered by id, or only active ones when activeOnly is set.
	List(ctx context.Context, activeOnly bool) ([]model.User, error)
	// Update writes the mutable profile fields of u and returns the stored row.
	Update(ctx context.Context, u *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

package repository

import (
	"context"

	"cmsapi/internal/model"
)

// TagRepository defines data access for tags. Returned tags carry PostCount.
type TagRepository interface {
	Create(ctx context.Context, t *model.Tag) (*model.Tag, error)
	FindByID(ctx context.Context, id int64) (*model.Tag, error)
	FindBySlug(ctx context.Context, slug string) (*model.Tag, error)
	// FindByIDs returns the tags that exist among ids; missing ids are simply absent.
	FindByIDs(ctx context.Context, ids []int64) ([]model.Tag, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]model.Tag, error)
	Update(ctx context.Context, t *model.Tag) (*model.Tag, error)
	Delete(ctx context.Context, id int64) error
}

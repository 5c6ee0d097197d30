package repository

import (
	"context"

	"cmsapi/internal/model"
)

// MediaRepository defines data access for media records. It never touches the object store.
type MediaRepository interface {
	// Create inserts a media row and returns it with the uploader summary loaded.
	Create(ctx context.Context, m *model.Media) (*model.Media, error)
	FindByID(ctx context.Context, id int64) (*model.Media, error)
	List(ctx context.Context, f MediaFilter, pq PageQuery) (*PageResult[model.Media], error)
	// UpdateMetadata stores alt text and caption, the only mutable media fields.
	UpdateMetadata(ctx context.Context, id int64, altText, caption *string) (*model.Media, error)
	Delete(ctx context.Context, id int64) error
}

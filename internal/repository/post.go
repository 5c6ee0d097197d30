package repository

import (
	"context"

	"cmsapi/internal/model"
)

// PostRepository defines data access for blog posts and their tag links.
// Read methods load Author, FeaturedMedia and Tags.
type PostRepository interface {
	// Create inserts the post row and returns its id.
	Create(ctx context.Context, p *model.Post) (int64, error)
	// Update writes every mutable column of p.
	Update(ctx context.Context, p *model.Post) error
	// SetTags replaces the tag set of a post.
	SetTags(ctx context.Context, postID int64, tagIDs []int64) error
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	FindBySlug(ctx context.Context, slug string) (*model.Post, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, f PostFilter, pq PageQuery) (*PageResult[model.Post], error)
	// IncrementViewCount adds one to view_count atomically; sql.ErrNoRows if the post is missing.
	IncrementViewCount(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

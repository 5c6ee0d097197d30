package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"cmsapi/internal/database"
	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

const wordsPerMinute = 200

var (
	recentPosts    = listing{size: 10, sortBy: "createdAt"}
	publishedPosts = listing{size: 10, sortBy: "publishedAt"}
)

type CreatePostRequest struct {
	Title              string           `json:"title" validate:"notblank,min=3,max=255"`
	Slug               string           `json:"slug" validate:"notblank,min=3,max=255,slug"`
	Excerpt            *string          `json:"excerpt" validate:"omitempty,max=500"`
	MDXContent         string           `json:"mdxContent" validate:"notblank"`
	FeaturedImageURL   *string          `json:"featuredImageUrl"`
	FeaturedMediaID    *int64           `json:"featuredMediaId" validate:"omitempty,gt=0"`
	TagIDs             []int64          `json:"tagIds" validate:"omitempty,dive,gt=0"`
	Status             model.PostStatus `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED SCHEDULED ARCHIVED"`
	MetaTitle          *string          `json:"metaTitle" validate:"omitempty,max=60"`
	MetaDescription    *string          `json:"metaDescription" validate:"omitempty,max=160"`
	MetaKeywords       *string          `json:"metaKeywords"`
	ScheduledAt        *time.Time       `json:"scheduledAt"`
	ReadingTimeMinutes *int             `json:"readingTimeMinutes" validate:"omitempty,gt=0"`
	// AllowComments defaults to true when omitted.
	AllowComments *bool `json:"allowComments"`
	Featured      bool  `json:"featured"`
}

// UpdatePostRequest is a merge-patch of a post. TagIDs, when present, replaces the tag set.
type UpdatePostRequest struct {
	Title              model.Optional[string]           `json:"title" validate:"omitempty,notblank,min=3,max=255"`
	Slug               model.Optional[string]           `json:"slug" validate:"omitempty,min=3,max=255,slug"`
	Excerpt            model.Optional[string]           `json:"excerpt" validate:"omitempty,max=500"`
	MDXContent         model.Optional[string]           `json:"mdxContent" validate:"omitempty,notblank"`
	FeaturedImageURL   model.Optional[string]           `json:"featuredImageUrl"`
	FeaturedMediaID    model.Optional[int64]            `json:"featuredMediaId" validate:"omitempty,gt=0"`
	TagIDs             model.Optional[[]int64]          `json:"tagIds" validate:"omitempty,dive,gt=0"`
	Status             model.Optional[model.PostStatus] `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED SCHEDULED ARCHIVED"`
	MetaTitle          model.Optional[string]           `json:"metaTitle" validate:"omitempty,max=60"`
	MetaDescription    model.Optional[string]           `json:"metaDescription" validate:"omitempty,max=160"`
	MetaKeywords       model.Optional[string]           `json:"metaKeywords"`
	ScheduledAt        model.Optional[time.Time]        `json:"scheduledAt"`
	ReadingTimeMinutes model.Optional[int]              `json:"readingTimeMinutes" validate:"omitempty,gt=0"`
	AllowComments      model.Optional[bool]             `json:"allowComments"`
	Featured           model.Optional[bool]             `json:"featured"`
}

// PostService manages blog posts and their tag, media and author links.
type PostService interface {
	// Create stores a new post written by authorID. Publishing on create stamps PublishedAt.
	Create(ctx context.Context, authorID int64, req CreatePostRequest) (*model.Post, error)
	Get(ctx context.Context, id int64) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	List(ctx context.Context, pr PageRequest) (*Page[model.PostSummary], error)
	ListByStatus(ctx context.Context, status model.PostStatus, pr PageRequest) (*Page[model.PostSummary], error)
	ListPublished(ctx context.Context, pr PageRequest) (*Page[model.PostSummary], error)
	ListByAuthor(ctx context.Context, authorID int64, pr PageRequest) (*Page[model.PostSummary], error)
	// ListByTag lists published posts carrying the tag.
	ListByTag(ctx context.Context, tagID int64, pr PageRequest) (*Page[model.PostSummary], error)
	// ListFeatured lists featured posts of every status.
	ListFeatured(ctx context.Context, pr PageRequest) (*Page[model.PostSummary], error)
	// Search matches published posts whose title or excerpt contains term, ignoring case.
	Search(ctx context.Context, term string, pr PageRequest) (*Page[model.PostSummary], error)
	// Update applies a merge-patch. Moving into PUBLISHED stamps PublishedAt once;
	// moving to any other status clears it.
	Update(ctx context.Context, id int64, req UpdatePostRequest) (*model.Post, error)
	IncrementViewCount(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	tx    database.Transactor
	posts repository.PostRepository
	users repository.UserRepository
	tags  repository.TagRepository
	media repository.MediaRepository
	log   *zap.Logger
	now   func() time.Time
}

// NewPostService constructs a PostService.
func NewPostService(
	tx database.Transactor,
	posts repository.PostRepository,
	users repository.UserRepository,
	tags repository.TagRepository,
	media repository.MediaRepository,
	log *zap.Logger,
) PostService {
	return &postService{
		tx:    tx,
		posts: posts,
		users: users,
		tags:  tags,
		media: media,
		log:   log,
		now:   time.Now,
	}
}

// readingTime estimates minutes at 200 words per minute, never less than one.
func readingTime(content string) int {
	return max(1, len(strings.Fields(content))/wordsPerMinute)
}

func (s *postService) Create(ctx context.Context, authorID int64, req CreatePostRequest) (*model.Post, error) {
	if err := checkStruct(&req); err != nil {
		return nil, err
	}

	p := &model.Post{
		Title:              req.Title,
		Slug:               req.Slug,
		Excerpt:            req.Excerpt,
		MDXContent:         req.MDXContent,
		FeaturedImageURL:   req.FeaturedImageURL,
		FeaturedMediaID:    req.FeaturedMediaID,
		AuthorID:           authorID,
		Status:             req.Status,
		MetaTitle:          req.MetaTitle,
		MetaDescription:    req.MetaDescription,
		MetaKeywords:       req.MetaKeywords,
		ScheduledAt:        req.ScheduledAt,
		ReadingTimeMinutes: req.ReadingTimeMinutes,
		AllowComments:      true,
		Featured:           req.Featured,
	}
	if p.Status == "" {
		p.Status = model.PostStatusDraft
	}
	if req.AllowComments != nil {
		p.AllowComments = *req.AllowComments
	}
	if p.ReadingTimeMinutes == nil {
		rt := readingTime(req.MDXContent)
		p.ReadingTimeMinutes = &rt
	}
	if p.Status == model.PostStatusPublished {
		now := s.now().UTC()
		p.PublishedAt = &now
	}
	tagIDs := uniqueIDs(req.TagIDs)

	var created *model.Post
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		if _, err := s.users.FindByID(ctx, authorID); err != nil {
			return repoError(err, "author with id %d", authorID)
		}
		if err := s.ensureSlugFree(ctx, req.Slug); err != nil {
			return err
		}
		if err := s.ensureTagsExist(ctx, tagIDs); err != nil {
			return err
		}
		if err := s.ensureMediaExists(ctx, req.FeaturedMediaID); err != nil {
			return err
		}

		id, err := s.posts.Create(ctx, p)
		if err != nil {
			return repoError(err, "blog post with slug %s", req.Slug)
		}
		if len(tagIDs) > 0 {
			if err := s.posts.SetTags(ctx, id, tagIDs); err != nil {
				return repoError(err, "tags of blog post %d", id)
			}
		}
		created, err = s.posts.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("blog post created",
		zap.Int64("post_id", created.ID),
		zap.String("slug", created.Slug),
		zap.String("status", string(created.Status)),
	)
	return created, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *postService) ensureSlugFree(ctx context.Context, slug string) error {
	exists, err := s.posts.ExistsBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if exists {
		return errorf(ErrDuplicate, "blog post with slug %s already exists", slug)
	}
	return nil
}

func (s *postService) ensureTagsExist(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.tags.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	have := make(map[int64]bool, len(found))
	for _, t := range found {
		have[t.ID] = true
	}
	for _, id := range ids {
		if !have[id] {
			return errorf(ErrNotFound, "tag with id %d not found", id)
		}
	}
	return nil
}

func (s *postService) ensureMediaExists(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	if _, err := s.media.FindByID(ctx, *id); err != nil {
		return repoError(err, "media with id %d", *id)
	}
	return nil
}

func (s *postService) Get(ctx context.Context, id int64) (*model.Post, error) {
	var p *model.Post
	err := s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		p, err = s.posts.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, repoError(err, "blog post with id %d", id)
	}
	return p, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var p *model.Post
	err := s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		p, err = s.posts.FindBySlug(ctx, slug)
		return err
	})
	if err != nil {
		return nil, repoError(err, "blog post with slug %s", slug)
	}
	return p, nil
}

func (s *postService) List(ctx context.Context, pr PageRequest) (*Page[model.PostSummary], error) {
	return s.list(ctx, repository.PostFilter{}, recentPosts, pr)
}

func (s *postService) ListByStatus(ctx context.Context, status model.PostStatus, pr PageRequest) (*Page[model.PostSummary], error) {
	if !status.Valid() {
		return nil, errorf(ErrInvalidRequest, "unknown post status %q", status)
	}
	return s.list(ctx, repository.PostFilter{Status: &status}, recentPosts, pr)
}

func (s *postService) ListPublished(ctx context.Context, pr PageRequest) (*Page[model.PostSummary], error) {
	return s.list(ctx, publishedFilter(), publishedPosts, pr)
}

func (s *postService) ListByAuthor(ctx context.Context, authorID int64, pr PageRequest) (*Page[model.PostSummary], error) {
	return s.list(ctx, repository.PostFilter{AuthorID: &authorID}, recentPosts, pr)
}

func (s *postService) ListByTag(ctx context.Context, tagID int64, pr PageRequest) (*Page[model.PostSummary], error) {
	f := publishedFilter()
	f.TagID = &tagID
	return s.list(ctx, f, publishedPosts, pr)
}

func (s *postService) ListFeatured(ctx context.Context, pr PageRequest) (*Page[model.PostSummary], error) {
	return s.list(ctx, repository.PostFilter{Featured: true}, publishedPosts, pr)
}

func (s *postService) Search(ctx context.Context, term string, pr PageRequest) (*Page[model.PostSummary], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errorf(ErrInvalidRequest, "search term is required")
	}
	f := publishedFilter()
	f.Search = term
	return s.list(ctx, f, publishedPosts, pr)
}

func publishedFilter() repository.PostFilter {
	st := model.PostStatusPublished
	return repository.PostFilter{Status: &st}
}

func (s *postService) list(ctx context.Context, f repository.PostFilter, l listing, pr PageRequest) (*Page[model.PostSummary], error) {
	pr, err := l.normalize(pr)
	if err != nil {
		return nil, err
	}
	var res *repository.PageResult[model.Post]
	err = s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		res, err = s.posts.List(ctx, f, pr.query())
		return err
	})
	if err != nil {
		return nil, repoError(err, "blog posts")
	}
	return newPage(res, pr, (*model.Post).Summary), nil
}

func (s *postService) Update(ctx context.Context, id int64, req UpdatePostRequest) (*model.Post, error) {
	if err := checkStruct(&req, nullErrors(
		nullCheck{"title", req.Title.IsNull()},
		nullCheck{"slug", req.Slug.IsNull()},
		nullCheck{"mdxContent", req.MDXContent.IsNull()},
		nullCheck{"status", req.Status.IsNull()},
		nullCheck{"allowComments", req.AllowComments.IsNull()},
		nullCheck{"featured", req.Featured.IsNull()},
	)...); err != nil {
		return nil, err
	}

	var updated *model.Post
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		p, err := s.posts.FindByID(ctx, id)
		if err != nil {
			return repoError(err, "blog post with id %d", id)
		}

		if req.Slug.HasValue() && *req.Slug.Value != p.Slug {
			if err := s.ensureSlugFree(ctx, *req.Slug.Value); err != nil {
				return err
			}
		}
		var tagIDs []int64
		if req.TagIDs.HasValue() {
			tagIDs = uniqueIDs(*req.TagIDs.Value)
			if err := s.ensureTagsExist(ctx, tagIDs); err != nil {
				return err
			}
		}
		if req.FeaturedMediaID.HasValue() {
			if err := s.ensureMediaExists(ctx, req.FeaturedMediaID.Value); err != nil {
				return err
			}
		}

		previous := p.Status
		req.Title.Apply(&p.Title)
		req.Slug.Apply(&p.Slug)
		req.Excerpt.ApplyNullable(&p.Excerpt)
		req.MDXContent.Apply(&p.MDXContent)
		req.FeaturedImageURL.ApplyNullable(&p.FeaturedImageURL)
		req.FeaturedMediaID.ApplyNullable(&p.FeaturedMediaID)
		req.Status.Apply(&p.Status)
		req.MetaTitle.ApplyNullable(&p.MetaTitle)
		req.MetaDescription.ApplyNullable(&p.MetaDescription)
		req.MetaKeywords.ApplyNullable(&p.MetaKeywords)
		req.ScheduledAt.ApplyNullable(&p.ScheduledAt)
		req.ReadingTimeMinutes.ApplyNullable(&p.ReadingTimeMinutes)
		req.AllowComments.Apply(&p.AllowComments)
		req.Featured.Apply(&p.Featured)

		if p.Status != previous {
			switch {
			case p.Status != model.PostStatusPublished:
				p.PublishedAt = nil
			case p.PublishedAt == nil:
				now := s.now().UTC()
				p.PublishedAt = &now
			}
		}

		if err := s.posts.Update(ctx, p); err != nil {
			return repoError(err, "blog post with id %d", id)
		}
		// An explicit null clears the tag set.
		if req.TagIDs.Set {
			if err := s.posts.SetTags(ctx, id, tagIDs); err != nil {
				return repoError(err, "tags of blog post %d", id)
			}
		}
		updated, err = s.posts.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("blog post updated", zap.Int64("post_id", id), zap.String("status", string(updated.Status)))
	return updated, nil
}

func (s *postService) IncrementViewCount(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		return s.posts.IncrementViewCount(ctx, id)
	})
	if err != nil {
		return repoError(err, "blog post with id %d", id)
	}
	return nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		if _, err := s.posts.FindByID(ctx, id); err != nil {
			return repoError(err, "blog post with id %d", id)
		}
		return s.posts.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("blog post deleted", zap.Int64("post_id", id))
	return nil
}

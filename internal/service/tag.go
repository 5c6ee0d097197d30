package service

import (
	"context"

	"go.uber.org/zap"

	"cmsapi/internal/database"
	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

type CreateTagRequest struct {
	Name string `json:"name" validate:"notblank,min=2,max=50"`
	Slug string `json:"slug" validate:"notblank,min=2,max=50,slug"`
}

type UpdateTagRequest struct {
	Name model.Optional[string] `json:"name" validate:"omitempty,notblank,min=2,max=50"`
	Slug model.Optional[string] `json:"slug" validate:"omitempty,min=2,max=50,slug"`
}

// TagService manages tags.
type TagService interface {
	Create(ctx context.Context, req CreateTagRequest) (*model.Tag, error)
	Get(ctx context.Context, id int64) (*model.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
	Update(ctx context.Context, id int64, req UpdateTagRequest) (*model.Tag, error)
	Delete(ctx context.Context, id int64) error
}

type tagService struct {
	tx   database.Transactor
	tags repository.TagRepository
	log  *zap.Logger
}

// NewTagService constructs a TagService.
func NewTagService(tx database.Transactor, tags repository.TagRepository, log *zap.Logger) TagService {
	return &tagService{tx: tx, tags: tags, log: log}
}

func (s *tagService) Create(ctx context.Context, req CreateTagRequest) (*model.Tag, error) {
	if err := checkStruct(&req); err != nil {
		return nil, err
	}
	var created *model.Tag
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		if err := s.ensureSlugFree(ctx, req.Slug); err != nil {
			return err
		}
		if err := s.ensureNameFree(ctx, req.Name); err != nil {
			return err
		}
		var err error
		created, err = s.tags.Create(ctx, &model.Tag{Name: req.Name, Slug: req.Slug})
		if err != nil {
			return repoError(err, "tag %q", req.Slug)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("tag created", zap.Int64("tag_id", created.ID), zap.String("slug", created.Slug))
	return created, nil
}

func (s *tagService) ensureSlugFree(ctx context.Context, slug string) error {
	exists, err := s.tags.ExistsBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if exists {
		return errorf(ErrDuplicate, "tag with slug %s already exists", slug)
	}
	return nil
}

func (s *tagService) ensureNameFree(ctx context.Context, name string) error {
	exists, err := s.tags.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return errorf(ErrDuplicate, "tag with name %s already exists", name)
	}
	return nil
}

func (s *tagService) Get(ctx context.Context, id int64) (*model.Tag, error) {
	var t *model.Tag
	err := s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		t, err = s.tags.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, repoError(err, "tag with id %d", id)
	}
	return t, nil
}

func (s *tagService) GetBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	var t *model.Tag
	err := s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		t, err = s.tags.FindBySlug(ctx, slug)
		return err
	})
	if err != nil {
		return nil, repoError(err, "tag with slug %s", slug)
	}
	return t, nil
}

func (s *tagService) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		tags, err = s.tags.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []model.Tag{}
	}
	return tags, nil
}

func (s *tagService) Update(ctx context.Context, id int64, req UpdateTagRequest) (*model.Tag, error) {
	if err := checkStruct(&req, nullErrors(
		nullCheck{"name", req.Name.IsNull()},
		nullCheck{"slug", req.Slug.IsNull()},
	)...); err != nil {
		return nil, err
	}
	var updated *model.Tag
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		t, err := s.tags.FindByID(ctx, id)
		if err != nil {
			return repoError(err, "tag with id %d", id)
		}
		if req.Slug.HasValue() && *req.Slug.Value != t.Slug {
			if err := s.ensureSlugFree(ctx, *req.Slug.Value); err != nil {
				return err
			}
		}
		if req.Name.HasValue() && *req.Name.Value != t.Name {
			if err := s.ensureNameFree(ctx, *req.Name.Value); err != nil {
				return err
			}
		}
		req.Name.Apply(&t.Name)
		req.Slug.Apply(&t.Slug)

		updated, err = s.tags.Update(ctx, t)
		if err != nil {
			return repoError(err, "tag with id %d", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("tag updated", zap.Int64("tag_id", id))
	return updated, nil
}

func (s *tagService) Delete(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		if _, err := s.tags.FindByID(ctx, id); err != nil {
			return repoError(err, "tag with id %d", id)
		}
		return s.tags.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("tag deleted", zap.Int64("tag_id", id))
	return nil
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"cmsapi/internal/database"
	"cmsapi/internal/model"
	"cmsapi/internal/repository"
	"cmsapi/internal/storage"
)

const (
	defaultContentType = "application/octet-stream"
	maxSignedURLTTL    = 7 * 24 * time.Hour
)

var mediaListing = listing{size: 20, sortBy: "uploadedAt"}

// UploadMediaInput is a file received by the upload endpoint.
type UploadMediaInput struct {
	Data             []byte
	ContentType      string
	OriginalFilename string
	UploadedByID     *int64
	AltText          *string
	Caption          *string
}

// UpdateMediaRequest patches the descriptive fields of a media record.
type UpdateMediaRequest struct {
	AltText model.Optional[string] `json:"altText"`
	Caption model.Optional[string] `json:"caption"`
}

// MediaService keeps stored objects and their media records paired.
type MediaService interface {
	// Upload writes data to object storage and records it. A missing uploader or a failed
	// storage write leaves no trace; when the record cannot be saved the object is removed.
	Upload(ctx context.Context, in UploadMediaInput) (*model.Media, error)
	Get(ctx context.Context, id int64) (*model.Media, error)
	List(ctx context.Context, pr PageRequest) (*Page[model.Media], error)
	ListByType(ctx context.Context, mt model.MediaType, pr PageRequest) (*Page[model.Media], error)
	ListByUploader(ctx context.Context, userID int64, pr PageRequest) (*Page[model.Media], error)
	UpdateMetadata(ctx context.Context, id int64, req UpdateMediaRequest) (*model.Media, error)
	// Delete removes the stored object first; the record is kept when that fails.
	Delete(ctx context.Context, id int64) error
	// SignedURL returns a time-limited download link for the media object.
	SignedURL(ctx context.Context, id int64, ttl time.Duration) (string, error)
}

type mediaService struct {
	tx     database.Transactor
	store  storage.Storage
	media  repository.MediaRepository
	users  repository.UserRepository
	log    *zap.Logger
	now    func() time.Time
	suffix func() string
}

// NewMediaService constructs a MediaService.
func NewMediaService(tx database.Transactor, store storage.Storage, media repository.MediaRepository, users repository.UserRepository, log *zap.Logger) MediaService {
	return &mediaService{
		tx:     tx,
		store:  store,
		media:  media,
		users:  users,
		log:    log,
		now:    time.Now,
		suffix: randomSuffix,
	}
}

func (s *mediaService) Upload(ctx context.Context, in UploadMediaInput) (*model.Media, error) {
	if len(in.Data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrFileUpload)
	}
	contentType := in.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	originalName := in.OriginalFilename
	if originalName == "" {
		originalName = "unknown"
	}
	key := storageKey(in.OriginalFilename, s.now(), s.suffix())

	var (
		stored  bool
		created *model.Media
	)
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		if in.UploadedByID != nil {
			if _, err := s.users.FindByID(ctx, *in.UploadedByID); err != nil {
				return repoError(err, "user with id %d", *in.UploadedByID)
			}
		}

		_, err := s.store.Put(ctx, key, bytes.NewReader(in.Data), storage.PutObjectOptions{
			Size:        int64(len(in.Data)),
			ContentType: contentType,
			Metadata: map[string]string{
				"original-filename": url.QueryEscape(originalName),
			},
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFileUpload, err)
		}
		stored = true

		width, height := imageDimensions(contentType, in.Data)
		created, err = s.media.Create(ctx, &model.Media{
			FileName:         key,
			OriginalFileName: originalName,
			FileURL:          s.store.URL(key),
			S3Key:            key,
			ContentType:      contentType,
			FileSize:         int64(len(in.Data)),
			MediaType:        classifyMediaType(contentType),
			Width:            width,
			Height:           height,
			AltText:          in.AltText,
			Caption:          in.Caption,
			UploadedByID:     in.UploadedByID,
		})
		if err != nil {
			return fmt.Errorf("save media: %w", repoError(err, "media %s", key))
		}
		return nil
	})
	if err != nil {
		if stored {
			// The request may already be cancelled; the object still has to go.
			if delErr := s.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
				s.log.Warn("orphaned media object",
					zap.String("key", key),
					zap.NamedError("cause", err),
					zap.Error(delErr),
				)
			}
		}
		return nil, err
	}

	s.log.Info("media uploaded",
		zap.Int64("media_id", created.ID),
		zap.String("key", key),
		zap.String("media_type", string(created.MediaType)),
		zap.Int64("size", created.FileSize),
	)
	return created, nil
}

func (s *mediaService) Get(ctx context.Context, id int64) (*model.Media, error) {
	var m *model.Media
	err := s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		m, err = s.find(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *mediaService) find(ctx context.Context, id int64) (*model.Media, error) {
	m, err := s.media.FindByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "media with id %d", id)
	}
	return m, nil
}

func (s *mediaService) List(ctx context.Context, pr PageRequest) (*Page[model.Media], error) {
	return s.list(ctx, repository.MediaFilter{}, pr)
}

func (s *mediaService) ListByType(ctx context.Context, mt model.MediaType, pr PageRequest) (*Page[model.Media], error) {
	return s.list(ctx, repository.MediaFilter{MediaType: &mt}, pr)
}

func (s *mediaService) ListByUploader(ctx context.Context, userID int64, pr PageRequest) (*Page[model.Media], error) {
	return s.list(ctx, repository.MediaFilter{UploadedByID: &userID}, pr)
}

func (s *mediaService) list(ctx context.Context, f repository.MediaFilter, pr PageRequest) (*Page[model.Media], error) {
	pr, err := mediaListing.normalize(pr)
	if err != nil {
		return nil, err
	}
	var res *repository.PageResult[model.Media]
	err = s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		res, err = s.media.List(ctx, f, pr.query())
		return err
	})
	if err != nil {
		return nil, repoError(err, "media")
	}
	return newPage(res, pr, identity[model.Media]), nil
}

func (s *mediaService) UpdateMetadata(ctx context.Context, id int64, req UpdateMediaRequest) (*model.Media, error) {
	var updated *model.Media
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		m, err := s.find(ctx, id)
		if err != nil {
			return err
		}
		altText, caption := m.AltText, m.Caption
		req.AltText.ApplyNullable(&altText)
		req.Caption.ApplyNullable(&caption)

		updated, err = s.media.UpdateMetadata(ctx, id, altText, caption)
		if err != nil {
			return repoError(err, "media with id %d", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("media updated", zap.Int64("media_id", id))
	return updated, nil
}

func (s *mediaService) Delete(ctx context.Context, id int64) error {
	var key string
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		m, err := s.find(ctx, id)
		if err != nil {
			return err
		}
		key = m.S3Key
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("%w: %w", ErrFileDelete, err)
		}
		if err := s.media.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete media row: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("media deleted", zap.Int64("media_id", id), zap.String("key", key))
	return nil
}

func (s *mediaService) SignedURL(ctx context.Context, id int64, ttl time.Duration) (string, error) {
	if ttl <= 0 || ttl > maxSignedURLTTL {
		return "", errorf(ErrInvalidRequest, "expiry must be between 1s and %s", maxSignedURLTTL)
	}
	m, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, m.S3Key, ttl)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", m.S3Key, err)
	}
	return u, nil
}

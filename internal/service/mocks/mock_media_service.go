package mocks

import (
	"context"
	"time"

	"cmsapi/internal/model"
	"cmsapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, in service.UploadMediaInput) (*model.Media, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Media), args.Error(1)
}

func (m *MockMediaService) Get(ctx context.Context, id int64) (*model.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Media), args.Error(1)
}

func (m *MockMediaService) List(ctx context.Context, pr service.PageRequest) (*service.Page[model.Media], error) {
	args := m.Called(ctx, pr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.Media]), args.Error(1)
}

func (m *MockMediaService) ListByType(ctx context.Context, mt model.MediaType, pr service.PageRequest) (*service.Page[model.Media], error) {
	args := m.Called(ctx, mt, pr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.Media]), args.Error(1)
}

func (m *MockMediaService) ListByUploader(ctx context.Context, userID int64, pr service.PageRequest) (*service.Page[model.Media], error) {
	args := m.Called(ctx, userID, pr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.Media]), args.Error(1)
}

func (m *MockMediaService) UpdateMetadata(ctx context.Context, id int64, req service.UpdateMediaRequest) (*model.Media, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Media), args.Error(1)
}

func (m *MockMediaService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaService) SignedURL(ctx context.Context, id int64, ttl time.Duration) (string, error) {
	args := m.Called(ctx, id, ttl)
	return args.String(0), args.Error(1)
}

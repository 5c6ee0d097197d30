package mocks

import (
	"context"

	"cmsapi/internal/model"
	"cmsapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Create(ctx context.Context, authorID int64, req service.CreatePostRequest) (*model.Post, error) {
	args := m.Called(ctx, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) page(args mock.Arguments) (*service.Page[model.PostSummary], error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.PostSummary]), args.Error(1)
}

func (m *MockPostService) List(ctx context.Context, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
	return m.page(m.Called(ctx, pr))
}

func (m *MockPostService) ListByStatus(ctx context.Context, status model.PostStatus, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
	return m.page(m.Called(ctx, status, pr))
}

func (m *MockPostService) ListPublished(ctx context.Context, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
	return m.page(m.Called(ctx, pr))
}

func (m *MockPostService) ListByAuthor(ctx context.Context, authorID int64, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
	return m.page(m.Called(ctx, authorID, pr))
}

func (m *MockPostService) ListByTag(ctx context.Context, tagID int64, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
	return m.page(m.Called(ctx, tagID, pr))
}

func (m *MockPostService) ListFeatured(ctx context.Context, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
	return m.page(m.Called(ctx, pr))
}

func (m *MockPostService) Search(ctx context.Context, term string, pr service.PageRequest) (*service.Page[model.PostSummary], error) {
	return m.page(m.Called(ctx, term, pr))
}

func (m *MockPostService) Update(ctx context.Context, id int64, req service.UpdatePostRequest) (*model.Post, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) IncrementViewCount(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

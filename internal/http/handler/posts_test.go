package handler

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cmsapi/internal/model"
	"cmsapi/internal/service"
	serviceMocks "cmsapi/internal/service/mocks"
)

func newPostApp() (*fiber.App, *serviceMocks.MockPostService) {
	svc := new(serviceMocks.MockPostService)
	app := newTestApp()
	RegisterRoutes(app, nil, prometheus.NewRegistry(), Services{Posts: svc})
	return app, svc
}

func TestCreatePost(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, svc := newPostApp()
		svc.On("Create", mock.Anything, int64(3), mock.MatchedBy(func(r service.CreatePostRequest) bool {
			return r.Title == "Hello" && r.Slug == "hello" && len(r.TagIDs) == 2 && r.AllowComments == nil
		})).Return(&model.Post{ID: 11, Title: "Hello", Slug: "hello", Status: model.PostStatusDraft}, nil).Once()

		resp := doJSON(t, app, http.MethodPost, "/api/v1/posts?authorId=3",
			`{"title":"Hello","slug":"hello","mdxContent":"# hi","tagIds":[1,2]}`)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		post := decode[model.Post](t, resp)
		assert.Equal(t, int64(11), post.ID)
		svc.AssertExpectations(t)
	})

	t.Run("missing author", func(t *testing.T) {
		app, svc := newPostApp()

		resp := doJSON(t, app, http.MethodPost, "/api/v1/posts", `{"title":"Hello"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decode[errorPayload](t, resp)
		assert.Equal(t, "authorId is required", body.Message)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		app, _ := newPostApp()

		resp := doJSON(t, app, http.MethodPost, "/api/v1/posts?authorId=3", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decode[errorPayload](t, resp)
		assert.Equal(t, "malformed request body", body.Message)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		app, svc := newPostApp()
		svc.On("Create", mock.Anything, int64(3), mock.Anything).
			Return(nil, service.ErrDuplicate).Once()

		resp := doJSON(t, app, http.MethodPost, "/api/v1/posts?authorId=3",
			`{"title":"Hello","slug":"hello","mdxContent":"x"}`)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestGetPost(t *testing.T) {
	app, svc := newPostApp()

	svc.On("Get", mock.Anything, int64(11)).Return(&model.Post{ID: 11}, nil).Once()
	svc.On("Get", mock.Anything, int64(12)).Return(nil, service.ErrNotFound).Once()
	svc.On("GetBySlug", mock.Anything, "hello-world").Return(&model.Post{ID: 11, Slug: "hello-world"}, nil).Once()

	resp := doJSON(t, app, http.MethodGet, "/api/v1/posts/11", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/posts/12", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/posts/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid id", decode[errorPayload](t, resp).Message)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/posts/slug/hello-world", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello-world", decode[model.Post](t, resp).Slug)

	svc.AssertExpectations(t)
}

func TestListPosts(t *testing.T) {
	page := &service.Page[model.PostSummary]{
		Content:       []model.PostSummary{{ID: 1, Title: "Hello", Tags: []model.TagSummary{}}},
		Page:          1,
		Size:          5,
		TotalElements: 6,
		TotalPages:    2,
		Last:          true,
	}

	t.Run("page parameters are forwarded", func(t *testing.T) {
		app, svc := newPostApp()
		svc.On("List", mock.Anything, service.PageRequest{Page: 1, Size: 5, SortBy: "title", SortDir: "asc"}).
			Return(page, nil).Once()

		resp := doJSON(t, app, http.MethodGet, "/api/v1/posts?page=1&size=5&sortBy=title&sortDir=asc", "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[map[string]any](t, resp)
		assert.Equal(t, float64(6), got["totalElements"])
		assert.Equal(t, float64(2), got["totalPages"])
		assert.Equal(t, true, got["last"])
		assert.Len(t, got["content"], 1)
		svc.AssertExpectations(t)
	})

	t.Run("non numeric page", func(t *testing.T) {
		app, _ := newPostApp()

		resp := doJSON(t, app, http.MethodGet, "/api/v1/posts?page=two", "")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "page must be an integer", decode[errorPayload](t, resp).Message)
	})

	t.Run("invalid sort from service", func(t *testing.T) {
		app, svc := newPostApp()
		svc.On("List", mock.Anything, service.PageRequest{SortBy: "password"}).
			Return(nil, service.ErrInvalidRequest).Once()

		resp := doJSON(t, app, http.MethodGet, "/api/v1/posts?sortBy=password", "")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPostListings(t *testing.T) {
	empty := &service.Page[model.PostSummary]{Content: []model.PostSummary{}}

	tests := []struct {
		name  string
		url   string
		setup func(svc *serviceMocks.MockPostService)
	}{
		{
			name: "by status is case insensitive",
			url:  "/api/v1/posts/status/published",
			setup: func(svc *serviceMocks.MockPostService) {
				svc.On("ListByStatus", mock.Anything, model.PostStatusPublished, service.PageRequest{}).Return(empty, nil).Once()
			},
		},
		{
			name: "by author",
			url:  "/api/v1/posts/author/3?size=2",
			setup: func(svc *serviceMocks.MockPostService) {
				svc.On("ListByAuthor", mock.Anything, int64(3), service.PageRequest{Size: 2}).Return(empty, nil).Once()
			},
		},
		{
			name: "by tag",
			url:  "/api/v1/posts/tag/4",
			setup: func(svc *serviceMocks.MockPostService) {
				svc.On("ListByTag", mock.Anything, int64(4), service.PageRequest{}).Return(empty, nil).Once()
			},
		},
		{
			name: "featured",
			url:  "/api/v1/posts/featured",
			setup: func(svc *serviceMocks.MockPostService) {
				svc.On("ListFeatured", mock.Anything, service.PageRequest{}).Return(empty, nil).Once()
			},
		},
		{
			name: "search",
			url:  "/api/v1/posts/search?searchTerm=fiber&page=0",
			setup: func(svc *serviceMocks.MockPostService) {
				svc.On("Search", mock.Anything, "fiber", service.PageRequest{}).Return(empty, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, svc := newPostApp()
			tt.setup(svc)

			resp := doJSON(t, app, http.MethodGet, tt.url, "")

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			svc.AssertExpectations(t)
		})
	}
}

func TestListPostsByAuthor_InvalidID(t *testing.T) {
	app, svc := newPostApp()

	resp := doJSON(t, app, http.MethodGet, "/api/v1/posts/author/0", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid authorId", decode[errorPayload](t, resp).Message)
	svc.AssertNotCalled(t, "ListByAuthor", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePost_MergePatch(t *testing.T) {
	app, svc := newPostApp()
	svc.On("Update", mock.Anything, int64(11), mock.MatchedBy(func(r service.UpdatePostRequest) bool {
		return r.Title.HasValue() && *r.Title.Value == "New title" &&
			r.Excerpt.IsNull() &&
			!r.Slug.Set &&
			r.Status.HasValue() && *r.Status.Value == model.PostStatusPublished &&
			r.TagIDs.HasValue() && len(*r.TagIDs.Value) == 0
	})).Return(&model.Post{ID: 11, Title: "New title", Status: model.PostStatusPublished}, nil).Once()

	resp := doJSON(t, app, http.MethodPut, "/api/v1/posts/11",
		`{"title":"New title","excerpt":null,"status":"PUBLISHED","tagIds":[]}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "New title", decode[model.Post](t, resp).Title)
	svc.AssertExpectations(t)
}

func TestIncrementPostViewsAndDelete(t *testing.T) {
	app, svc := newPostApp()
	svc.On("IncrementViewCount", mock.Anything, int64(11)).Return(nil).Once()
	svc.On("IncrementViewCount", mock.Anything, int64(12)).Return(service.ErrNotFound).Once()
	svc.On("Delete", mock.Anything, int64(11)).Return(nil).Once()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/posts/11/view", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/posts/12/view", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/posts/11", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	svc.AssertExpectations(t)
}

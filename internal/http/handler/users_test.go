package handler

import (
	"io"
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

func newUserApp() (*fiber.App, *serviceMocks.MockUserService) {
	svc := new(serviceMocks.MockUserService)
	app := newTestApp()
	RegisterRoutes(app, nil, prometheus.NewRegistry(), Services{Users: svc})
	return app, svc
}

func TestCreateUser_HidesPasswordHash(t *testing.T) {
	app, svc := newUserApp()
	svc.On("Create", mock.Anything, mock.MatchedBy(func(r service.CreateUserRequest) bool {
		return r.Email == "ada@example.com" && r.Password == "correct horse" && r.Role == model.RoleEditor
	})).Return(&model.User{ID: 5, Email: "ada@example.com", PasswordHash: "$2a$10$hash", Role: model.RoleEditor}, nil).Once()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/users",
		`{"email":"ada@example.com","password":"correct horse","firstName":"Ada","lastName":"Lovelace","username":"ada","role":"EDITOR"}`)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "hash")
	assert.NotContains(t, string(body), "password")
	svc.AssertExpectations(t)
}

func TestListUsers(t *testing.T) {
	app, svc := newUserApp()
	svc.On("List", mock.Anything, true).Return([]model.User{{ID: 5, Active: true}}, nil).Once()
	svc.On("List", mock.Anything, false).Return([]model.User{{ID: 5}, {ID: 6}}, nil).Once()

	resp := doJSON(t, app, http.MethodGet, "/api/v1/users?activeOnly=true", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]model.User](t, resp), 1)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/users", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]model.User](t, resp), 2)

	svc.AssertExpectations(t)
}

func TestUserByIDRoutes(t *testing.T) {
	app, svc := newUserApp()
	svc.On("Get", mock.Anything, int64(5)).Return(&model.User{ID: 5}, nil).Once()
	svc.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(r service.UpdateUserRequest) bool {
		return r.Active.HasValue() && !*r.Active.Value && r.Bio.IsNull()
	})).Return(&model.User{ID: 5}, nil).Once()
	svc.On("Delete", mock.Anything, int64(5)).Return(nil).Once()
	svc.On("Delete", mock.Anything, int64(6)).Return(service.ErrNotFound).Once()

	resp := doJSON(t, app, http.MethodGet, "/api/v1/users/5", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/v1/users/5", `{"active":false,"bio":null}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/users/5", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/users/6", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	svc.AssertExpectations(t)
}

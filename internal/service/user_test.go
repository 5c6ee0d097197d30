package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cmsapi/internal/model"
	repoMocks "cmsapi/internal/repository/mocks"
)

func validUserRequest() CreateUserRequest {
	return CreateUserRequest{
		Email:     "ada@example.com",
		Password:  "correct horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
	}
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockUserRepository)
	svc := NewUserService(&fakeTx{}, mRepo, zap.NewNop())

	mRepo.On("ExistsByEmail", ctx, "ada@example.com").Return(false, nil)
	mRepo.On("ExistsByUsername", ctx, "ada").Return(false, nil)
	mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleAuthor && u.Active &&
			u.PasswordHash != "correct horse" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")) == nil
	})).Return(&model.User{ID: 5, Username: "ada", Role: model.RoleAuthor, Active: true}, nil)

	u, err := svc.Create(ctx, validUserRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
	mRepo.AssertExpectations(t)
}

func TestUserService_Create_Rejected(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		mutate     func(r *CreateUserRequest)
		setupMocks func(mRepo *repoMocks.MockUserRepository)
		wantErr    error
		wantMsg    string
	}{
		{
			name:   "email taken",
			mutate: func(r *CreateUserRequest) {},
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("ExistsByEmail", ctx, "ada@example.com").Return(true, nil)
			},
			wantErr: ErrDuplicate,
			wantMsg: "user with email ada@example.com already exists",
		},
		{
			name:   "username taken",
			mutate: func(r *CreateUserRequest) {},
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("ExistsByEmail", ctx, "ada@example.com").Return(false, nil)
				mRepo.On("ExistsByUsername", ctx, "ada").Return(true, nil)
			},
			wantErr: ErrDuplicate,
			wantMsg: "user with username ada already exists",
		},
		{
			name:       "invalid email",
			mutate:     func(r *CreateUserRequest) { r.Email = "ada" },
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {},
			wantErr:    ErrValidation,
			wantMsg:    "email: must be a valid email",
		},
		{
			name:       "missing names",
			mutate:     func(r *CreateUserRequest) { r.FirstName, r.LastName = "", " " },
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {},
			wantErr:    ErrValidation,
			wantMsg:    "firstName: is required, lastName: is required",
		},
		{
			name:       "multibyte password over 72 bytes",
			mutate:     func(r *CreateUserRequest) { r.Password = strings.Repeat("é", 40) },
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {},
			wantErr:    ErrValidation,
			wantMsg:    "password: must not exceed 72 bytes",
		},
		{
			name:       "ascii password over 72 bytes",
			mutate:     func(r *CreateUserRequest) { r.Password = strings.Repeat("x", 73) },
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {},
			wantErr:    ErrValidation,
			wantMsg:    "password: must not exceed 72 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			svc := NewUserService(&fakeTx{}, mRepo, zap.NewNop())
			tt.setupMocks(mRepo)

			req := validUserRequest()
			tt.mutate(&req)
			u, err := svc.Create(ctx, req)

			assert.Nil(t, u)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.wantMsg)
			mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	bio := "old bio"
	avatar := "https://cdn.example.com/ada.png"
	current := &model.User{ID: 5, FirstName: "Ada", LastName: "Lovelace", Bio: &bio, AvatarURL: &avatar, Role: model.RoleAuthor, Active: true}

	mRepo := new(repoMocks.MockUserRepository)
	svc := NewUserService(&fakeTx{}, mRepo, zap.NewNop())

	mRepo.On("FindByID", ctx, int64(5)).Return(current, nil)
	mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.FirstName == "Ada" && u.LastName == "Byron" &&
			u.Bio == nil && u.AvatarURL != nil && *u.AvatarURL == avatar &&
			u.Role == model.RoleEditor && !u.Active
	})).Return(&model.User{ID: 5, LastName: "Byron", Role: model.RoleEditor}, nil)

	u, err := svc.Update(ctx, 5, UpdateUserRequest{
		LastName: model.Some("Byron"),
		Bio:      model.Null[string](),
		Role:     model.Some(model.RoleEditor),
		Active:   model.Some(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Byron", u.LastName)
	mRepo.AssertExpectations(t)
}

func TestUserService_Update_NullRequiredField(t *testing.T) {
	mRepo := new(repoMocks.MockUserRepository)
	svc := NewUserService(&fakeTx{}, mRepo, zap.NewNop())

	_, err := svc.Update(context.Background(), 5, UpdateUserRequest{FirstName: model.Null[string](), Role: model.Some(model.Role("OWNER"))})

	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "firstName: must not be null, role: must be one of ADMIN EDITOR AUTHOR")
	mRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserService_Lookups(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockUserRepository)
	tx := &fakeTx{}
	svc := NewUserService(tx, mRepo, zap.NewNop())

	mRepo.On("FindByID", ctx, int64(1)).Return(nil, sql.ErrNoRows)
	mRepo.On("FindByUsername", ctx, "ada").Return(&model.User{ID: 5, Username: "ada"}, nil)
	mRepo.On("List", ctx, true).Return([]model.User{{ID: 5, Active: true}}, nil)

	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "user with id 1 not found")

	u, err := svc.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)

	users, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	assert.Equal(t, []bool{true, true, true}, tx.readOnly)
	mRepo.AssertExpectations(t)
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockUserRepository)
	svc := NewUserService(&fakeTx{}, mRepo, zap.NewNop())

	mRepo.On("FindByID", ctx, int64(5)).Return(&model.User{ID: 5}, nil)
	mRepo.On("Delete", ctx, int64(5)).Return(nil)

	assert.NoError(t, svc.Delete(ctx, 5))
	mRepo.AssertExpectations(t)
}

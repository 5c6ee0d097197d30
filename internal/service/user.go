package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cmsapi/internal/database"
	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

// bcrypt only hashes the first 72 bytes of a password.
const maxPasswordBytes = 72

type CreateUserRequest struct {
	Email     string     `json:"email" validate:"notblank,email"`
	Password  string     `json:"password" validate:"notblank,min=8"`
	FirstName string     `json:"firstName" validate:"notblank"`
	LastName  string     `json:"lastName" validate:"notblank"`
	Username  string     `json:"username" validate:"notblank,min=3,max=30"`
	Bio       *string    `json:"bio"`
	AvatarURL *string    `json:"avatarUrl"`
	Role      model.Role `json:"role" validate:"omitempty,oneof=ADMIN EDITOR AUTHOR"`
}

type UpdateUserRequest struct {
	FirstName model.Optional[string]     `json:"firstName" validate:"omitempty,notblank"`
	LastName  model.Optional[string]     `json:"lastName" validate:"omitempty,notblank"`
	Bio       model.Optional[string]     `json:"bio"`
	AvatarURL model.Optional[string]     `json:"avatarUrl"`
	Role      model.Optional[model.Role] `json:"role" validate:"omitempty,oneof=ADMIN EDITOR AUTHOR"`
	Active    model.Optional[bool]       `json:"active"`
}

// UserService manages CMS accounts.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, activeOnly bool) ([]model.User, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	tx    database.Transactor
	users repository.UserRepository
	log   *zap.Logger
	hash  func(password []byte) ([]byte, error)
}

// NewUserService constructs a UserService.
func NewUserService(tx database.Transactor, users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		tx:    tx,
		users: users,
		log:   log,
		hash: func(password []byte) ([]byte, error) {
			return bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
		},
	}
}

func (s *userService) Create(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	var extra []FieldError
	if len(req.Password) > maxPasswordBytes {
		extra = append(extra, FieldError{Field: "password", Message: fmt.Sprintf("must not exceed %d bytes", maxPasswordBytes)})
	}
	if err := checkStruct(&req, extra...); err != nil {
		return nil, err
	}
	if req.Role == "" {
		req.Role = model.RoleAuthor
	}

	var created *model.User
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		exists, err := s.users.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return errorf(ErrDuplicate, "user with email %s already exists", req.Email)
		}
		exists, err = s.users.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return err
		}
		if exists {
			return errorf(ErrDuplicate, "user with username %s already exists", req.Username)
		}

		hash, err := s.hash([]byte(req.Password))
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		created, err = s.users.Create(ctx, &model.User{
			Email:        req.Email,
			Username:     req.Username,
			PasswordHash: string(hash),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Bio:          req.Bio,
			AvatarURL:    req.AvatarURL,
			Role:         req.Role,
			Active:       true,
		})
		if err != nil {
			return repoError(err, "user %s", req.Username)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.Int64("user_id", created.ID), zap.String("username", created.Username))
	return created, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	var u *model.User
	err := s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		u, err = s.users.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, repoError(err, "user with id %d", id)
	}
	return u, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u *model.User
	err := s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		u, err = s.users.FindByUsername(ctx, username)
		return err
	})
	if err != nil {
		return nil, repoError(err, "user with username %s", username)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, activeOnly bool) ([]model.User, error) {
	var users []model.User
	err := s.tx.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		users, err = s.users.List(ctx, activeOnly)
		return err
	})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*model.User, error) {
	if err := checkStruct(&req, nullErrors(
		nullCheck{"firstName", req.FirstName.IsNull()},
		nullCheck{"lastName", req.LastName.IsNull()},
		nullCheck{"role", req.Role.IsNull()},
		nullCheck{"active", req.Active.IsNull()},
	)...); err != nil {
		return nil, err
	}
	var updated *model.User
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		u, err := s.users.FindByID(ctx, id)
		if err != nil {
			return repoError(err, "user with id %d", id)
		}
		req.FirstName.Apply(&u.FirstName)
		req.LastName.Apply(&u.LastName)
		req.Bio.ApplyNullable(&u.Bio)
		req.AvatarURL.ApplyNullable(&u.AvatarURL)
		req.Role.Apply(&u.Role)
		req.Active.Apply(&u.Active)

		updated, err = s.users.Update(ctx, u)
		if err != nil {
			return repoError(err, "user with id %d", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("user updated", zap.Int64("user_id", id))
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, false, func(ctx context.Context) error {
		if _, err := s.users.FindByID(ctx, id); err != nil {
			return repoError(err, "user with id %d", id)
		}
		return s.users.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

package postgres

import (
	"context"
	"database/sql"

	"cmsapi/internal/database"
	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

const userColumns = `id, email, username, password_hash, first_name, last_name, bio, avatar_url, role, active, created_at, updated_at`

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func scanUser(s rowScanner) (*model.User, error) {
	var u model.User
	if err := s.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Bio,
		&u.AvatarURL,
		&u.Role,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (email, username, password_hash, first_name, last_name, bio, avatar_url, role, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.Bio,
		u.AvatarURL,
		string(u.Role),
		u.Active,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *UserPostgres) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(database.Conn(ctx, r.db).QueryRowContext(ctx, q, username))
}

func (r *UserPostgres) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, email).Scan(&exists)
	return exists, err
}

func (r *UserPostgres) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, username).Scan(&exists)
	return exists, err
}

func (r *UserPostgres) List(ctx context.Context, activeOnly bool) ([]model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users`
	if activeOnly {
		q += ` WHERE active`
	}
	q += ` ORDER BY id`

	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the profile fields. Email, username and password are not changed here.
func (r *UserPostgres) Update(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		UPDATE users
		SET first_name = $2, last_name = $3, bio = $4, avatar_url = $5, role = $6, active = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Bio,
		u.AvatarURL,
		string(u.Role),
		u.Active,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// Delete removes a user by ID. Posts by the user cascade; media keep the row with a null uploader.
func (r *UserPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id = $1`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	return err
}

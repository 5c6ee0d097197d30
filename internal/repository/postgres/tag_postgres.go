package postgres

import (
	"context"
	"database/sql"

	"cmsapi/internal/database"
	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

const tagSelect = `
	SELECT t.id, t.name, t.slug,
	       (SELECT COUNT(*) FROM blog_post_tags bpt WHERE bpt.tag_id = t.id) AS post_count,
	       t.created_at, t.updated_at
	FROM tags t`

// TagPostgres is a PostgreSQL implementation of repository.TagRepository.
type TagPostgres struct {
	db *sql.DB
}

// NewTagPostgres creates a new TagPostgres repository.
func NewTagPostgres(db *sql.DB) *TagPostgres {
	return &TagPostgres{db: db}
}

var _ repository.TagRepository = (*TagPostgres)(nil)

func scanTag(s rowScanner) (*model.Tag, error) {
	var t model.Tag
	if err := s.Scan(&t.ID, &t.Name, &t.Slug, &t.PostCount, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TagPostgres) Create(ctx context.Context, t *model.Tag) (*model.Tag, error) {
	const q = `
		INSERT INTO tags (name, slug)
		VALUES ($1, $2)
		RETURNING id, name, slug, 0, created_at, updated_at`
	out, err := scanTag(database.Conn(ctx, r.db).QueryRowContext(ctx, q, t.Name, t.Slug))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *TagPostgres) FindByID(ctx context.Context, id int64) (*model.Tag, error) {
	return scanTag(database.Conn(ctx, r.db).QueryRowContext(ctx, tagSelect+` WHERE t.id = $1`, id))
}

func (r *TagPostgres) FindBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	return scanTag(database.Conn(ctx, r.db).QueryRowContext(ctx, tagSelect+` WHERE t.slug = $1`, slug))
}

func (r *TagPostgres) FindByIDs(ctx context.Context, ids []int64) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}
	q := tagSelect + ` WHERE t.id IN (` + placeholders(1, len(ids)) + `) ORDER BY t.name`
	return r.query(ctx, q, int64Args(ids)...)
}

func (r *TagPostgres) ExistsByName(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM tags WHERE name = $1)`
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, name).Scan(&exists)
	return exists, err
}

func (r *TagPostgres) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM tags WHERE slug = $1)`
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, slug).Scan(&exists)
	return exists, err
}

// List returns every tag ordered by name.
func (r *TagPostgres) List(ctx context.Context) ([]model.Tag, error) {
	return r.query(ctx, tagSelect+` ORDER BY t.name`)
}

func (r *TagPostgres) Update(ctx context.Context, t *model.Tag) (*model.Tag, error) {
	const q = `
		UPDATE tags
		SET name = $2, slug = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, slug,
		          (SELECT COUNT(*) FROM blog_post_tags bpt WHERE bpt.tag_id = tags.id),
		          created_at, updated_at`
	out, err := scanTag(database.Conn(ctx, r.db).QueryRowContext(ctx, q, t.ID, t.Name, t.Slug))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// Delete removes a tag by ID; its post links cascade.
func (r *TagPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM tags WHERE id = $1`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	return err
}

func (r *TagPostgres) query(ctx context.Context, q string, args ...any) ([]model.Tag, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Tag, 0)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"cmsapi/internal/database"
	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

// mediaColumns expects the media row aliased as m and the uploader as u.
const mediaColumns = `
	m.id, m.filename, m.original_filename, m.file_url, m.s3_key, m.content_type, m.file_size, m.media_type,
	m.width, m.height, m.alt_text, m.caption, m.uploaded_by_id, m.uploaded_at, m.updated_at,
	u.username, u.first_name, u.last_name, u.avatar_url`

var mediaSort = sortColumns{
	"id":               "m.id",
	"uploadedAt":       "m.uploaded_at",
	"updatedAt":        "m.updated_at",
	"fileName":         "m.filename",
	"originalFileName": "m.original_filename",
	"fileSize":         "m.file_size",
	"contentType":      "m.content_type",
	"mediaType":        "m.media_type",
}

// MediaPostgres is a PostgreSQL implementation of repository.MediaRepository.
// Reads join users so the uploader summary comes back in the same row.
type MediaPostgres struct {
	db *sql.DB
}

// NewMediaPostgres creates a new MediaPostgres repository.
func NewMediaPostgres(db *sql.DB) *MediaPostgres {
	return &MediaPostgres{db: db}
}

var _ repository.MediaRepository = (*MediaPostgres)(nil)

func scanMedia(s rowScanner) (*model.Media, error) {
	var (
		m                             model.Media
		username, firstName, lastName sql.NullString
		avatarURL                     *string
	)
	if err := s.Scan(
		&m.ID,
		&m.FileName,
		&m.OriginalFileName,
		&m.FileURL,
		&m.S3Key,
		&m.ContentType,
		&m.FileSize,
		&m.MediaType,
		&m.Width,
		&m.Height,
		&m.AltText,
		&m.Caption,
		&m.UploadedByID,
		&m.UploadedAt,
		&m.UpdatedAt,
		&username,
		&firstName,
		&lastName,
		&avatarURL,
	); err != nil {
		return nil, err
	}
	if m.UploadedByID != nil && username.Valid {
		m.UploadedBy = &model.UserSummary{
			ID:        *m.UploadedByID,
			Username:  username.String,
			FirstName: firstName.String,
			LastName:  lastName.String,
			AvatarURL: avatarURL,
		}
	}
	return &m, nil
}

// Create inserts a media row and reads it back joined with its uploader in one statement.
func (r *MediaPostgres) Create(ctx context.Context, m *model.Media) (*model.Media, error) {
	const q = `
		WITH m AS (
			INSERT INTO media (filename, original_filename, file_url, s3_key, content_type, file_size, media_type,
			                   width, height, alt_text, caption, uploaded_by_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING *
		)
		SELECT ` + mediaColumns + `
		FROM m LEFT JOIN users u ON u.id = m.uploaded_by_id`
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		m.FileName,
		m.OriginalFileName,
		m.FileURL,
		m.S3Key,
		m.ContentType,
		m.FileSize,
		string(m.MediaType),
		m.Width,
		m.Height,
		m.AltText,
		m.Caption,
		m.UploadedByID,
	)
	out, err := scanMedia(row)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *MediaPostgres) FindByID(ctx context.Context, id int64) (*model.Media, error) {
	const q = `SELECT ` + mediaColumns + ` FROM media m LEFT JOIN users u ON u.id = m.uploaded_by_id WHERE m.id = $1`
	return scanMedia(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

// List returns a filtered page of media, newest first unless pq says otherwise.
func (r *MediaPostgres) List(ctx context.Context, f repository.MediaFilter, pq repository.PageQuery) (*repository.PageResult[model.Media], error) {
	order, err := mediaSort.orderBy(pq, "uploadedAt", "m.id")
	if err != nil {
		return nil, err
	}

	var w whereClause
	if f.MediaType != nil {
		w.add("m.media_type = $%d", string(*f.MediaType))
	}
	if f.UploadedByID != nil {
		w.add("m.uploaded_by_id = $%d", *f.UploadedByID)
	}

	conn := database.Conn(ctx, r.db)

	var total int64
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM media m`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, err
	}

	tail, args := w.limitOffset(pq)
	q := fmt.Sprintf(`SELECT %s FROM media m LEFT JOIN users u ON u.id = m.uploaded_by_id%s %s%s`, mediaColumns, w.String(), order, tail)
	rows, err := conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Media, 0)
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Media]{
		Items: items,
		Total: total,
	}, nil
}

func (r *MediaPostgres) UpdateMetadata(ctx context.Context, id int64, altText, caption *string) (*model.Media, error) {
	const q = `
		WITH m AS (
			UPDATE media SET alt_text = $2, caption = $3, updated_at = now()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + mediaColumns + `
		FROM m LEFT JOIN users u ON u.id = m.uploaded_by_id`
	return scanMedia(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id, altText, caption))
}

// Delete removes a media row by ID. Posts featuring it keep their row with a null reference.
func (r *MediaPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM media WHERE id = $1`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	return err
}

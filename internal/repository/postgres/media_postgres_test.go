package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"cmsapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsapi/internal/repository"
)

var mediaCols = []string{
	"id", "filename", "original_filename", "file_url", "s3_key", "content_type", "file_size", "media_type",
	"width", "height", "alt_text", "caption", "uploaded_by_id", "uploaded_at", "updated_at",
	"username", "first_name", "last_name", "avatar_url",
}

func TestMediaPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMediaPostgres(db)
	now := time.Now()
	uploader := int64(7)
	w, h := 640, 480
	m := &model.Media{
		FileName:         "my-photo-1700000000000-deadbeef.jpg",
		OriginalFileName: "my photo.jpg",
		FileURL:          "https://cms.s3.us-east-1.amazonaws.com/my-photo-1700000000000-deadbeef.jpg",
		S3Key:            "my-photo-1700000000000-deadbeef.jpg",
		ContentType:      "image/jpeg",
		FileSize:         2048,
		MediaType:        model.MediaTypeImage,
		Width:            &w,
		Height:           &h,
		UploadedByID:     &uploader,
	}

	mock.ExpectQuery("WITH m AS \\( INSERT INTO media").
		WithArgs(m.FileName, m.OriginalFileName, m.FileURL, m.S3Key, m.ContentType, m.FileSize, "IMAGE", w, h, nil, nil, uploader).
		WillReturnRows(sqlmock.NewRows(mediaCols).AddRow(
			10, m.FileName, m.OriginalFileName, m.FileURL, m.S3Key, m.ContentType, m.FileSize, "IMAGE",
			w, h, nil, nil, uploader, now, now,
			"ada", "Ada", "Lovelace", nil,
		))

	got, err := repo.Create(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, model.MediaTypeImage, got.MediaType)
	require.NotNil(t, got.Width)
	assert.Equal(t, 640, *got.Width)
	require.NotNil(t, got.UploadedBy)
	assert.Equal(t, "ada", got.UploadedBy.Username)
	assert.Equal(t, uploader, got.UploadedBy.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMediaPostgres(db)
	now := time.Now()

	t.Run("anonymous upload has no uploader", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM media m LEFT JOIN users u ON u.id = m.uploaded_by_id WHERE m.id = ?").
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(mediaCols).AddRow(
				4, "doc-1-abcdef01.pdf", "doc.pdf", "https://x/doc-1-abcdef01.pdf", "doc-1-abcdef01.pdf", "application/pdf", 10, "DOCUMENT",
				nil, nil, nil, nil, nil, now, now,
				nil, nil, nil, nil,
			))

		got, err := repo.FindByID(context.Background(), 4)
		require.NoError(t, err)
		assert.Nil(t, got.UploadedBy)
		assert.Nil(t, got.Width)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM media m").
			WithArgs(int64(5)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(context.Background(), 5)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestMediaPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMediaPostgres(db)
	now := time.Now()

	t.Run("filtered by type and uploader", func(t *testing.T) {
		mt := model.MediaTypeImage
		uploader := int64(2)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM media m WHERE m.media_type = \\$1 AND m.uploaded_by_id = \\$2").
			WithArgs("IMAGE", uploader).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("WHERE m.media_type = \\$1 AND m.uploaded_by_id = \\$2 ORDER BY m.uploaded_at DESC NULLS LAST, m.id DESC LIMIT \\$3 OFFSET \\$4").
			WithArgs("IMAGE", uploader, 20, 0).
			WillReturnRows(sqlmock.NewRows(mediaCols).AddRow(
				1, "a-1-00000000.png", "a.png", "https://x/a-1-00000000.png", "a-1-00000000.png", "image/png", 5, "IMAGE",
				1, 1, nil, nil, uploader, now, now,
				"bob", "Bob", "B", nil,
			))

		res, err := repo.List(context.Background(),
			repository.MediaFilter{MediaType: &mt, UploadedByID: &uploader},
			repository.PageQuery{Limit: 20, Offset: 0, Desc: true},
		)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "bob", res.Items[0].UploadedBy.Username)
	})

	t.Run("custom sort ascending", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM media m$").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("ORDER BY m.file_size ASC NULLS LAST, m.id ASC LIMIT \\$1 OFFSET \\$2").
			WithArgs(10, 30).
			WillReturnRows(sqlmock.NewRows(mediaCols))

		res, err := repo.List(context.Background(), repository.MediaFilter{}, repository.PageQuery{Limit: 10, Offset: 30, SortBy: "fileSize"})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
	})

	t.Run("unknown sort field", func(t *testing.T) {
		_, err := repo.List(context.Background(), repository.MediaFilter{}, repository.PageQuery{Limit: 10, SortBy: "s3_key; DROP TABLE media"})
		assert.ErrorIs(t, err, repository.ErrInvalidSort)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaPostgres_UpdateMetadataAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMediaPostgres(db)
	now := time.Now()
	alt := "A red bicycle"

	mock.ExpectQuery("WITH m AS \\( UPDATE media SET alt_text = \\$2, caption = \\$3").
		WithArgs(int64(3), alt, nil).
		WillReturnRows(sqlmock.NewRows(mediaCols).AddRow(
			3, "bike-1-00000000.jpg", "bike.jpg", "https://x/bike-1-00000000.jpg", "bike-1-00000000.jpg", "image/jpeg", 5, "IMAGE",
			nil, nil, alt, nil, nil, now, now,
			nil, nil, nil, nil,
		))
	mock.ExpectExec("DELETE FROM media WHERE id = ?").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.UpdateMetadata(context.Background(), 3, &alt, nil)
	require.NoError(t, err)
	require.NotNil(t, got.AltText)
	assert.Equal(t, alt, *got.AltText)
	assert.Nil(t, got.Caption)

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

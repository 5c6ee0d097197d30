package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            BIGSERIAL    PRIMARY KEY,
  email         VARCHAR(255) NOT NULL UNIQUE,
  username      VARCHAR(30)  NOT NULL UNIQUE,
  password_hash TEXT         NOT NULL,
  first_name    VARCHAR(100) NOT NULL,
  last_name     VARCHAR(100) NOT NULL,
  bio           TEXT,
  avatar_url    TEXT,
  role          VARCHAR(20)  NOT NULL DEFAULT 'AUTHOR',
  active        BOOLEAN      NOT NULL DEFAULT TRUE,
  created_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_tags",
		SQL: `CREATE TABLE IF NOT EXISTS tags (
  id         BIGSERIAL   PRIMARY KEY,
  name       VARCHAR(50) NOT NULL UNIQUE,
  slug       VARCHAR(50) NOT NULL UNIQUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_media",
		SQL: `CREATE TABLE IF NOT EXISTS media (
  id                BIGSERIAL    PRIMARY KEY,
  filename          TEXT         NOT NULL,
  original_filename TEXT         NOT NULL,
  file_url          TEXT         NOT NULL,
  s3_key            TEXT         NOT NULL UNIQUE,
  content_type      VARCHAR(255) NOT NULL,
  file_size         BIGINT       NOT NULL CHECK (file_size >= 0),
  media_type        VARCHAR(20)  NOT NULL,
  width             INTEGER,
  height            INTEGER,
  alt_text          TEXT,
  caption           TEXT,
  uploaded_by_id    BIGINT       REFERENCES users (id) ON DELETE SET NULL,
  uploaded_at       TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_blog_posts",
		SQL: `CREATE TABLE IF NOT EXISTS blog_posts (
  id                   BIGSERIAL    PRIMARY KEY,
  title                VARCHAR(255) NOT NULL,
  slug                 VARCHAR(255) NOT NULL UNIQUE,
  excerpt              VARCHAR(500),
  mdx_content          TEXT         NOT NULL,
  featured_image_url   TEXT,
  featured_media_id    BIGINT       REFERENCES media (id) ON DELETE SET NULL,
  author_id            BIGINT       NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  status               VARCHAR(20)  NOT NULL DEFAULT 'DRAFT',
  meta_title           VARCHAR(60),
  meta_description     VARCHAR(160),
  meta_keywords        TEXT,
  published_at         TIMESTAMPTZ,
  scheduled_at         TIMESTAMPTZ,
  view_count           BIGINT       NOT NULL DEFAULT 0,
  reading_time_minutes INTEGER,
  allow_comments       BOOLEAN      NOT NULL DEFAULT TRUE,
  featured             BOOLEAN      NOT NULL DEFAULT FALSE,
  created_at           TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at           TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_blog_post_tags",
		SQL: `CREATE TABLE IF NOT EXISTS blog_post_tags (
  blog_post_id BIGINT NOT NULL REFERENCES blog_posts (id) ON DELETE CASCADE,
  tag_id       BIGINT NOT NULL REFERENCES tags (id) ON DELETE CASCADE,
  PRIMARY KEY (blog_post_id, tag_id)
);`,
	},
	{
		Name: "create_index_blog_posts_status_published_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_blog_posts_status_published_at ON blog_posts (status, published_at DESC);`,
	},
	{
		Name: "create_index_blog_posts_author_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_blog_posts_author_id ON blog_posts (author_id);`,
	},
	{
		Name: "create_index_blog_post_tags_tag_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_blog_post_tags_tag_id ON blog_post_tags (tag_id);`,
	},
	{
		Name: "create_index_media_media_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_media_media_type ON media (media_type);`,
	},
	{
		Name: "create_index_media_uploaded_by_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_media_uploaded_by_id ON media (uploaded_by_id);`,
	},
}

// EnsureMigrated checks whether the blog_posts table exists and creates the schema if it doesn't.
// All steps run in one transaction so a failed step leaves no partial schema behind.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db migration check", zap.String("event", "db_migration_check"), zap.String("status", "starting"))

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.blog_posts') IS NOT NULL").Scan(&exists); err != nil {
		log.Error("db migration failed",
			zap.String("event", "db_migration_failed"),
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			zap.String("event", "db_migration_skip"),
			zap.String("status", "success"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db migration start", zap.String("event", "db_migration_start"), zap.String("status", "in_progress"))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration tx: %w", err)
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
			_ = tx.Rollback()
			log.Error("db migration failed",
				zap.String("event", "db_migration_failed"),
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("db migration step",
			zap.String("event", "db_migration_step"),
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	log.Info("db migration success",
		zap.String("event", "db_migration_success"),
		zap.String("status", "success"),
		zap.Int("steps", len(steps)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}

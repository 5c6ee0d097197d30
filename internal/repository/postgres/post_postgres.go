package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cmsapi/internal/database"
	"cmsapi/internal/model"
	"cmsapi/internal/repository"
)

// postFrom joins the author and the optional featured media onto each post row.
const postFrom = `
	FROM blog_posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN media m ON m.id = p.featured_media_id`

const postColumns = `
	p.id, p.title, p.slug, p.excerpt, p.mdx_content, p.featured_image_url, p.featured_media_id, p.author_id,
	p.status, p.meta_title, p.meta_description, p.meta_keywords, p.published_at, p.scheduled_at,
	p.view_count, p.reading_time_minutes, p.allow_comments, p.featured, p.created_at, p.updated_at,
	u.username, u.first_name, u.last_name, u.avatar_url,
	m.filename, m.file_url, m.content_type, m.media_type`

var postSort = sortColumns{
	"id":          "p.id",
	"createdAt":   "p.created_at",
	"updatedAt":   "p.updated_at",
	"publishedAt": "p.published_at",
	"title":       "p.title",
	"slug":        "p.slug",
	"viewCount":   "p.view_count",
	"status":      "p.status",
}

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
// Tags are loaded with a second query keyed by post id.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

func scanPost(s rowScanner) (*model.Post, error) {
	var (
		p                                    model.Post
		author                               model.UserSummary
		mediaFile, mediaURL, mediaCT, mediaT sql.NullString
	)
	if err := s.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.MDXContent,
		&p.FeaturedImageURL,
		&p.FeaturedMediaID,
		&p.AuthorID,
		&p.Status,
		&p.MetaTitle,
		&p.MetaDescription,
		&p.MetaKeywords,
		&p.PublishedAt,
		&p.ScheduledAt,
		&p.ViewCount,
		&p.ReadingTimeMinutes,
		&p.AllowComments,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
		&author.Username,
		&author.FirstName,
		&author.LastName,
		&author.AvatarURL,
		&mediaFile,
		&mediaURL,
		&mediaCT,
		&mediaT,
	); err != nil {
		return nil, err
	}
	author.ID = p.AuthorID
	p.Author = &author
	if p.FeaturedMediaID != nil && mediaURL.Valid {
		p.FeaturedMedia = &model.MediaSummary{
			ID:          *p.FeaturedMediaID,
			FileName:    mediaFile.String,
			FileURL:     mediaURL.String,
			ContentType: mediaCT.String,
			MediaType:   model.MediaType(mediaT.String),
		}
	}
	p.Tags = []model.TagSummary{}
	return &p, nil
}

func postWriteArgs(p *model.Post) []any {
	return []any{
		p.Title,
		p.Slug,
		p.Excerpt,
		p.MDXContent,
		p.FeaturedImageURL,
		p.FeaturedMediaID,
		p.AuthorID,
		string(p.Status),
		p.MetaTitle,
		p.MetaDescription,
		p.MetaKeywords,
		p.PublishedAt,
		p.ScheduledAt,
		p.ReadingTimeMinutes,
		p.AllowComments,
		p.Featured,
	}
}

func (r *PostPostgres) Create(ctx context.Context, p *model.Post) (int64, error) {
	const q = `
		INSERT INTO blog_posts (title, slug, excerpt, mdx_content, featured_image_url, featured_media_id, author_id,
		                        status, meta_title, meta_description, meta_keywords, published_at, scheduled_at,
		                        reading_time_minutes, allow_comments, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`
	var id int64
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, postWriteArgs(p)...).Scan(&id); err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func (r *PostPostgres) Update(ctx context.Context, p *model.Post) error {
	const q = `
		UPDATE blog_posts
		SET title = $1, slug = $2, excerpt = $3, mdx_content = $4, featured_image_url = $5, featured_media_id = $6,
		    author_id = $7, status = $8, meta_title = $9, meta_description = $10, meta_keywords = $11,
		    published_at = $12, scheduled_at = $13, reading_time_minutes = $14, allow_comments = $15,
		    featured = $16, updated_at = now()
		WHERE id = $17`
	args := append(postWriteArgs(p), p.ID)
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, args...)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostPostgres) SetTags(ctx context.Context, postID int64, tagIDs []int64) error {
	conn := database.Conn(ctx, r.db)
	if _, err := conn.ExecContext(ctx, `DELETE FROM blog_post_tags WHERE blog_post_id = $1`, postID); err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}

	values := make([]string, len(tagIDs))
	args := make([]any, 0, len(tagIDs)+1)
	args = append(args, postID)
	for i, id := range tagIDs {
		values[i] = fmt.Sprintf("($1, $%d)", i+2)
		args = append(args, id)
	}
	q := `INSERT INTO blog_post_tags (blog_post_id, tag_id) VALUES ` + strings.Join(values, ", ") + ` ON CONFLICT DO NOTHING`
	if _, err := conn.ExecContext(ctx, q, args...); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *PostPostgres) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	return r.findOne(ctx, `p.id = $1`, id)
}

func (r *PostPostgres) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return r.findOne(ctx, `p.slug = $1`, slug)
}

func (r *PostPostgres) findOne(ctx context.Context, cond string, arg any) (*model.Post, error) {
	conn := database.Conn(ctx, r.db)
	p, err := scanPost(conn.QueryRowContext(ctx, `SELECT `+postColumns+postFrom+` WHERE `+cond, arg))
	if err != nil {
		return nil, err
	}
	posts := []*model.Post{p}
	if err := loadTags(ctx, conn, posts); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostPostgres) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM blog_posts WHERE slug = $1)`
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, slug).Scan(&exists)
	return exists, err
}

// List returns a filtered page of posts with their tags.
func (r *PostPostgres) List(ctx context.Context, f repository.PostFilter, pq repository.PageQuery) (*repository.PageResult[model.Post], error) {
	order, err := postSort.orderBy(pq, "createdAt", "p.id")
	if err != nil {
		return nil, err
	}

	var w whereClause
	if f.Status != nil {
		w.add("p.status = $%d", string(*f.Status))
	}
	if f.AuthorID != nil {
		w.add("p.author_id = $%d", *f.AuthorID)
	}
	if f.TagID != nil {
		w.add("EXISTS (SELECT 1 FROM blog_post_tags bpt WHERE bpt.blog_post_id = p.id AND bpt.tag_id = $%d)", *f.TagID)
	}
	if f.Featured {
		w.addRaw("p.featured")
	}
	if f.Search != "" {
		w.add("(LOWER(p.title) LIKE $%d OR LOWER(p.excerpt) LIKE $%d)", "%"+strings.ToLower(f.Search)+"%")
	}

	conn := database.Conn(ctx, r.db)

	var total int64
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts p`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, err
	}

	tail, args := w.limitOffset(pq)
	rows, err := conn.QueryContext(ctx, `SELECT `+postColumns+postFrom+w.String()+` `+order+tail, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ptrs := make([]*model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		ptrs = append(ptrs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := loadTags(ctx, conn, ptrs); err != nil {
		return nil, err
	}

	items := make([]model.Post, len(ptrs))
	for i, p := range ptrs {
		items[i] = *p
	}
	return &repository.PageResult[model.Post]{
		Items: items,
		Total: total,
	}, nil
}

func (r *PostPostgres) IncrementViewCount(ctx context.Context, id int64) error {
	const q = `UPDATE blog_posts SET view_count = view_count + 1 WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a post by ID; its tag links cascade.
func (r *PostPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM blog_posts WHERE id = $1`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	return err
}

// loadTags fills Tags on each post with one query over the join table.
func loadTags(ctx context.Context, conn database.DBTX, posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}
	byID := make(map[int64]*model.Post, len(posts))
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	q := `
		SELECT bpt.blog_post_id, t.id, t.name, t.slug
		FROM blog_post_tags bpt
		JOIN tags t ON t.id = bpt.tag_id
		WHERE bpt.blog_post_id IN (` + placeholders(1, len(ids)) + `)
		ORDER BY t.name`
	rows, err := conn.QueryContext(ctx, q, int64Args(ids)...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID int64
			t      model.TagSummary
		)
		if err := rows.Scan(&postID, &t.ID, &t.Name, &t.Slug); err != nil {
			return err
		}
		if p, ok := byID[postID]; ok {
			p.Tags = append(p.Tags, t)
		}
	}
	return rows.Err()
}

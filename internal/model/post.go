package model

import (
	"strings"
	"time"
)

// PostStatus is the editorial state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
	PostStatusScheduled PostStatus = "SCHEDULED"
	PostStatusArchived  PostStatus = "ARCHIVED"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusScheduled, PostStatusArchived:
		return true
	}
	return false
}

// ParsePostStatus accepts a status name in any case.
func ParsePostStatus(s string) (PostStatus, bool) {
	st := PostStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Valid()
}

// Post is a blog post. Author, FeaturedMedia and Tags are read-side views
// loaded by the repository; writes go through AuthorID, FeaturedMediaID and
// the tag id set.
type Post struct {
	ID                 int64         `json:"id"`
	Title              string        `json:"title"`
	Slug               string        `json:"slug"`
	Excerpt            *string       `json:"excerpt"`
	MDXContent         string        `json:"mdxContent"`
	FeaturedImageURL   *string       `json:"featuredImageUrl"`
	FeaturedMediaID    *int64        `json:"-"`
	FeaturedMedia      *MediaSummary `json:"featuredMedia"`
	AuthorID           int64         `json:"-"`
	Author             *UserSummary  `json:"author"`
	Tags               []TagSummary  `json:"tags"`
	Status             PostStatus    `json:"status"`
	MetaTitle          *string       `json:"metaTitle"`
	MetaDescription    *string       `json:"metaDescription"`
	MetaKeywords       *string       `json:"metaKeywords"`
	PublishedAt        *time.Time    `json:"publishedAt"`
	ScheduledAt        *time.Time    `json:"scheduledAt"`
	ViewCount          int64         `json:"viewCount"`
	ReadingTimeMinutes *int          `json:"readingTimeMinutes"`
	AllowComments      bool          `json:"allowComments"`
	Featured           bool          `json:"featured"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// PostSummary is the list view of a post; it omits the body and SEO fields.
type PostSummary struct {
	ID                 int64        `json:"id"`
	Title              string       `json:"title"`
	Slug               string       `json:"slug"`
	Excerpt            *string      `json:"excerpt"`
	FeaturedImageURL   *string      `json:"featuredImageUrl"`
	Author             *UserSummary `json:"author"`
	Tags               []TagSummary `json:"tags"`
	Status             PostStatus   `json:"status"`
	PublishedAt        *time.Time   `json:"publishedAt"`
	ViewCount          int64        `json:"viewCount"`
	ReadingTimeMinutes *int         `json:"readingTimeMinutes"`
	Featured           bool         `json:"featured"`
	CreatedAt          time.Time    `json:"createdAt"`
}

func (p *Post) Summary() PostSummary {
	tags := p.Tags
	if tags == nil {
		tags = []TagSummary{}
	}
	return PostSummary{
		ID:                 p.ID,
		Title:              p.Title,
		Slug:               p.Slug,
		Excerpt:            p.Excerpt,
		FeaturedImageURL:   p.FeaturedImageURL,
		Author:             p.Author,
		Tags:               tags,
		Status:             p.Status,
		PublishedAt:        p.PublishedAt,
		ViewCount:          p.ViewCount,
		ReadingTimeMinutes: p.ReadingTimeMinutes,
		Featured:           p.Featured,
		CreatedAt:          p.CreatedAt,
	}
}

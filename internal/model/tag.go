package model

import "time"

// Tag labels blog posts. PostCount is computed from blog_post_tags on read.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	PostCount int64     `json:"postCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TagSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (t *Tag) Summary() TagSummary {
	return TagSummary{ID: t.ID, Name: t.Name, Slug: t.Slug}
}

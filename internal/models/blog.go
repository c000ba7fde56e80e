package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BlogFields is the canonical, normalized shape of a blog post as written
// by the admin API.
type BlogFields struct {
	Title   string         `db:"title" json:"title"`
	Slug    string         `db:"slug" json:"slug"`
	Excerpt string         `db:"excerpt" json:"excerpt"`
	Cover   string         `db:"cover" json:"cover"`
	Content *string        `db:"content" json:"content"`
	Tags    pq.StringArray `db:"tags" json:"tags"`
	Date    time.Time      `db:"date" json:"date"`
}

type BlogPost struct {
	ID uuid.UUID `db:"id" json:"id"`
	BlogFields
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

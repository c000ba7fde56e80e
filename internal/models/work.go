package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AspectSquare      = "square"
	AspectPortrait45  = "portrait45"
	AspectPortrait916 = "portrait916"
)

var AspectRatios = []string{AspectSquare, AspectPortrait45, AspectPortrait916}

// WorkFields is the canonical shape of a featured work tile.
//
// FeaturedOrder is nil when the caller did not supply one: creates append
// the tile after the existing ones and updates keep the stored order.
type WorkFields struct {
	Title         string  `db:"title" json:"title"`
	Slug          string  `db:"slug" json:"slug"`
	Description   *string `db:"description" json:"description"`
	Image         string  `db:"image" json:"image"`
	AspectRatio   string  `db:"aspect_ratio" json:"aspect_ratio"`
	FeaturedOrder *int    `db:"featured_order" json:"featured_order"`
	Link          *string `db:"link" json:"link"`
}

type Work struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Slug          string    `db:"slug" json:"slug"`
	Description   *string   `db:"description" json:"description"`
	Image         string    `db:"image" json:"image"`
	AspectRatio   string    `db:"aspect_ratio" json:"aspect_ratio"`
	FeaturedOrder int       `db:"featured_order" json:"featured_order"`
	Link          *string   `db:"link" json:"link"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

package model

import (
	"time"
)

// Article is a database-backed blog article authored through the admin area,
// as opposed to the markdown posts shipped in the content directory.
type Article struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	Content     string    `db:"content" json:"content"`
	ImageURL    *string   `db:"image_url" json:"imageUrl"`
	Published   bool      `db:"published" json:"published"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

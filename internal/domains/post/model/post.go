package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is the unit of content. A post with IsPublished == false is
// invisible on every public read path; public fetch-by-id treats it as
// absent.
type Post struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Author        string     `json:"author"`
	Summary       string     `json:"summary"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	FeaturedImage *string    `json:"featuredImage,omitempty"`
	ImageURL      *string    `json:"imageUrl,omitempty"`
	Excerpt       *string    `json:"excerpt,omitempty"`
	PublishDate   time.Time  `json:"publishDate"`
	IsPublished   bool       `json:"isPublished"`
	Views         int64      `json:"views"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// DefaultCategory is applied when a post is created without one.
const DefaultCategory = "General"

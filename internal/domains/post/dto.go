package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/post/model"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	maxSummaryLen = 200
	maxExcerptLen = 300
)

// CreatePostRequest carries the admin-authored fields. Tags arrive as a
// comma-delimited string and are split and trimmed into an ordered list.
// The author is never taken from the request; it is stamped from the
// authenticated identity.
type CreatePostRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Summary       string `json:"summary"`
	Tags          string `json:"tags"`
	Category      string `json:"category"`
	FeaturedImage string `json:"featuredImage"`
	ImageURL      string `json:"imageUrl"`
	Excerpt       string `json:"excerpt"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Summary,
			validation.Required.Error("summary is required"),
			validation.Length(1, maxSummaryLen),
		),
		validation.Field(&r.Excerpt, validation.Length(0, maxExcerptLen)),
	)
}

// UpdatePostRequest is a partial update. Field presence, not truthiness,
// decides the overwrite: a nil pointer keeps the stored value, a non-nil
// pointer overwrites it. This matters for IsPublished, where an explicit
// false must unpublish the post.
type UpdatePostRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Summary       *string `json:"summary"`
	Tags          *string `json:"tags"`
	Category      *string `json:"category"`
	FeaturedImage *string `json:"featuredImage"`
	ImageURL      *string `json:"imageUrl"`
	Excerpt       *string `json:"excerpt"`
	IsPublished   *bool   `json:"isPublished"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Summary,
			validation.When(r.Summary != nil, validation.Length(1, maxSummaryLen)),
		),
		validation.Field(&r.Excerpt,
			validation.When(r.Excerpt != nil, validation.Length(0, maxExcerptLen)),
		),
	)
}

// ListPostsResponse is the public paginated listing.
type ListPostsResponse struct {
	Posts       []model.Post `json:"posts"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	Total       int          `json:"total"`
}

// CategoryGroup is one entry of the category aggregation: the per-category
// count plus up to three newest posts for preview.
type CategoryGroup struct {
	Name  string       `json:"name"`
	Count int          `json:"count"`
	Slug  string       `json:"slug"`
	Posts []model.Post `json:"posts"`
}

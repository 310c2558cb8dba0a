package comment

import (
	"context"

	"blog-backend/internal/domains/comment/model"
)

// Service is the comment lifecycle contract: public submission and
// reading, admin moderation.
type Service interface {
	// ListForPost returns the approved comments of a published post.
	// Unpublished or absent posts yield post.ErrPostNotFound.
	ListForPost(ctx context.Context, postID string) ([]model.Comment, error)

	// Create submits a reader comment on a published post. The comment
	// starts unapproved.
	Create(ctx context.Context, postID string, req CreateCommentRequest) (*model.Comment, error)

	// ListAll is the moderation queue across all posts.
	ListAll(ctx context.Context) ([]model.ModerationEntry, error)

	// Approve marks a comment publicly visible. Idempotent.
	Approve(ctx context.Context, id string) (*model.Comment, error)

	// Delete removes a comment permanently.
	Delete(ctx context.Context, id string) error
}

package comment

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
)

// Repository is the comment store contract.
type Repository interface {
	// Create stores a new comment. The caller has already verified the
	// target post exists and is published.
	Create(ctx context.Context, c *model.Comment) error

	// ListApproved returns the approved comments of one post,
	// newest-first.
	ListApproved(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)

	// ListAll is the moderation queue: every comment in every state,
	// newest-first, each joined with its post title.
	ListAll(ctx context.Context) ([]model.ModerationEntry, error)

	// Approve flips a comment to approved. Idempotent: approving an
	// already-approved comment succeeds. ErrCommentNotFound if the id
	// does not resolve.
	Approve(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// Delete removes a comment. ErrCommentNotFound if the id does not
	// resolve.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountAll / CountPending feed the dashboard.
	CountAll(ctx context.Context) (int, error)
	CountPending(ctx context.Context) (int, error)

	// Recent returns the newest comments in any state, joined with their
	// post titles.
	Recent(ctx context.Context, limit int) ([]model.ModerationEntry, error)
}

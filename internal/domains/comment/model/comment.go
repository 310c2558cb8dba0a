package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is reader feedback on a post. New comments start unapproved and
// stay invisible on public paths until a moderator approves them.
type Comment struct {
	ID         uuid.UUID `json:"id"`
	PostID     uuid.UUID `json:"postId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Content    string    `json:"content"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ModerationEntry is a comment as shown in the moderation queue, joined
// with the title of the post it belongs to.
type ModerationEntry struct {
	Comment
	PostTitle string `json:"postTitle"`
}

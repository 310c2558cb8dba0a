package dashboard

import (
	"time"

	"github.com/google/uuid"
)

// Stats is the admin landing-page summary: counters plus short recency
// lists. Recent entries include drafts and pending comments; this is an
// admin-only view.
type Stats struct {
	TotalPosts      int             `json:"totalPosts"`
	PublishedPosts  int             `json:"publishedPosts"`
	DraftPosts      int             `json:"draftPosts"`
	TotalComments   int             `json:"totalComments"`
	PendingComments int             `json:"pendingComments"`
	RecentPosts     []RecentPost    `json:"recentPosts"`
	RecentComments  []RecentComment `json:"recentComments"`
}

// RecentPost is the slim listing row: enough to render a dashboard line
// without shipping post bodies.
type RecentPost struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	IsPublished bool      `json:"isPublished"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RecentComment carries the comment plus the title of the post it was
// left on.
type RecentComment struct {
	ID         uuid.UUID `json:"id"`
	PostID     uuid.UUID `json:"postId"`
	PostTitle  string    `json:"postTitle"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}

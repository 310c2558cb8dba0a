package post

import "errors"

// ErrPostNotFound covers both a genuinely absent post and an unpublished
// one on public paths: the two must be indistinguishable to callers.
var ErrPostNotFound = errors.New("post not found")

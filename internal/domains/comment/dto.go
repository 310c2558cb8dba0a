package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	maxNameLen    = 100
	maxContentLen = 2000
)

// CreateCommentRequest is the public submission payload. The post id comes
// from the URL, the approval flag is never client-controlled.
type CreateCommentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, maxNameLen),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email,
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, maxContentLen),
		),
	)
}

package dashboard

import "context"

// Service assembles the admin overview.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

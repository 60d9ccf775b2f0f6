package repository

import (
	"context"
	"time"
)

const defaultQueryTimeout = 5 * time.Second

// withTimeout bounds every persistence call so a stuck connection surfaces
// as a deadline error instead of hanging the request.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, d)
}

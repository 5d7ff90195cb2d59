package repository

import (
	"context"
	"time"
)

// CacheRepository backs the public read surface and the species label cache.
// A cache miss is reported as a nil payload with a nil error.
type CacheRepository interface {
	GetPublicProject(ctx context.Context, projectID int64) ([]byte, error)
	SetPublicProject(ctx context.Context, projectID int64, payload []byte, ttl time.Duration) error
	InvalidateProject(ctx context.Context, projectID int64) error

	GetSpeciesLabels(ctx context.Context, ids []int64) (map[int64]string, error)
	SetSpeciesLabels(ctx context.Context, labels map[int64]string, ttl time.Duration) error
}

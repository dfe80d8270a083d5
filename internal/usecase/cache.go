package usecase

import (
	"context"
	"time"
)

// ResponseCache is what usecases need from Redis. Implementations may
// degrade to no-ops when the backing server is unavailable.
type ResponseCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}

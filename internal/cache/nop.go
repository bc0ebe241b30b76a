package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Nop always misses and never invalidates. Used when no Redis address is
// configured; stats are then recomputed on every request.
type Nop struct{}

func (Nop) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, nil
}

func (Nop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (Nop) Version(ctx context.Context, habitID uuid.UUID) (int64, error) {
	return 0, nil
}

func (Nop) Bump(ctx context.Context, habitID uuid.UUID) error {
	return nil
}

package interfaces

import (
	"context"
	"time"
)

// IBatchLock serializes payout batch construction across processes so a
// build sees a stable snapshot of approved-unpaid assignments. Acquire
// returns false when another holder owns the key.
type IBatchLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

package locks

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"towdispatch/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisBatchLock is a SetNX lock with TTL used to serialize payout batch
// construction across processes. The TTL keeps a crashed holder from wedging
// payouts forever.
type RedisBatchLock struct {
	client *redis.Client
}

var _ interfaces.IBatchLock = (*RedisBatchLock)(nil)

func NewRedisBatchLock(client *redis.Client) *RedisBatchLock {
	return &RedisBatchLock{client: client}
}

func (l *RedisBatchLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, key, "1", ttl).Result()
}

func (l *RedisBatchLock) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, key).Err()
}

// ConnectRedis builds a client from REDIS_HOST/REDIS_PORT and verifies the
// connection. Returns nil when REDIS_HOST is unset, in which case batch
// builds run without cross-process serialization (single-instance deploys).
func ConnectRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Printf("[locks][redis] REDIS_HOST not set; payout batch lock disabled")
		return nil
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("[locks][redis] connection failed: %v", err)
	}
	log.Printf("[locks][redis] connected addr=%s:%s", host, port)
	return client
}

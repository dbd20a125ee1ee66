package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	redisGatePrefix = "booking:lock:"
	redisGatePoll   = 25 * time.Millisecond
)

// Deletes the lock only if it still holds our token, so an expired lock taken
// over by another replica is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGate is a Gate shared by every replica using the same redis.
// A lock expires after ttl even if its holder never releases it.
type RedisGate struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisGate(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisGate {
	return &RedisGate{client: client, ttl: ttl, log: log}
}

func (g *RedisGate) Acquire(ctx context.Context, key string) (func(), error) {
	const op = "booking.RedisGate.Acquire"

	lockKey := redisGatePrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(redisGatePoll)
	defer ticker.Stop()

	for {
		ok, err := g.client.SetNX(ctx, lockKey, token, g.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-ticker.C:
		}
	}

	return func() {
		// The request context may already be cancelled here.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		n, err := releaseScript.Run(ctx, g.client, []string{lockKey}, token).Int()
		switch {
		case err != nil:
			// The lock still expires after ttl; until then the slot is blocked.
			g.log.Warn("failed to release booking lock",
				zap.String("key", lockKey), zap.Duration("ttl", g.ttl), zap.Error(err))
		case n == 0:
			g.log.Warn("booking lock expired before release, consider a longer SLOT_LOCK_TTL",
				zap.String("key", lockKey), zap.Duration("ttl", g.ttl))
		}
	}, nil
}

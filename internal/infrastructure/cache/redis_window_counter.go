package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRateLimitPrefix prefixes every rate-limit key stored in Redis.
const DefaultRateLimitPrefix = "ivoirestore:ratelimit:"

// hitScript increments the counter and arms its expiry on the first hit of a window.
var hitScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RedisWindowCounter shares window counts between instances through Redis.
type RedisWindowCounter struct {
	client    redis.Scripter
	keyPrefix string
	now       func() time.Time
}

// NewRedisWindowCounter creates a counter backed by client.
func NewRedisWindowCounter(client redis.Scripter, keyPrefix string) *RedisWindowCounter {
	if keyPrefix == "" {
		keyPrefix = DefaultRateLimitPrefix
	}
	return &RedisWindowCounter{
		client:    client,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}
}

// Hit implements WindowCounter.
func (c *RedisWindowCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	res, err := hitScript.Run(ctx, c.client, []string{c.keyPrefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to count rate limit hit: %w", err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected rate limit script result: %v", res)
	}
	return res[0], c.now().Add(time.Duration(res[1]) * time.Millisecond), nil
}

package store

import (
	"context"
	"fmt"
	"parcel-costing-service/internal/ports"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	KindNone   = "none"
	KindMemory = "memory"
	KindRedis  = "redis"
)

// Open builds the result store named by kind. An empty kind picks Redis
// when redisAddr is set and disables the memo otherwise. A disabled memo
// is a nil store. The returned close func is never nil.
func Open(ctx context.Context, kind, redisAddr string, ttl time.Duration) (ports.ResultStore, func() error, error) {
	noop := func() error { return nil }

	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		kind = KindNone
		if redisAddr != "" {
			kind = KindRedis
		}
	}

	switch kind {
	case KindNone:
		return nil, noop, nil
	case KindMemory:
		return NewMemoryResultStore(), noop, nil
	case KindRedis:
		if redisAddr == "" {
			return nil, noop, fmt.Errorf("open result store: redis address is empty")
		}
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("open result store: redis ping %q: %w", redisAddr, err)
		}
		return NewRedisResultStore(client, DefaultResultKey, ttl), client.Close, nil
	}

	return nil, noop, fmt.Errorf("open result store: unknown kind %q", kind)
}

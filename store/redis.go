package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps backend failures from the redis store so callers
// can tell a missing token from a dead backend.
var ErrRedisUnavailable = errors.New("redis unavailable")

// Redis persists the token under a single key in Redis. Intended for kiosk
// and fleet deployments where the client process is ephemeral but the seat's
// session should survive a restart.
type Redis struct {
	client redis.UniversalClient
	key    string
}

// NewRedis creates a redis-backed store. key defaults to "authclient:token"
// when empty.
func NewRedis(client redis.UniversalClient, key string) *Redis {
	if key == "" {
		key = "authclient:token"
	}
	return &Redis{client: client, key: key}
}

func (r *Redis) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (r *Redis) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces tripbook keys in a shared Redis.
const DefaultRedisPrefix = "tripbook:"

// redisCommands is the subset of the go-redis API the backend uses.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisBackend stores values in Redis under a key prefix. A positive TTL
// expires the stored plan, which scopes it to a session.
type RedisBackend struct {
	client redisCommands
	closer func() error
	prefix string
	ttl    time.Duration
}

// RedisOptions configures NewRedisBackend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

// NewRedisBackend connects to Redis and verifies the connection with PING.
func NewRedisBackend(ctx context.Context, opts RedisOptions) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", opts.Addr, err)
	}

	b := newRedisBackend(client, opts.Prefix, opts.TTL)
	b.closer = client.Close
	return b, nil
}

func newRedisBackend(client redisCommands, prefix string, ttl time.Duration) *RedisBackend {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisBackend{client: client, prefix: prefix, ttl: ttl}
}

// Get implements Backend.
func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Set implements Backend.
func (r *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete implements Backend.
func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	n, err := r.client.Del(ctx, r.prefix+key).Result()
	if err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close releases the connection pool if the backend owns it.
func (r *RedisBackend) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}

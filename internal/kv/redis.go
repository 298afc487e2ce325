package kv

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 5 * time.Second

// Redis is a Store backed by a Redis hash, for deployments where preferences
// should survive the local machine.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis connects a Redis-backed store. All preferences live in a single
// hash under key; if key is empty, "cadence:prefs" is used.
func NewRedis(addr, key string) *Redis {
	if key == "" {
		key = "cadence:prefs"
	}
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		key:    key,
	}
}

// Get returns the stored value for field, or ErrNotFound.
func (r *Redis) Get(field string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	v, err := r.client.HGet(ctx, r.key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// Set stores value under field.
func (r *Redis) Set(field, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	return r.client.HSet(ctx, r.key, field, value).Err()
}

// Close releases the underlying Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

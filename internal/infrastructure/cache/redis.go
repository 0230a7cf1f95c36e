package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

// NewRedisClient creates a Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// Store is a thin cache wrapper used for short-lived response caching
// (e.g. meeting detail aggregation). Misses and redis errors both read as
// "not found" so the cache can never fail a request.
type Store struct {
	client *redis.Client
}

// NewStore creates a cache store backed by the given client
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Set stores a value with expiration
func (s *Store) Set(ctx context.Context, key, value string, expiration time.Duration) {
	s.client.Set(ctx, key, value, expiration)
}

// Get retrieves a value by key
func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Delete removes a key
func (s *Store) Delete(ctx context.Context, key string) {
	s.client.Del(ctx, key)
}

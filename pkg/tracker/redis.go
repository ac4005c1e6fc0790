package tracker

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the set key used when RedisConfig.Key is empty.
const DefaultRedisKey = "canvascast:published"

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	// Addr is the Redis server address (host:port).
	Addr string
	// Password is optional.
	Password string
	// DB selects the Redis database number.
	DB int
	// Key is the set key holding published IDs. Defaults to DefaultRedisKey.
	Key string
}

// RedisStore persists published IDs in a Redis set. Use this when several
// machines watch copies of the same canvas and must share one published set.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, key: key}, nil
}

// Load returns all members of the published set.
func (s *RedisStore) Load(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("load published set: %w", err)
	}
	return ids, nil
}

// Add inserts the IDs into the published set.
func (s *RedisStore) Add(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	if err := s.client.SAdd(ctx, s.key, members...).Err(); err != nil {
		return fmt.Errorf("add to published set: %w", err)
	}
	return nil
}

// Clear deletes the published set.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear published set: %w", err)
	}
	return nil
}

// Key returns the set key holding the published IDs.
func (s *RedisStore) Key() string { return s.key }

// Close closes the Redis client.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)

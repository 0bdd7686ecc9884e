package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKVStore implements KVStore backed by Redis. Suitable when the
// plan data must survive process restarts or be shared across
// instances.
type RedisKVStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisKVStore creates a Redis-backed store and verifies the
// connection.
func NewRedisKVStore(cfg RedisConfig, keyPrefix string) (*RedisKVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisKVStore{
		client:    client,
		keyPrefix: keyPrefix,
	}, nil
}

// NewRedisKVStoreWithClient creates a store with an existing Redis
// client, useful for testing or when sharing a client across
// components.
func NewRedisKVStoreWithClient(client *redis.Client, keyPrefix string) *RedisKVStore {
	return &RedisKVStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the value stored under key, or ErrKeyNotFound
func (s *RedisKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// Set replaces the value stored under key. Records do not expire.
func (s *RedisKVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Remove deletes the key; removing an absent key is not an error
func (s *RedisKVStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

// Keys returns all keys with the given prefix, with the store's own
// prefix stripped.
func (s *RedisKVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	pattern := s.keyPrefix + prefix + "*"
	for {
		batch, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}
		for _, k := range batch {
			keys = append(keys, k[len(s.keyPrefix):])
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}

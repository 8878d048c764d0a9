package stores

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"platform-stats/internal/shared/configs"

	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 100

type redisCounterStore struct {
	client *redis.Client
}

// NewRedisCounterStore connects to the Redis backend described by cfg and
// verifies connectivity before returning.
func NewRedisCounterStore(cfg configs.RedisConfig) (CounterStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MaxRetries > 0 {
		opts.MaxRetries = cfg.MaxRetries
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &redisCounterStore{client: client}, nil
}

// NewRedisCounterStoreFromClient wraps an existing client. Used by tests.
func NewRedisCounterStoreFromClient(client *redis.Client) CounterStore {
	return &redisCounterStore{client: client}
}

func (s *redisCounterStore) Increment(ctx context.Context, key string, delta int64) (int64, error) {
	value, err := s.client.IncrBy(ctx, key, delta).Result()
	if err != nil {
		return 0, unavailableError("increment "+key, err)
	}
	return value, nil
}

func (s *redisCounterStore) Get(ctx context.Context, key string) (int64, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, unavailableError("get "+key, err)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("non-integer value at key %q: %w", key, err)
	}
	return value, nil
}

func (s *redisCounterStore) GetMany(ctx context.Context, keys []string) (map[string]int64, error) {
	result := make(map[string]int64, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, unavailableError("mget", err)
	}
	for i, raw := range values {
		if raw == nil {
			result[keys[i]] = 0
			continue
		}
		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected value type at key %q: %T", keys[i], raw)
		}
		value, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("non-integer value at key %q: %w", keys[i], err)
		}
		result[keys[i]] = value
	}
	return result, nil
}

func (s *redisCounterStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, unavailableError("scan "+pattern, err)
	}
	// SCAN order is unspecified; sort so enumeration is deterministic.
	sort.Strings(keys)
	return keys, nil
}

func (s *redisCounterStore) SetIfAbsent(ctx context.Context, key string, value int64) (bool, error) {
	written, err := s.client.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return false, unavailableError("setnx "+key, err)
	}
	return written, nil
}

func (s *redisCounterStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return unavailableError("ping", err)
	}
	return nil
}

package settings

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps a profile in the hash screenshot-styler:settings:<profile>,
// one field per storage key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to url and pings the server.
func NewRedisStore(ctx context.Context, url, profile string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return NewRedisStoreFromClient(client, profile), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, profile string) *RedisStore {
	return &RedisStore{client: client, key: "screenshot-styler:settings:" + profile}
}

func (s *RedisStore) Load(ctx context.Context) (Settings, error) {
	m, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return FromFields(m), nil
}

// Save writes only the set fields, so HSET gives merge semantics for free.
func (s *RedisStore) Save(ctx context.Context, patch Settings) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}
	values := make(map[string]any, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	if err := s.client.HSet(ctx, s.key, values).Err(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *RedisStore) Reset(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

func (s *RedisStore) Close() error { return s.client.Close() }

var _ Store = (*RedisStore)(nil)

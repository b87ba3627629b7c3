package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage namespaces every key under one client ID so several pages
// can share a server.
type RedisStorage struct {
	client   *redis.Client
	clientID string
}

func NewRedisStorage(ctx context.Context, addr string, db int, clientID string) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStorage{client: client, clientID: clientID}, nil
}

func (s *RedisStorage) key(name string) string {
	return fmt.Sprintf(KeyClientEntry, s.clientID, name)
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

// SetMany writes all values in one MULTI/EXEC.
func (s *RedisStorage) SetMany(ctx context.Context, values map[string]string) error {
	tx := s.client.TxPipeline()
	for k, v := range values {
		tx.Set(ctx, s.key(k), v, 0)
	}

	if _, err := tx.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *RedisStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = s.key(k)
	}

	if err := s.client.Del(ctx, names...).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}

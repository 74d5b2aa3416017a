package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thebettinginsider/splitsight/internal/splits"
)

type redisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore builds a snapshot store backed by a single Redis key.
// The value is the JSON snapshot, replaced wholesale on every Set and
// expired by Redis after the TTL as a backstop to the manager's own
// freshness check.
func NewRedisStore(addr, password string, db int, ttl time.Duration, key string) (Store, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if key == "" {
		key = "splits:snapshot"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisStore{client: client, key: key, ttl: ttl}, nil
}

func (s *redisStore) Get(ctx context.Context) (*splits.Snapshot, bool, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var snap splits.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false, err
	}
	return &snap, true, nil
}

func (s *redisStore) Set(ctx context.Context, snap splits.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, payload, s.ttl).Err()
}

func (s *redisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

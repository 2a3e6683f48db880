// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tidraft/tidraft/internal/models"
)

// roomKeyPrefix namespaces room records in the keyspace.
const roomKeyPrefix = "room:"

// RedisStore persists rooms as JSON values keyed by "room:<CODE>".
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore initializes a Redis-backed store with environment variables:
//   - REDIS_ADDR (default "localhost:6379")
//   - REDIS_DB (optional, default 0)
func NewRedisStore(ctx context.Context) (*RedisStore, error) {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	dbIdx := getEnvInt("REDIS_DB", 0)

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIdx,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return &RedisStore{rdb: rdb}, nil
}

// Get fetches and unmarshals the room value for code.
func (s *RedisStore) Get(ctx context.Context, code string) (*models.Room, error) {
	data, err := s.rdb.Get(ctx, roomKeyPrefix+code).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", code, err)
	}
	var room models.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("unmarshal room %s: %w", code, err)
	}
	return &room, nil
}

// Put marshals and stores the room value under its code. Rooms do not
// expire; cleanup is left to the surrounding deployment.
func (s *RedisStore) Put(ctx context.Context, code string, room *models.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("marshal room %s: %w", code, err)
	}
	if err := s.rdb.Set(ctx, roomKeyPrefix+code, data, 0).Err(); err != nil {
		return fmt.Errorf("put room %s: %w", code, err)
	}
	return nil
}

// Exists checks for a value under code.
func (s *RedisStore) Exists(ctx context.Context, code string) (bool, error) {
	n, err := s.rdb.Exists(ctx, roomKeyPrefix+code).Result()
	if err != nil {
		return false, fmt.Errorf("room exists %s: %w", code, err)
	}
	return n > 0, nil
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

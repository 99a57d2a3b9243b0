// Package storage provides Redis persistence for DraftBot.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps go-redis client. When no URL is configured or the server
// is unreachable it degrades to a disabled no-op client so the bot keeps
// running without a cache.
type RedisClient struct {
	client  *redis.Client
	enabled bool
	ctx     context.Context
}

// NewRedisClient creates a new Redis client using go-redis.
func NewRedisClient(redisURL string) *RedisClient {
	if redisURL == "" {
		log.Println("Redis not configured (REDIS_URL missing), using memory only")
		return &RedisClient{enabled: false, ctx: context.Background()}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse REDIS_URL: %v", err)
		return &RedisClient{enabled: false, ctx: context.Background()}
	}

	opt.PoolSize = 5
	opt.MinIdleConns = 1
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed: %v", err)
		return &RedisClient{enabled: false, ctx: ctx}
	}

	log.Println("Redis connected successfully")
	return &RedisClient{
		client:  client,
		enabled: true,
		ctx:     ctx,
	}
}

// Get retrieves a value from Redis.
func (r *RedisClient) Get(key string) (string, error) {
	if !r.enabled {
		return "", nil
	}
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// Set stores a value in Redis (no expiration).
func (r *RedisClient) Set(key string, value string) error {
	if !r.enabled {
		return nil
	}
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetTTL stores a value in Redis with an expiration.
func (r *RedisClient) SetTTL(key string, value string, ttl time.Duration) error {
	if !r.enabled {
		return nil
	}
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis.
func (r *RedisClient) Delete(key string) error {
	if !r.enabled {
		return nil
	}
	return r.client.Del(r.ctx, key).Err()
}

// MainsStore manages each user's preferred hero, persisted as one JSON blob.
type MainsStore struct {
	redis *RedisClient
	key   string
	mains map[string]string // user ID -> hero display name
	mu    sync.RWMutex
}

// NewMainsStore creates a new mains store.
func NewMainsStore(redis *RedisClient, key string) *MainsStore {
	return &MainsStore{
		redis: redis,
		key:   key,
		mains: make(map[string]string),
	}
}

// Load loads saved mains from Redis.
func (s *MainsStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.redis.Get(s.key)
	if err != nil {
		return err
	}

	if data == "" {
		s.mains = make(map[string]string)
		return nil
	}

	var mains map[string]string
	if err := json.Unmarshal([]byte(data), &mains); err != nil {
		return err
	}

	s.mains = mains
	log.Printf("Loaded %d saved mains", len(s.mains))
	return nil
}

// Save saves all mains to Redis.
func (s *MainsStore) Save() error {
	s.mu.RLock()
	data, err := json.Marshal(s.mains)
	s.mu.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal mains: %w", err)
	}

	return s.redis.Set(s.key, string(data))
}

// Get returns the preferred hero for a user.
func (s *MainsStore) Get(userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hero, ok := s.mains[userID]
	return hero, ok
}

// Set stores the preferred hero for a user.
func (s *MainsStore) Set(userID, hero string) {
	s.mu.Lock()
	s.mains[userID] = hero
	s.mu.Unlock()
}

// Delete removes a user's preferred hero.
func (s *MainsStore) Delete(userID string) {
	s.mu.Lock()
	delete(s.mains, userID)
	s.mu.Unlock()
}

// Count returns the number of saved mains.
func (s *MainsStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mains)
}

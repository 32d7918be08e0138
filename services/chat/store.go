package chat

import (
	"context"
	"encoding/json"
	"time"

	"geecurly/models"

	"github.com/go-redis/redis/v8"
)

const (
	sessionPrefix = "chat:session:"
	memoryPrefix  = "chat:memory:"

	// SessionTTL is how long an idle conversation survives.
	SessionTTL = 30 * time.Minute
	// MemoryTTL is how long customer preferences are kept between visits.
	MemoryTTL = 30 * 24 * time.Hour
)

// SessionStore persists in-flight conversations.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ConversationSession, error)
	Set(ctx context.Context, session *models.ConversationSession) error
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStore persists long-lived customer preferences keyed by the same
// identifier the widget reuses across visits.
type MemoryStore interface {
	Get(ctx context.Context, customerID string) (*models.CustomerMemory, error)
	Set(ctx context.Context, memory *models.CustomerMemory) error
}

// RedisSessionStore implements SessionStore on Redis with a rolling TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ConversationSession, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.ConversationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, session *models.ConversationSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+session.ID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// RedisMemoryStore implements MemoryStore on Redis.
type RedisMemoryStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisMemoryStore(client *redis.Client, ttl time.Duration) *RedisMemoryStore {
	return &RedisMemoryStore{client: client, ttl: ttl}
}

func (s *RedisMemoryStore) Get(ctx context.Context, customerID string) (*models.CustomerMemory, error) {
	data, err := s.client.Get(ctx, memoryPrefix+customerID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var memory models.CustomerMemory
	if err := json.Unmarshal([]byte(data), &memory); err != nil {
		return nil, err
	}
	return &memory, nil
}

func (s *RedisMemoryStore) Set(ctx context.Context, memory *models.CustomerMemory) error {
	b, err := json.Marshal(memory)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, memoryPrefix+memory.ID, b, s.ttl).Err()
}

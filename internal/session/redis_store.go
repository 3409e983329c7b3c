package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/employee-board/internal/domain"
)

const redisKeyPrefix = "employee-board:session:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore keeps datasets as JSON values with a per-session TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func redisKey(sessionID string) string {
	return redisKeyPrefix + sessionID
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (*domain.Dataset, error) {
	raw, err := s.client.Get(ctx, redisKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: read dataset: %w", err)
	}

	var dataset domain.Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return nil, fmt.Errorf("session: decode dataset: %w", err)
	}
	return &dataset, nil
}

func (s *redisStore) Put(ctx context.Context, sessionID string, dataset *domain.Dataset) error {
	if dataset == nil {
		return errors.New("session: nil dataset")
	}
	payload, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("session: encode dataset: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(sessionID), string(payload), s.ttl).Err(); err != nil {
		return fmt.Errorf("session: write dataset: %w", err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("session: clear dataset: %w", err)
	}
	return nil
}

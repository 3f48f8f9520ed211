package valuation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const valuationKeyPrefix = "valuation:"

// RedisStore keeps valuations in Redis with a TTL matching the offer expiry,
// so expired offers disappear on their own.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, v ValuationResponse) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal valuation %s: %w", v.ValuationID, err)
	}

	ttl := time.Until(v.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("valuation %s is already expired", v.ValuationID)
	}

	return s.client.Set(ctx, valuationKeyPrefix+v.ValuationID, payload, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, valuationID string) (*ValuationResponse, error) {
	payload, err := s.client.Get(ctx, valuationKeyPrefix+valuationID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrValuationNotFound
		}
		return nil, fmt.Errorf("failed to get valuation %s: %w", valuationID, err)
	}

	var v ValuationResponse
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal valuation %s: %w", valuationID, err)
	}
	return &v, nil
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dealfinder/internal/model"
)

const keyPrefix = "results:"

type RedisSlot struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *RedisSlot) Replace(ctx context.Context, sessionID string, products []model.Product) error {
	if products == nil {
		products = []model.Product{}
	}
	b, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return s.Client.Set(ctx, keyPrefix+sessionID, b, s.TTL).Err()
}

func (s *RedisSlot) Current(ctx context.Context, sessionID string) ([]model.Product, error) {
	val, err := s.Client.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}

	// Estende a expiração sempre que o valor é lido
	s.Client.Expire(ctx, keyPrefix+sessionID, s.TTL)
	return products, nil
}

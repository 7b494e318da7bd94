package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/malidadi/storefront/internal/cart"
)

// CartStorage is the redis-backed cart.Storage. Snapshots are written
// whole under one key so other processes never see a torn cart.
type CartStorage struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewCartStorage(rdb *redis.Client) *CartStorage {
	return &CartStorage{RDB: rdb, TTL: TTLCart}
}

func (s *CartStorage) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := s.RDB.Get(ctx, fmt.Sprintf(KeyCart, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cart.ErrNoSnapshot
	}
	return b, err
}

func (s *CartStorage) Save(ctx context.Context, key string, data []byte) error {
	return s.RDB.Set(ctx, fmt.Sprintf(KeyCart, key), data, s.TTL).Err()
}

func (s *CartStorage) Delete(ctx context.Context, key string) error {
	return s.RDB.Del(ctx, fmt.Sprintf(KeyCart, key)).Err()
}

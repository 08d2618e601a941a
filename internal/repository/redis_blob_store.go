package repository

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

type RedisBlobStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisBlobStore(rdb *redis.Client, prefix string) *RedisBlobStore {
	return &RedisBlobStore{rdb: rdb, prefix: prefix}
}

func (s *RedisBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return b, err
}

// Put 无过期时间，整份覆盖写入
func (s *RedisBlobStore) Put(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *RedisBlobStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

package ban

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	strikeKeyPrefix = "ratelimit:strikes:"
	banKeyPrefix    = "ratelimit:ban:"
)

// RedisStore shares strikes and bans between server instances.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Strike(ctx context.Context, target string, window time.Duration) (int, error) {
	key := strikeKeyPrefix + target

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("record strike: %w", err)
	}
	return int(incr.Val()), nil
}

func (s *RedisStore) Ban(ctx context.Context, target string, d time.Duration) error {
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, banKeyPrefix+target, time.Now().Add(d).Format(time.RFC3339), d)
	pipe.Del(ctx, strikeKeyPrefix+target)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store ban: %w", err)
	}
	return nil
}

func (s *RedisStore) IsBanned(ctx context.Context, target string) (bool, error) {
	err := s.rdb.Get(ctx, banKeyPrefix+target).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check ban: %w", err)
	}
	return true, nil
}

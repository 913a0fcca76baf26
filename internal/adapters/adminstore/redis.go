package adminstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/larriantoniy/tg_invest_bot/internal/ports"
)

const adminSetKey = "investbot:admins"

// RedisAdminRepo хранит набор ID администраторов в Redis-множестве
type RedisAdminRepo struct {
	client *redis.Client
}

func NewRedisAdminRepo(ctx context.Context, redisURL string) (*RedisAdminRepo, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisAdminRepo{client: client}, nil
}

func (r *RedisAdminRepo) Load(ctx context.Context) ([]int64, error) {
	members, err := r.client.SMembers(ctx, adminSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", adminSetKey, err)
	}
	if len(members) == 0 {
		return nil, ports.ErrAdminSetMissing
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse admin id %q: %w", m, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *RedisAdminRepo) Save(ctx context.Context, ids []int64) error {
	members := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		members = append(members, strconv.FormatInt(id, 10))
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, adminSetKey)
	if len(members) > 0 {
		pipe.SAdd(ctx, adminSetKey, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save admin set: %w", err)
	}
	return nil
}

func (r *RedisAdminRepo) Close() error {
	return r.client.Close()
}

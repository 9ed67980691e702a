package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisRepository stores each value as a Redis SET at "<namespace>:<key>".
type redisRepository struct {
	client    *redis.Client
	namespace string
}

func NewRedisRepository(client *redis.Client, namespace string) FavoritesRepository {
	return &redisRepository{client: client, namespace: namespace}
}

func (r *redisRepository) redisKey(key string) string {
	return r.namespace + ":" + key
}

func (r *redisRepository) Load(ctx context.Context, key string) ([]string, error) {
	members, err := r.client.SMembers(ctx, r.redisKey(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from redis: %w", r.redisKey(key), err)
	}
	return members, nil
}

func (r *redisRepository) Save(ctx context.Context, key string, members []string) error {
	k := r.redisKey(key)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		if len(members) > 0 {
			args := make([]interface{}, len(members))
			for i, m := range members {
				args[i] = m
			}
			pipe.SAdd(ctx, k, args...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", k, err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", r.redisKey(key), err)
	}
	return nil
}

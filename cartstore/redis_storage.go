package cartstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/i-iangurazov/roksosh/models"
)

// RedisStorage keeps the cart snapshot under a single named key.
type RedisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(client *redis.Client, key string) *RedisStorage {
	if key == "" {
		key = DefaultStoreKey
	}
	return &RedisStorage{client: client, key: key}
}

func (r *RedisStorage) Load(ctx context.Context) (models.CartSnapshot, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.CartSnapshot{}, false, nil
	}
	if err != nil {
		return models.CartSnapshot{}, false, err
	}

	var snap models.CartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.CartSnapshot{}, false, err
	}
	return snap, true, nil
}

func (r *RedisStorage) Save(ctx context.Context, snap models.CartSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}

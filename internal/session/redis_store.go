package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rensongqi/sanic-adminapi/pkg/redis"
)

// RedisStore 基于 Redis 的会话存储，多实例部署时共享会话
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 会话存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Load(ctx context.Context, sid string) (*Data, error) {
	raw, err := r.client.GetSession(ctx, sid)
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("解析会话数据失败: %w", err)
	}
	return &d, nil
}

func (r *RedisStore) Save(ctx context.Context, sid string, data *Data, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return r.client.SetSession(ctx, sid, raw, ttl)
}

func (r *RedisStore) Delete(ctx context.Context, sid string) error {
	return r.client.DeleteSession(ctx, sid)
}

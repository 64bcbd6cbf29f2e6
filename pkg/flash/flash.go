package flash

import (
	"context"
	"fmt"
	"time"

	"pharmadmin/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Store 基于Redis的一次性提示消息存储。
// 提交成功后写入一条提示并通过重定向携带令牌，
// 页面渲染时取出展示，展示后3秒自动隐藏。
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStore 创建提示消息存储
func NewStore(cfg *config.RedisConfig) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Store{
		client: client,
		prefix: cfg.Prefix + ":flash:",
		// 消息只在紧随其后的一次页面渲染中使用，给足跳转时间即可
		ttl: 60 * time.Second,
	}
}

// Put 保存提示消息，返回携带在重定向地址中的令牌
func (s *Store) Put(ctx context.Context, message string) (string, error) {
	token := uuid.New().String()
	if err := s.client.Set(ctx, s.prefix+token, message, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Take 取出并删除提示消息，不存在时返回空串
func (s *Store) Take(ctx context.Context, token string) string {
	if token == "" {
		return ""
	}
	message, err := s.client.Get(ctx, s.prefix+token).Result()
	if err != nil {
		return ""
	}
	s.client.Del(ctx, s.prefix+token)
	return message
}

// Close 关闭Redis连接
func (s *Store) Close() error {
	return s.client.Close()
}

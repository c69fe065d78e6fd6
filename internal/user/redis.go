package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// TokenCacheKey 是一个 Redis Hash 的键，用于缓存令牌到账号的映射。
// Field: 访问令牌
// Value: 账号UUID
const TokenCacheKey = "user:tokens"

// TokenCache 定义了访问令牌缓存的接口。
// 认证走缓存优先，SQLite作为缓存未命中时的兜底。
type TokenCache interface {
	// Put 写入一条令牌到UUID的映射。
	Put(ctx context.Context, token, uuid string) error

	// Remove 删除一条令牌映射。令牌不存在不是错误。
	Remove(ctx context.Context, token string) error

	// Lookup 按令牌查找账号UUID。未命中时ok为false。
	Lookup(ctx context.Context, token string) (uuid string, ok bool, err error)

	// Rebuild 用给定的完整映射原子地重建缓存。
	Rebuild(ctx context.Context, tokens map[string]string) error
}

type redisTokenCache struct {
	rdb *redis.Client
}

// NewTokenCache 创建一个基于Redis Hash的令牌缓存。
func NewTokenCache(rdb *redis.Client) TokenCache {
	return &redisTokenCache{rdb: rdb}
}

func (c *redisTokenCache) Put(ctx context.Context, token, uuid string) error {
	if err := c.rdb.HSet(ctx, TokenCacheKey, token, uuid).Err(); err != nil {
		return fmt.Errorf("无法写入令牌缓存: %w", err)
	}
	return nil
}

func (c *redisTokenCache) Remove(ctx context.Context, token string) error {
	if err := c.rdb.HDel(ctx, TokenCacheKey, token).Err(); err != nil {
		return fmt.Errorf("无法删除令牌缓存: %w", err)
	}
	return nil
}

func (c *redisTokenCache) Lookup(ctx context.Context, token string) (string, bool, error) {
	uuid, err := c.rdb.HGet(ctx, TokenCacheKey, token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("查询令牌缓存时出错: %w", err)
	}
	return uuid, true, nil
}

func (c *redisTokenCache) Rebuild(ctx context.Context, tokens map[string]string) error {
	// 使用Pipeline保证清空和重灌作为一个批次提交
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, TokenCacheKey)
	if len(tokens) > 0 {
		flat := make([]any, 0, len(tokens)*2)
		for token, uuid := range tokens {
			flat = append(flat, token, uuid)
		}
		pipe.HSet(ctx, TokenCacheKey, flat...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("重建令牌缓存失败: %w", err)
	}
	return nil
}

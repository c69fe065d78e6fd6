package database

import (
	"context"
	"fmt"

	"github.com/SlpAus/quiz-game-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// OpenRedis 初始化与Redis数据库的连接并返回客户端句柄。
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 使用Ping命令来测试连接是否成功
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("无法连接到Redis: %w", err)
	}

	fmt.Println("Redis 连接成功！")
	return rdb, nil
}

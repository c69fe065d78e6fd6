package highscore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RankingKey 是一个 Redis Sorted Set 的键，用于按得分实时排序排行榜。
// Score: 条目的得分
// Member: 条目的名字
const RankingKey = "highscore:ranking"

// RankingCache 定义了排行榜排序缓存的接口。
// 读取排行走缓存优先，SQLite作为缓存不可用时的兜底。
type RankingCache interface {
	// Set 写入或覆盖一个名字的得分。
	Set(ctx context.Context, name string, score int) error

	// Top 返回按得分降序排列的前n个条目。
	Top(ctx context.Context, n int) ([]Entry, error)

	// Rebuild 用给定的全量条目原子地重建缓存。
	Rebuild(ctx context.Context, entries []Highscore) error
}

type redisRankingCache struct {
	rdb *redis.Client
}

// NewRankingCache 创建一个基于Redis ZSet的排行缓存。
func NewRankingCache(rdb *redis.Client) RankingCache {
	return &redisRankingCache{rdb: rdb}
}

func (c *redisRankingCache) Set(ctx context.Context, name string, score int) error {
	// ZAdd对已存在的member是覆盖语义，与排行榜的覆盖规则一致
	err := c.rdb.ZAdd(ctx, RankingKey, redis.Z{Score: float64(score), Member: name}).Err()
	if err != nil {
		return fmt.Errorf("无法写入排行缓存: %w", err)
	}
	return nil
}

func (c *redisRankingCache) Top(ctx context.Context, n int) ([]Entry, error) {
	zs, err := c.rdb.ZRevRangeWithScores(ctx, RankingKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("无法读取排行缓存: %w", err)
	}

	entries := make([]Entry, 0, len(zs))
	for _, z := range zs {
		name, _ := z.Member.(string)
		entries = append(entries, Entry{Name: name, Score: int(z.Score)})
	}
	return entries, nil
}

func (c *redisRankingCache) Rebuild(ctx context.Context, entries []Highscore) error {
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, RankingKey)
	if len(entries) > 0 {
		zs := make([]redis.Z, len(entries))
		for i, e := range entries {
			zs[i] = redis.Z{Score: float64(e.Score), Member: e.Name}
		}
		pipe.ZAdd(ctx, RankingKey, zs...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("重建排行缓存失败: %w", err)
	}
	return nil
}

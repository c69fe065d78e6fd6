package highscore

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// migrateDB 负责自动迁移排行榜表结构
func migrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&Highscore{}); err != nil {
		return fmt.Errorf("无法迁移highscore表: %w", err)
	}
	fmt.Println("Highscore数据库表迁移成功。")
	return nil
}

// WarmupCache 从SQLite加载全部排行榜条目，并预热到Redis的ZSet中
func WarmupCache(ctx context.Context, repo Repository, cache RankingCache) error {
	entries, err := repo.All(ctx)
	if err != nil {
		return err
	}

	if err := cache.Rebuild(ctx, entries); err != nil {
		return err
	}

	fmt.Printf("成功预热 %d 条排行榜条目到Redis。\n", len(entries))
	return nil
}

// PrimeCachedDB 是highscore模块的初始化总入口
func PrimeCachedDB(ctx context.Context, db *gorm.DB, repo Repository, cache RankingCache) error {
	if err := migrateDB(db); err != nil {
		return err
	}
	if err := WarmupCache(ctx, repo, cache); err != nil {
		return err
	}
	return nil
}

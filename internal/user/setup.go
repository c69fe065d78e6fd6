package user

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// migrateDB 负责自动迁移账号表结构
func migrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("无法迁移user表: %w", err)
	}
	fmt.Println("User数据库表迁移成功。")
	return nil
}

// WarmupCache 从SQLite加载所有有效的访问令牌，并预热到Redis的令牌缓存中
func WarmupCache(ctx context.Context, repo Repository, cache TokenCache) error {
	tokens, err := repo.TokensByUUID(ctx)
	if err != nil {
		return err
	}

	if err := cache.Rebuild(ctx, tokens); err != nil {
		return err
	}

	fmt.Printf("成功预热 %d 个访问令牌到Redis。\n", len(tokens))
	return nil
}

// PrimeCachedDB 是user模块的初始化总入口
func PrimeCachedDB(ctx context.Context, db *gorm.DB, repo Repository, cache TokenCache) error {
	if err := migrateDB(db); err != nil {
		return err
	}
	if err := WarmupCache(ctx, repo, cache); err != nil {
		return err
	}
	return nil
}

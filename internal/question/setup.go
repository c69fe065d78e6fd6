package question

import (
	"context"
	"fmt"

	"github.com/SlpAus/quiz-game-backend/internal/platform/config"
	"gorm.io/gorm"
)

// migrateDB 负责自动迁移题库表结构
func migrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&Question{}); err != nil {
		return fmt.Errorf("无法迁移question表: %w", err)
	}
	fmt.Println("Question数据库表迁移成功。")
	return nil
}

// PrimeDB 是question模块的初始化总入口。
// 只有在配置了重置开关时才会清空并重灌题库，否则沿用已持久化的数据。
func PrimeDB(ctx context.Context, db *gorm.DB, repo Repository, cfg config.SeedConfig) error {
	if err := migrateDB(db); err != nil {
		return err
	}

	if !cfg.ResetDatabase {
		return nil
	}

	seedData, err := LoadSeedFile(cfg.QuestionsFile)
	if err != nil {
		return err
	}
	if err := repo.ReplaceAll(ctx, seedData); err != nil {
		return err
	}

	fmt.Printf("题库已重置，灌入 %d 道题目。\n", len(seedData))
	return nil
}

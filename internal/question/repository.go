package question

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository 定义了题库数据的持久化接口。
type Repository interface {
	// All 返回全部题目，不过滤、不分页。
	All(ctx context.Context) ([]Question, error)

	// ReplaceAll 在一个事务中清空题库并批量写入新的种子数据。
	ReplaceAll(ctx context.Context, questions []Question) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository 创建一个基于GORM/SQLite的题库仓库。
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) All(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := r.db.WithContext(ctx).Order("id asc").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("无法读取题库: %w", err)
	}
	return questions, nil
}

func (r *gormRepository) ReplaceAll(ctx context.Context, questions []Question) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 物理删除旧数据，重灌后的题库不应该带着软删除的残留
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		return fmt.Errorf("重建题库失败: %w", err)
	}
	return nil
}

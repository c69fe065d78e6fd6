package highscore

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository 定义了排行榜数据的持久化接口。
type Repository interface {
	// Upsert 以name为键写入得分：存在则覆盖score，不存在则插入。
	// 整个操作由数据库原子地完成，并返回落库后的条目。
	Upsert(ctx context.Context, name string, score int) (*Highscore, error)

	// TopN 返回按得分降序排列的前n条记录。
	TopN(ctx context.Context, n int) ([]Highscore, error)

	// All 返回全部条目，用于缓存预热。
	All(ctx context.Context) ([]Highscore, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository 创建一个基于GORM/SQLite的排行榜仓库。
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Upsert(ctx context.Context, name string, score int) (*Highscore, error) {
	entry := Highscore{Name: name, Score: score}

	// 单条ON CONFLICT语句代替先查后写，同名并发提交不会产生重复行或丢失更新
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return nil, fmt.Errorf("无法写入排行榜: %w", err)
	}

	// 冲突分支不会回填主键，重新读一次拿到完整的落库结果
	var stored Highscore
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("无法读取排行榜条目: %w", err)
	}
	return &stored, nil
}

func (r *gormRepository) TopN(ctx context.Context, n int) ([]Highscore, error) {
	var entries []Highscore
	if err := r.db.WithContext(ctx).Order("score desc").Limit(n).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("无法查询排行榜: %w", err)
	}
	return entries, nil
}

func (r *gormRepository) All(ctx context.Context) ([]Highscore, error) {
	var entries []Highscore
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("无法读取排行榜全量数据: %w", err)
	}
	return entries, nil
}

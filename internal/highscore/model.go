package highscore

import "gorm.io/gorm"

// Highscore 定义了排行榜条目在SQLite数据库中的持久化模型。
// Name是业务上的唯一键：同名提交会覆盖旧的得分。
type Highscore struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model `json:"-"`

	// Name 是玩家在排行榜上展示的名字，全局唯一。
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// Score 是该名字最近一次提交的得分。
	// 注意：是最近一次，不是历史最高——同名的新提交总是覆盖旧值，
	// 即使新值更低。这是产品确认要保留的行为。
	Score int `gorm:"not null" json:"score"`
}

// Entry 是排行榜条目的对外表示，也是Redis排行缓存的数据单元。
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// DefaultTopN 是排行榜查询默认返回的条目数量。
const DefaultTopN = 10

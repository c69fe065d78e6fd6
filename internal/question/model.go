package question

import "gorm.io/gorm"

// Question 定义了题目在SQLite数据库中的持久化模型。
// 题库通过启动阶段的种子灌入维护，对外只读。
type Question struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model `json:"-"`

	// Description 是题目的背景说明
	Description string `json:"description"`

	// Question 是题干文本
	Question string `json:"question"`

	// Answers 是有序的候选答案列表，以JSON形式存储在单列中
	Answers []string `gorm:"serializer:json" json:"answers"`

	// CorrectAnswer 标识正确答案（可能多个），同样以JSON形式存储
	CorrectAnswer []string `gorm:"serializer:json" json:"correctAnswer"`

	// Why 是答案的解释说明
	Why string `json:"why"`
}

package question

import (
	"encoding/json"
	"fmt"
	"os"
)

// seedQuestion 对应种子JSON文件中单个题目的结构。
// 字段名与原始questions.json保持一致。
type seedQuestion struct {
	Description   string   `json:"description"`
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer []string `json:"correctAnswer"`
	Why           string   `json:"why"`
}

// LoadSeedFile 读取并解析题库种子JSON文件。
func LoadSeedFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取题库种子文件 %s: %w", path, err)
	}

	var seeds []seedQuestion
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("无法解析题库种子文件 %s: %w", path, err)
	}

	questions := make([]Question, len(seeds))
	for i, s := range seeds {
		questions[i] = Question{
			Description:   s.Description,
			Question:      s.Question,
			Answers:       s.Answers,
			CorrectAnswer: s.CorrectAnswer,
			Why:           s.Why,
		}
	}
	return questions, nil
}

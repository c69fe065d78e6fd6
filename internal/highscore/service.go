package highscore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrValidation 表示提交的排行榜条目不合法。
var ErrValidation = errors.New("排行榜输入校验失败")

// Service 实现排行榜的提交和查询逻辑。
type Service struct {
	repo  Repository
	cache RankingCache
}

// NewService 创建排行榜服务。repo和cache由调用方注入。
func NewService(repo Repository, cache RankingCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Submit 记录一个名字的得分。同名条目的得分会被新值覆盖（即使更低）。
func (s *Service) Submit(ctx context.Context, name string, score int) (*Highscore, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: 名字不能为空", ErrValidation)
	}

	stored, err := s.repo.Upsert(ctx, name, score)
	if err != nil {
		return nil, err
	}

	// SQLite是事实来源；缓存写入失败由健康检查恢复时的重建兜底
	if err := s.cache.Set(ctx, stored.Name, stored.Score); err != nil {
		fmt.Printf("警告: 更新排行缓存失败: %v\n", err)
	}

	return stored, nil
}

// TopScores 返回按得分降序排列的前n个条目。
// 优先走Redis排行缓存；缓存不可用时退回SQLite查询。
func (s *Service) TopScores(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = DefaultTopN
	}

	entries, err := s.cache.Top(ctx, n)
	if err == nil {
		return entries, nil
	}
	fmt.Printf("警告: 排行缓存不可用，退回数据库查询: %v\n", err)

	stored, err := s.repo.TopN(ctx, n)
	if err != nil {
		return nil, err
	}

	entries = make([]Entry, len(stored))
	for i, h := range stored {
		entries[i] = Entry{Name: h.Name, Score: h.Score}
	}
	return entries, nil
}

package question

import "context"

// Service 实现题库的查询和重灌逻辑。
type Service struct {
	repo Repository
}

// NewService 创建题库服务。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List 返回完整题库，顺序与种子数据一致。
func (s *Service) List(ctx context.Context) ([]Question, error) {
	return s.repo.All(ctx)
}

// Reseed 清空题库并灌入新的种子数据。
// 只在启动阶段由配置开关触发，不暴露为HTTP接口。
func (s *Service) Reseed(ctx context.Context, seedData []Question) error {
	return s.repo.ReplaceAll(ctx, seedData)
}

package startup

import (
	"context"
	"fmt"

	"github.com/SlpAus/quiz-game-backend/internal/highscore"
	"github.com/SlpAus/quiz-game-backend/internal/platform/config"
	"github.com/SlpAus/quiz-game-backend/internal/question"
	"github.com/SlpAus/quiz-game-backend/internal/user"
	"gorm.io/gorm"
)

// Dependencies 汇集了初始化流程需要的全部外部句柄。
// 所有依赖都由cmd/server构造后显式传入。
type Dependencies struct {
	DB   *gorm.DB
	Seed config.SeedConfig

	UserRepo  user.Repository
	UserCache user.TokenCache

	HighscoreRepo  highscore.Repository
	HighscoreCache highscore.RankingCache

	QuestionRepo question.Repository
}

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication(ctx context.Context, deps Dependencies) error {
	fmt.Println("开始应用首次初始化...")

	if err := question.PrimeDB(ctx, deps.DB, deps.QuestionRepo, deps.Seed); err != nil {
		return err
	}
	if err := user.PrimeCachedDB(ctx, deps.DB, deps.UserRepo, deps.UserCache); err != nil {
		return err
	}
	if err := highscore.PrimeCachedDB(ctx, deps.DB, deps.HighscoreRepo, deps.HighscoreCache); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 在运行时热重建所有Redis缓存。
// 由健康检查在Redis恢复后调用。
func RebuildCache(ctx context.Context, deps Dependencies) error {
	fmt.Println("开始缓存热重建...")

	if err := user.WarmupCache(ctx, deps.UserRepo, deps.UserCache); err != nil {
		return err
	}
	if err := highscore.WarmupCache(ctx, deps.HighscoreRepo, deps.HighscoreCache); err != nil {
		return err
	}

	fmt.Println("缓存热重建完成。")
	return nil
}

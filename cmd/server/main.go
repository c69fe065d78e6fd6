package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SlpAus/quiz-game-backend/api"
	"github.com/SlpAus/quiz-game-backend/internal/highscore"
	"github.com/SlpAus/quiz-game-backend/internal/platform/config"
	"github.com/SlpAus/quiz-game-backend/internal/platform/database"
	"github.com/SlpAus/quiz-game-backend/internal/platform/health"
	"github.com/SlpAus/quiz-game-backend/internal/platform/shutdown"
	"github.com/SlpAus/quiz-game-backend/internal/platform/startup"
	"github.com/SlpAus/quiz-game-backend/internal/question"
	"github.com/SlpAus/quiz-game-backend/internal/user"
	"github.com/SlpAus/quiz-game-backend/pkg/lifecycle"
	"github.com/joho/godotenv"
)

func main() {
	// .env是可选的，环境变量也可以直接来自进程环境
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败，无法启动: %v", err))
	}

	ctx := context.Background()

	db, err := database.OpenDB(cfg.Database.Sqlite)
	if err != nil {
		panic(fmt.Sprintf("数据库初始化失败，无法启动: %v", err))
	}
	rdb, err := database.OpenRedis(ctx, cfg.Database.Redis)
	if err != nil {
		panic(fmt.Sprintf("Redis初始化失败，无法启动: %v", err))
	}

	// 1. 组装各模块的仓库、缓存和服务（依赖全部显式注入）
	userRepo := user.NewRepository(db)
	userCache := user.NewTokenCache(rdb)
	userService := user.NewService(userRepo, userCache)

	highscoreRepo := highscore.NewRepository(db)
	highscoreCache := highscore.NewRankingCache(rdb)
	highscoreService := highscore.NewService(highscoreRepo, highscoreCache)

	questionRepo := question.NewRepository(db)
	questionService := question.NewService(questionRepo)

	deps := startup.Dependencies{
		DB:             db,
		Seed:           cfg.Seed,
		UserRepo:       userRepo,
		UserCache:      userCache,
		HighscoreRepo:  highscoreRepo,
		HighscoreCache: highscoreCache,
		QuestionRepo:   questionRepo,
	}

	// 2. 执行应用首次启动初始化流程（迁移、题库种子、缓存预热）
	if err := startup.InitializeApplication(ctx, deps); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 3. 阻塞式执行一次启动后健康检查，再异步启动持续检查器
	checker := health.NewChecker(rdb, func(ctx context.Context) error {
		return startup.RebuildCache(ctx, deps)
	})
	fmt.Println("正在执行启动后健康检查...")
	checker.PerformCheck(ctx)

	gracefulMgr := lifecycle.NewManager()
	healthHandle, err := gracefulMgr.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(fmt.Sprintf("注册健康检查服务失败: %v", err))
	}
	go checker.Run(healthHandle)

	// 4. 组装路由并启动HTTP服务器
	r := api.NewRouter(cfg.Server, api.Handlers{
		User:        user.NewHandler(userService),
		Highscore:   highscore.NewHandler(highscoreService),
		Question:    question.NewHandler(questionService),
		RequireAuth: user.RequireAuthMiddleware(userService),
	})

	server := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	// 5. 阻塞等待停机信号并执行优雅停机
	coordinator := shutdown.NewCoordinator(gracefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}

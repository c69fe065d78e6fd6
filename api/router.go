package api

import (
	"time"

	"github.com/SlpAus/quiz-game-backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter 创建并配置Gin引擎：运行模式、CORS和全部路由。
func NewRouter(cfg config.ServerConfig, handlers Handlers) *gin.Engine {
	gin.SetMode(cfg.Mode)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	SetupRoutes(r, handlers)
	return r
}

package api

import (
	"net/http"

	"github.com/SlpAus/quiz-game-backend/internal/highscore"
	"github.com/SlpAus/quiz-game-backend/internal/question"
	"github.com/SlpAus/quiz-game-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// Handlers 汇集了各个模块的HTTP处理器，由cmd/server构造后传入。
type Handlers struct {
	User      *user.Handler
	Highscore *highscore.Handler
	Question  *question.Handler

	// RequireAuth 是受保护路由使用的认证中间件。
	RequireAuth gin.HandlerFunc
}

// RouteInfo 是 GET / 接口中单条路由的描述。
type RouteInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine, h Handlers) {
	// 账号相关的路由
	router.POST("/users", h.User.SignUp)
	router.POST("/sessions", h.User.Login)
	router.POST("/logout", h.RequireAuth, h.User.Logout)
	router.POST("/userscore", h.RequireAuth, h.User.UpdateScore)

	// 排行榜相关的路由
	router.GET("/highscore", h.Highscore.GetHighscore)
	router.POST("/highscore", h.Highscore.PostHighscore)

	// 题库相关的路由
	router.GET("/questions", h.Question.GetQuestions)

	// 根路由列出全部已注册的接口，方便前端自查
	router.GET("/", func(c *gin.Context) {
		routes := router.Routes()
		list := make([]RouteInfo, 0, len(routes))
		for _, r := range routes {
			list = append(list, RouteInfo{Method: r.Method, Path: r.Path})
		}
		c.JSON(http.StatusOK, list)
	})
}

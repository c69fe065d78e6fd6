package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler 持有账号相关的所有HTTP处理函数。
type Handler struct {
	service *Service
}

// NewHandler 创建账号模块的HTTP处理器。
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SignUpRequestBody 定义了注册接口请求体的JSON结构
type SignUpRequestBody struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// SignUp 处理 POST /users 注册请求
func (h *Handler) SignUp(c *gin.Context) {
	var body SignUpRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无法创建账号", "error": "请求格式错误: " + err.Error()})
		return
	}

	u, err := h.service.SignUp(c.Request.Context(), body.Name, body.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无法创建账号", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":      u.UUID,
		"accessToken": u.AccessToken,
	})
}

// LoginRequestBody 定义了登录接口请求体的JSON结构
type LoginRequestBody struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Login 处理 POST /sessions 登录请求
// 为避免泄露账号是否存在，任何失败都返回同样的404响应
func (h *Handler) Login(c *gin.Context) {
	var body LoginRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "账号不存在或密码错误"})
		return
	}

	u, err := h.service.Login(c.Request.Context(), body.Name, body.Password)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "账号不存在或密码错误"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":      u.UUID,
		"accessToken": u.AccessToken,
		"score":       u.Score,
		"userName":    u.Name,
	})
}

// LogoutRequestBody 定义了登出接口请求体的JSON结构
type LogoutRequestBody struct {
	UserID string `json:"userId" binding:"required"`
}

// Logout 处理 POST /logout 请求。路由上挂有认证中间件。
func (h *Handler) Logout(c *gin.Context) {
	var body LogoutRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无法登出", "error": "请求格式错误: " + err.Error()})
		return
	}

	// 持有合法令牌不代表可以操作别人的账号
	if authed, ok := IdentityFromContext(c); ok && authed.UUID != body.UserID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "不能操作其他账号"})
		return
	}

	u, err := h.service.Logout(c.Request.Context(), body.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无法登出", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":      u.UUID,
		"accessToken": nil,
	})
}

// UpdateScoreRequestBody 定义了得分更新接口请求体的JSON结构
type UpdateScoreRequestBody struct {
	UserID      string `json:"userId" binding:"required"`
	ScoreNumber *int   `json:"scoreNumber" binding:"required"`
}

// UpdateScore 处理 POST /userscore 请求。路由上挂有认证中间件。
// scoreNumber是增量，可以为负。
func (h *Handler) UpdateScore(c *gin.Context) {
	var body UpdateScoreRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无法更新得分", "error": "请求格式错误: " + err.Error()})
		return
	}

	if authed, ok := IdentityFromContext(c); ok && authed.UUID != body.UserID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "不能操作其他账号"})
		return
	}

	newScore, err := h.service.AddScore(c.Request.Context(), body.UserID, *body.ScoreNumber)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无法更新得分", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": newScore})
}

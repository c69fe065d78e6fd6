package question

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler 持有题库相关的HTTP处理函数。
type Handler struct {
	service *Service
}

// NewHandler 创建题库模块的HTTP处理器。
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetQuestions 处理 GET /questions，返回完整题库
func (h *Handler) GetQuestions(c *gin.Context) {
	questions, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无法获取题目", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, questions)
}

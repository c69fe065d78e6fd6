package highscore

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler 持有排行榜相关的所有HTTP处理函数。
type Handler struct {
	service *Service
}

// NewHandler 创建排行榜模块的HTTP处理器。
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetHighscore 处理 GET /highscore，返回得分降序的前10条
func (h *Handler) GetHighscore(c *gin.Context) {
	entries, err := h.service.TopScores(c.Request.Context(), DefaultTopN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无法获取排行榜", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SubmitRequestBody 定义了排行榜提交接口请求体的JSON结构
type SubmitRequestBody struct {
	Name  string `json:"name"`
	Score *int   `json:"score" binding:"required"`
}

// PostHighscore 处理 POST /highscore，写入或覆盖一个名字的得分
func (h *Handler) PostHighscore(c *gin.Context) {
	var body SubmitRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无法提交得分", "error": "请求格式错误: " + err.Error()})
		return
	}

	stored, err := h.service.Submit(c.Request.Context(), body.Name, *body.Score)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无法提交得分", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, stored)
}

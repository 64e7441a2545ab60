package controllers

import (
	"FeedbackGo/config"
	"FeedbackGo/models"
	"FeedbackGo/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// 上下文数据块缓存的有效期
const contextCacheTTL = 60 * time.Second

type ChatController struct {
	insightService *services.InsightService
}

func NewChatController(insightService *services.InsightService) *ChatController {
	return &ChatController{
		insightService: insightService,
	}
}

// Ask 处理管理员对反馈数据的自由提问
func (c *ChatController) Ask(ctx *gin.Context) {
	var request models.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	contextBlock, err := c.loadReviewContext(ctx)
	if err != nil {
		config.Logger.Errorw("获取问答上下文失败", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取反馈数据失败"})
		return
	}

	// 回答管线对外不失败，最坏情况返回固定段落
	reply := c.insightService.AnswerWithContext(ctx, request.Message, contextBlock)

	ctx.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}

// loadReviewContext 返回最近50条记录拼成的上下文数据块，优先读缓存
func (c *ChatController) loadReviewContext(ctx *gin.Context) (string, error) {
	cached, err := config.RedisClient.Get(ctx, recentContextKey).Result()
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		config.Logger.Errorw("读取上下文缓存失败", "error", err)
	}

	var reviews []models.Review
	if err := config.DB.Order("created_at desc").Limit(50).Find(&reviews).Error; err != nil {
		return "", err
	}

	contextBlock := services.FormatReviewContext(reviews)

	if err := config.RedisClient.Set(ctx, recentContextKey, contextBlock, contextCacheTTL).Err(); err != nil {
		config.Logger.Errorw("写入上下文缓存失败", "error", err)
	}

	return contextBlock, nil
}

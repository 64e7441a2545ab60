package controllers

import (
	"FeedbackGo/config"
	"FeedbackGo/models"
	"FeedbackGo/services"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// recentContextKey 问答接口缓存的上下文数据块的Redis键，
// 新评价入库后删除该键使缓存失效
const recentContextKey = "feedback:recent_context"

type FeedbackController struct {
	analysisService *services.AnalysisService
	wg              sync.WaitGroup
}

func NewFeedbackController(analysisService *services.AnalysisService) *FeedbackController {
	return &FeedbackController{
		analysisService: analysisService,
	}
}

// SubmitFeedback 处理反馈提交：分析、入库并返回完整记录
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var request models.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	// 分析管线对外不失败，这里的错误只可能是未知模板版本（已在校验中拦截）
	analysis, prompt, err := c.analysisService.Analyze(ctx, request.PromptVersion, request.Rating, request.Review)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	metadata, _ := json.Marshal(map[string]string{
		"source":    "web_submission",
		"userAgent": ctx.Request.UserAgent(),
	})

	review := models.Review{
		ID:            uuid.New().String(),
		Rating:        request.Rating,
		Content:       request.Review,
		Response:      analysis.Response,
		Summary:       analysis.Summary,
		Action:        analysis.Action,
		PromptVersion: request.PromptVersion,
		Metadata:      string(metadata),
		CreatedAt:     time.Now().UTC(),
	}

	if err := config.DB.Create(&review).Error; err != nil {
		config.Logger.Errorw("存储反馈记录失败", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "存储反馈记录失败"})
		return
	}

	// 新记录入库后让问答上下文缓存失效
	if err := config.RedisClient.Del(ctx, recentContextKey).Err(); err != nil {
		config.Logger.Errorw("清除上下文缓存失败", "error", err)
	}

	// 在协程中记录本次生成日志
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		output, _ := json.Marshal(analysis)
		logEntry := models.GenerationLog{
			ID:        uuid.New().String(),
			Prompt:    prompt,
			Output:    string(output),
			Version:   request.PromptVersion,
			CreatedAt: time.Now().UTC(),
		}
		if err := config.DB.Create(&logEntry).Error; err != nil {
			config.Logger.Errorw("存储生成日志失败",
				"error", err,
				"version", request.PromptVersion,
			)
		}
	}()

	ctx.JSON(http.StatusOK, review)
}

// ListFeedback 按创建时间倒序返回全部反馈记录
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Order("created_at desc").Find(&reviews).Error; err != nil {
		config.Logger.Errorw("获取反馈记录失败", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取反馈记录失败"})
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// 添加 Wait 方法用于优雅关闭
func (c *FeedbackController) Wait() {
	c.wg.Wait()
}

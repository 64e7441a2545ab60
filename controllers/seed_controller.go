package controllers

import (
	"FeedbackGo/config"
	"FeedbackGo/models"
	"FeedbackGo/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SeedController struct{}

// 演示用的样例评价
var sampleReviews = []struct {
	Rating        int
	Content       string
	PromptVersion string
}{
	{5, "Absolutely streamlined experience. The UI is gorgeous.", "A"},
	{2, "Navigation is confusing and I lost my data.", "A"},
	{4, "Good but needs dark mode toggle.", "B"},
	{1, "Crash on startup. Unusable.", "A"},
	{5, "Impressive speed and responsiveness.", "C"},
}

// SeedReviews 插入样例评价数据，仅限内部调用
func (sc *SeedController) SeedReviews(ctx *gin.Context) {
	for _, sample := range sampleReviews {
		review := models.Review{
			ID:            utils.GenerateID(),
			Rating:        sample.Rating,
			Content:       sample.Content,
			Response:      "Automated Response",
			Summary:       "Synthetic Data",
			Action:        "Review Seed Data",
			PromptVersion: sample.PromptVersion,
			Metadata:      `{"source":"seed"}`,
			CreatedAt:     time.Now().UTC(),
		}

		if err := config.DB.Create(&review).Error; err != nil {
			config.Logger.Errorw("插入样例数据失败", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "插入样例数据失败"})
			return
		}
	}

	// 样例数据入库后让问答上下文缓存失效
	if err := config.RedisClient.Del(ctx, recentContextKey).Err(); err != nil {
		config.Logger.Errorw("清除上下文缓存失败", "error", err)
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "样例数据插入成功", "count": len(sampleReviews)})
}

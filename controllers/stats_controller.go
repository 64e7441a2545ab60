package controllers

import (
	"FeedbackGo/config"
	"FeedbackGo/models"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsController struct{}

// GetStats 返回反馈统计数据：总量、平均分、差评数和星级分布
func (sc *StatsController) GetStats(ctx *gin.Context) {
	var total int64
	if err := config.DB.Model(&models.Review{}).Count(&total).Error; err != nil {
		config.Logger.Errorw("统计反馈总数失败", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计数据失败"})
		return
	}

	var averageRating float64
	if err := config.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&averageRating).Error; err != nil {
		config.Logger.Errorw("计算平均评分失败", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计数据失败"})
		return
	}

	var negativeCount int64
	if err := config.DB.Model(&models.Review{}).
		Where("rating <= ?", 2).
		Count(&negativeCount).Error; err != nil {
		config.Logger.Errorw("统计差评数量失败", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计数据失败"})
		return
	}

	// 按星级统计分布
	type ratingCount struct {
		Rating int
		Count  int64
	}
	var counts []ratingCount
	if err := config.DB.Model(&models.Review{}).
		Select("rating, COUNT(*) as count").
		Group("rating").
		Scan(&counts).Error; err != nil {
		config.Logger.Errorw("统计评分分布失败", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计数据失败"})
		return
	}

	countByRating := make(map[int]int64, len(counts))
	for _, c := range counts {
		countByRating[c.Rating] = c.Count
	}

	distribution := make([]models.StarBucket, 0, 5)
	for star := 1; star <= 5; star++ {
		distribution = append(distribution, models.StarBucket{
			Name:  fmt.Sprintf("%d Star", star),
			Count: countByRating[star],
		})
	}

	ctx.JSON(http.StatusOK, models.StatsResponse{
		Total:         total,
		AverageRating: averageRating,
		NegativeCount: negativeCount,
		Distribution:  distribution,
	})
}

package routes

import (
	"FeedbackGo/config"
	"FeedbackGo/controllers"
	"FeedbackGo/middleware"
	"FeedbackGo/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册全部路由，返回反馈控制器供优雅关闭时等待后台任务
func RegisterRoutes(r *gin.Engine, conf config.Config, client *services.LLMClient) *controllers.FeedbackController {
	generationService := services.NewGenerationService(client)
	analysisService := services.NewAnalysisService(generationService)
	insightService := services.NewInsightService(generationService)

	feedbackController := controllers.NewFeedbackController(analysisService)
	chatController := controllers.NewChatController(insightService)
	authController := controllers.NewAuthController(conf.AdminPassword)
	statsController := controllers.StatsController{}
	seedController := controllers.SeedController{}

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/feedback", feedbackController.SubmitFeedback)
		public.POST("/auth/admin", authController.AdminLogin)
	}

	// 需要认证的管理端路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		private.GET("/feedback", feedbackController.ListFeedback)
		private.POST("/chat", chatController.Ask)
		private.GET("/stats", statsController.GetStats)
	}

	// 内部路由组（仅限服务器内部调用）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	{
		internal.POST("/seed", seedController.SeedReviews)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	return feedbackController
}

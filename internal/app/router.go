package app

import (
	"studyhub_backend/docs"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/dashboard", c.dashboard.GetDashboard)
		public.POST("/schedule/grades/sync", c.schedule.SyncGrades)
	}

	// 2. 按用户隔离的路由：可选认证，未登录时共用默认集合
	api := router.Group("/api")
	api.Use(middleware.OptionalAuthMiddleware(&cfg.JWT))
	{
		goals := api.Group("/goals")
		{
			goals.GET("", c.goal.ListGoals)
			goals.POST("", c.goal.CreateGoal)
			goals.GET("/:id", c.goal.GetGoal)
			goals.PATCH("/:id", c.goal.UpdateGoal)
			goals.DELETE("/:id", c.goal.DeleteGoal)
			goals.POST("/:id/advance", c.goal.AdvanceGoal)
		}

		api.GET("/schedule", c.schedule.GetStatus)
		api.POST("/schedule", c.schedule.Generate)
	}
}

package app

import (
	"awareness_backend/docs"
	"awareness_backend/internal/config"
	"awareness_backend/internal/middleware"
	"awareness_backend/internal/util"
	"awareness_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Version = Version
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", c.health.Root)
	router.GET("/health", c.health.HealthCheck)

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		assessments := public.Group("/assessments")
		assessments.GET("", c.assessment.ListDomains)
		assessments.GET("/:domain/questions", c.assessment.GetQuestions)
		assessments.POST("/:domain/assess", c.assessment.Assess)
		assessments.GET("/:domain/leaderboard", c.assessment.Leaderboard)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWT.Secret), middleware.RoleMiddleware(util.RoleAdmin))
	{
		admin.GET("/assessments/:domain/stats", c.assessment.Stats)
		admin.GET("/assessments/:domain/history", c.assessment.History)
	}
}

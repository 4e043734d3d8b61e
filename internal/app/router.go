package app

import (
	"study_planner_backend/internal/config"
	"study_planner_backend/internal/middleware"
	"study_planner_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/health", c.health.HealthCheck)

	// 业务路由全部要求登录
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		subjects := authGroup.Group("/subjects")
		{
			subjects.POST("", c.subject.Create)
			subjects.GET("", c.subject.List)
			subjects.GET("/:id", c.subject.Get)
			subjects.PUT("/:id", c.subject.Update)
			subjects.DELETE("/:id", c.subject.Delete)
		}

		weekConfig := authGroup.Group("/week-config")
		{
			weekConfig.GET("", c.weekConfig.Get)
			weekConfig.PUT("", c.weekConfig.Update)
		}

		schedule := authGroup.Group("/schedule")
		{
			schedule.GET("", c.schedule.Get)
			schedule.POST("/generate", c.schedule.Generate)
			schedule.DELETE("", c.schedule.Delete)
		}

		ai := authGroup.Group("/ai")
		{
			ai.GET("/insights", c.ai.Insights)
			ai.POST("/train", c.ai.Train)
			ai.GET("/predict", c.ai.Predict)
			ai.GET("/optimize", c.ai.Optimize)
		}

		streak := authGroup.Group("/streak")
		{
			streak.GET("", c.streak.Get)
			streak.POST("", c.streak.Record)
		}

		progress := authGroup.Group("/progress")
		{
			progress.POST("/session", c.progress.RecordSession)
			progress.GET("/analytics", c.progress.Analytics)
			progress.GET("/subject/:subjectId", c.progress.SubjectProgress)
		}

		materials := authGroup.Group("/materials")
		{
			materials.POST("", c.material.Create)
			materials.GET("", c.material.List)
			materials.PUT("/:id", c.material.Update)
			materials.DELETE("/:id", c.material.Delete)
		}
	}
}

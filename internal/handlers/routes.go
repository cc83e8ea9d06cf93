package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/viiteer2708/mega-energia-sub001/docs"
	"github.com/viiteer2708/mega-energia-sub001/internal/middleware"
)

// RouterOptions configures the routes registered by Register
type RouterOptions struct {
	InternalAPIKey    string
	RequestsPerSecond float64
	Burst             int
	Uploads           middleware.RateLimiterConfig
}

// Register mounts every route of the commission service
func Register(ctx context.Context, router *gin.Engine, schedules *ScheduleHandler, opts RouterOptions) {
	router.GET("/health", HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	internal := router.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware(opts.InternalAPIKey))
	internal.Use(middleware.ServiceRateLimitMiddleware(opts.RequestsPerSecond, opts.Burst))
	{
		internal.GET("/health", HealthCheck)

		uploads := middleware.RateLimitMiddleware(ctx, opts.Uploads)
		sched := internal.Group("/schedules")
		{
			sched.POST("/parse", uploads, schedules.ParseSchedule)
			sched.POST("/validate", uploads, schedules.ValidateSchedule)
			sched.POST("/validate/json", schedules.ValidateScheduleJSON)
			sched.GET("/template", schedules.GetTemplate)
		}

		internal.GET("/companies/:name/schedule", schedules.ExportCompanySchedule)
	}
}

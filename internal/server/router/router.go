package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jesquared/prophealth/internal/server/handlers"
)

// New wires the Gin engine with the dashboard API routes and middlewares.
func New(auth *handlers.AuthHandler, properties *handlers.PropertyHandler, dashboard *handlers.DashboardHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.POST("/session", auth.Login)
	api.DELETE("/session", auth.Logout)

	protected := api.Group("", auth.RequireSession())
	{
		protected.GET("/properties", properties.List)
		protected.POST("/properties", properties.Create)
		protected.GET("/properties/:id", properties.Get)
		protected.PUT("/properties/:id", properties.Update)
		protected.DELETE("/properties/:id", properties.Delete)
		protected.POST("/properties/:id/documents", properties.UploadDocument)
		protected.POST("/properties/:id/image", properties.UploadImage)
		protected.GET("/properties/:id/health", properties.Health)
		protected.GET("/properties/:id/schedule", properties.Schedule)
		protected.GET("/properties/:id/maintenance", properties.MaintenanceHistory)

		protected.POST("/maintenance", dashboard.AddMaintenance)

		protected.GET("/tenants", dashboard.ListTenants)
		protected.POST("/tenants", dashboard.RegisterTenant)
		protected.POST("/tenants/:id/verify", dashboard.VerifyTenant)

		protected.GET("/costs", dashboard.CostEstimate)
		protected.GET("/regions/:zip", dashboard.RegionalInfo)
		protected.GET("/weather/:zip", dashboard.Weather)
		protected.GET("/portfolio/summary", dashboard.PortfolioSummary)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

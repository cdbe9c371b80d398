package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/shared/middleware"
	"authorsite-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupIntakeRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// PUBLIC ROUTES
// ========================================
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/author", c.SettingsHandler.GetAuthor)
	v1.GET("/hero", c.SettingsHandler.GetHero)
	v1.GET("/faqs", c.FaqHandler.List)
	v1.GET("/extras", c.ExtraHandler.ListPublic)

	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
	}
}

// ========================================
// INTAKE ROUTES
// ========================================
func setupIntakeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/newsletter/subscribe", c.NewsletterHandler.Subscribe)
	v1.POST("/contact/inquiry", c.ContactHandler.Submit)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Login is the only admin endpoint outside the auth gate.
	v1.POST("/admin/login", c.SettingsHandler.Login)

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(c.JWTManager))
	{
		admin.POST("/change-password", c.SettingsHandler.ChangePassword)

		admin.PUT("/author", c.SettingsHandler.UpdateAuthor)
		admin.PUT("/hero", c.SettingsHandler.UpdateHero)

		books := admin.Group("/books")
		{
			books.POST("", c.BookHandler.Create)
			books.PUT("/:id", c.BookHandler.Update)
			books.DELETE("/:id", c.BookHandler.Delete)
		}

		faqs := admin.Group("/faqs")
		{
			faqs.POST("", c.FaqHandler.Create)
			faqs.PUT("/:id", c.FaqHandler.Update)
			faqs.DELETE("/:id", c.FaqHandler.Delete)
		}

		extras := admin.Group("/extras")
		{
			extras.GET("", c.ExtraHandler.ListAll)
			extras.POST("", c.ExtraHandler.Create)
			extras.PUT("/:id", c.ExtraHandler.Update)
			extras.DELETE("/:id", c.ExtraHandler.Delete)
		}

		admin.GET("/newsletters", c.NewsletterHandler.List)
		admin.GET("/newsletters/export", c.NewsletterHandler.Export)
		admin.GET("/contacts", c.ContactHandler.List)
		admin.GET("/contacts/export", c.ContactHandler.Export)

		admin.POST("/upload", c.UploadHandler.Upload)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

// Package routes defines the HTTP routes for the profile service.
package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pratyay/profile-service/internal/api/handlers"
	"github.com/pratyay/profile-service/internal/api/middleware"
)

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler    *handlers.HealthHandler
	DocumentsHandler *handlers.DocumentsHandler
	BlogsHandler     *handlers.BlogsHandler
	// EnableDocs serves the OpenAPI UI under /docs.
	EnableDocs bool
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	r.GET("/health", cfg.HealthHandler.Health)
	r.GET("/ready", cfg.HealthHandler.Ready)
	r.GET("/live", cfg.HealthHandler.Live)

	r.GET("/blogs", cfg.BlogsHandler.GetPosts)

	// Path-addressed document routes
	r.POST("/message", cfg.DocumentsHandler.Insert)
	data := r.Group("/data")
	{
		data.GET("", cfg.DocumentsHandler.Find)
		data.GET("/:database/:collection/:id", cfg.DocumentsHandler.Get)
		data.PUT("/:database/:collection/:id", cfg.DocumentsHandler.Update)
		data.DELETE("/:database/:collection/:id", cfg.DocumentsHandler.Delete)

		// Header-addressed mirrors
		headers := data.Group("/headers")
		{
			headers.POST("", cfg.DocumentsHandler.InsertByHeaders)
			headers.GET("", cfg.DocumentsHandler.FindByHeaders)
			headers.GET("/document", cfg.DocumentsHandler.GetByHeaders)
			headers.PUT("/document", cfg.DocumentsHandler.UpdateByHeaders)
			headers.DELETE("/document", cfg.DocumentsHandler.DeleteByHeaders)
		}
	}

	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.HandleMethodNotAllowed = true
	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware, corsCfg middleware.CORSConfig) {
	// Apply global middleware
	r.Use(loggingMw.RequestLogger())
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(middleware.NewCORSMiddleware(corsCfg))

	// Setup routes
	Setup(r, cfg)
}

package api

import (
	"github.com/gin-gonic/gin"
	"github.com/minidns-io/minidns/internal/api/handlers"
	"github.com/minidns-io/minidns/internal/api/middleware"
	"github.com/minidns-io/minidns/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/minidns-io/minidns/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	dns := api.Group("/dns")

	// Optional API key protection for record operations.
	if cfg != nil && cfg.API.APIKey != "" {
		dns.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	dns.POST("", h.AddRecord)
	dns.GET("/:hostname/records", h.ListRecords)
	dns.GET("/:hostname", h.ResolveHostname)
	dns.DELETE("/:hostname", h.DeleteRecord)
}

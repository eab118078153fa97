package main

import (
	"load-relay/internal/auth"
	"load-relay/internal/httpapi"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers delegate to internal modules.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, apiKey string) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Everything else requires the shared workflow API key.
	guard := auth.RequireAPIKey(apiKey)

	r.POST("/process-load", guard, h.ProcessLoad)
	r.POST("/process-call", guard, h.ProcessCall)
	r.GET("/metrics", guard, h.Metrics)
	r.GET("/dashboard", guard, h.Dashboard)
}

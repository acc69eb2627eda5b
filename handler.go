package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"lg/fitcalc-api/internal/engine"
)

// Handler holds shared dependencies (derivation engine, auth config) for all
// route handlers.
type Handler struct {
	engine *engine.Engine

	// passwordHash is the bcrypt hash guarding the API. Empty disables auth.
	passwordHash []byte
	// token is issued by login and checked by authMiddleware. It is generated
	// at startup, so a restart logs the user out.
	token string
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// requestLogger logs method, route, status and duration once the handler
// chain has finished.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	}
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.GET("/api/healthz", h.healthz)
	router.POST("/api/login", h.login)

	// Authenticated routes (open when no password hash is configured)
	api := router.Group("/api", h.authMiddleware())
	api.GET("/profile", h.getProfile)
	api.GET("/profile/defaults", h.getProfileDefaults)
	api.PUT("/profile", h.putProfile)
	api.DELETE("/profile", h.deleteProfile)
	api.GET("/dashboard", h.getDashboard)
	api.GET("/results", h.getResults)
	api.GET("/meal-plan", h.getMealPlan)
}

// healthz reports liveness. GET /api/healthz.
func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

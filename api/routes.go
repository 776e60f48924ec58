package api

import (
	"net/http"

	"pagegen_server/internal/api"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints.
func RegisterRoutes(router *gin.Engine, h *api.APIHandler) {

	// --- Generation Endpoints ---
	router.POST("/generate", h.Generate) // Generate a new page from a prompt
	router.POST("/followup", h.Followup) // Change a previously generated page
	router.POST("/retry", h.Retry)       // Re-request after unusable model output

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

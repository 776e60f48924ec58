package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"pagegen_server/internal/ai"
	"pagegen_server/internal/ai/prompts"
	"pagegen_server/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator *ai.Generator
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator *ai.Generator) *APIHandler {
	return &APIHandler{generator: generator}
}

// --- Structs for API Requests ---

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type FollowupRequest struct {
	Prompt string            `json:"prompt" binding:"required"`
	Code   *types.CodeBundle `json:"code" binding:"required"`
}

type RetryRequest struct {
	OriginalPrompt string `json:"originalPrompt" binding:"required"`
	BadJSON        string `json:"badJson" binding:"required"`
}

// --- API Handlers ---

// POST /generate
func (h *APIHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt must not be empty"})
		return
	}

	genID := uuid.New().String()
	log.Printf("Generation %s: new page request", genID)

	h.respond(c, genID, req.Prompt)
}

// POST /followup
func (h *APIHandler) Followup(c *gin.Context) {
	var req FollowupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	currentCode, err := json.Marshal(req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid code bundle: " + err.Error()})
		return
	}

	genID := uuid.New().String()
	log.Printf("Generation %s: followup request", genID)

	h.respond(c, genID, prompts.Followup(req.Prompt, string(currentCode)))
}

// POST /retry
func (h *APIHandler) Retry(c *gin.Context) {
	var req RetryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	genID := uuid.New().String()
	log.Printf("Generation %s: retry request (%d bytes of bad output)", genID, len(req.BadJSON))

	h.respond(c, genID, prompts.Retry(req.OriginalPrompt, req.BadJSON))
}

// respond runs the shared generation procedure and writes the reply. Both
// outcomes are HTTP 200: the frontend branches on the payload shape, so
// generation failures are carried in-body rather than as error statuses.
func (h *APIHandler) respond(c *gin.Context, genID, instruction string) {
	bundle, genErr := h.generator.Generate(c.Request.Context(), genID, instruction)
	if genErr != nil {
		c.JSON(http.StatusOK, genErr)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

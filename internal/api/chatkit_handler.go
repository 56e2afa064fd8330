package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/workout-generator-web/internal/chatkit"
	"github.com/workout-generator-web/internal/models"
	"github.com/workout-generator-web/internal/service"
)

// ChatKitHandler proxies chat session creation so the API credential stays
// server-side.
type ChatKitHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewChatKitHandler creates a new ChatKitHandler
func NewChatKitHandler(services *service.Services, log zerolog.Logger) *ChatKitHandler {
	return &ChatKitHandler{
		services: services,
		log:      log.With().Str("handler", "chatkit").Logger(),
	}
}

// CreateSession handles POST /api/chatkit-session. Validation failures never
// reach the upstream; upstream statuses are relayed as-is; transport failures
// collapse to a generic 500 with detail only in the logs.
func (h *ChatKitHandler) CreateSession(c *gin.Context) {
	var req models.ChatSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.WorkflowID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workflowId is required"})
		return
	}

	result, err := h.services.Chat.CreateSession(c.Request.Context(), req.WorkflowID, req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
			return
		}

		var upstream *chatkit.UpstreamError
		if errors.As(err, &upstream) {
			h.log.Error().
				Int("upstream_status", upstream.Status).
				Str("details", upstream.Details).
				Msg("ChatKit API error")
			c.JSON(upstream.Status, gin.H{
				"error":   "Failed to create ChatKit session",
				"details": upstream.Details,
				"status":  upstream.Status,
			})
			return
		}

		h.log.Error().Err(err).Msg("Error creating ChatKit session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"client_secret": result.ClientSecret})
}

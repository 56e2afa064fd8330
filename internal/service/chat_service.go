package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/workout-generator-web/internal/models"
)

// ErrNotConfigured means the server-held ChatKit credential is missing. The
// outbound call is never attempted in that case so the credential's absence
// cannot leak into the upstream error path.
var ErrNotConfigured = errors.New("chatkit credential not configured")

// chatService is the concrete implementation of ChatService
type chatService struct {
	client     SessionClient
	configured bool
	log        zerolog.Logger
}

func newChatService(client SessionClient, configured bool, log zerolog.Logger) ChatService {
	return &chatService{
		client:     client,
		configured: configured,
		log:        log.With().Str("service", "chat").Logger(),
	}
}

// CreateSession forwards the session request upstream. Upstream and transport
// failures pass through untouched; the handler maps them to response shapes.
// The returned client secret is never logged.
func (s *chatService) CreateSession(ctx context.Context, workflowID, userID string) (*models.ChatSessionResult, error) {
	if !s.configured {
		s.log.Error().Msg("OPENAI_API_KEY is not set")
		return nil, ErrNotConfigured
	}
	return s.client.CreateSession(ctx, workflowID, userID)
}

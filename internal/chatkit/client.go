package chatkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/workout-generator-web/internal/models"
)

// UpstreamError is a non-success response from the ChatKit API. Its status and
// raw body are relayed to the caller for diagnosis; transport failures are
// plain errors instead.
type UpstreamError struct {
	Status  int
	Details string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("chatkit upstream returned %d", e.Status)
}

// Client calls the OpenAI ChatKit session API with the server-held credential.
// The credential never leaves this package except as the Authorization header.
type Client struct {
	sessionURL string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client for the given session endpoint. The timeout bounds the
// whole exchange; expiry surfaces as a transport error.
func New(sessionURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		sessionURL: sessionURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// sessionRequest mirrors the ChatKit session-creation body.
type sessionRequest struct {
	Workflow sessionWorkflow `json:"workflow"`
	User     string          `json:"user"`
}

type sessionWorkflow struct {
	ID string `json:"id"`
}

// CreateSession exchanges the server credential for a short-lived client
// secret. An empty userID is sent as "anonymous".
func (c *Client) CreateSession(ctx context.Context, workflowID, userID string) (*models.ChatSessionResult, error) {
	if userID == "" {
		userID = "anonymous"
	}

	payload, err := json.Marshal(sessionRequest{
		Workflow: sessionWorkflow{ID: workflowID},
		User:     userID,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sessionURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	// Required while the ChatKit API is in beta.
	req.Header.Set("OpenAI-Beta", "chatkit_beta=v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling chatkit API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamError{Status: resp.StatusCode, Details: string(body)}
	}

	var result models.ChatSessionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding session response: %w", err)
	}
	return &result, nil
}

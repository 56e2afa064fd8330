package models

// ChatSessionRequest is the inbound body for the chat session proxy.
// WorkflowID is required; UserID falls back to "anonymous".
type ChatSessionRequest struct {
	WorkflowID string `json:"workflowId"`
	UserID     string `json:"userId,omitempty"`
}

// ChatSessionResult carries the short-lived secret the browser widget uses to
// open a chat session. The secret is relayed, never stored or logged.
type ChatSessionResult struct {
	ClientSecret string `json:"client_secret"`
}

package mocks

import (
	"context"

	"github.com/workout-generator-web/internal/models"
)

// MockSessionClient is a mock implementation of service.SessionClient. It
// records calls so tests can assert the outbound request never happened.
type MockSessionClient struct {
	Result       *models.ChatSessionResult
	Err          error
	Calls        int
	LastWorkflow string
	LastUser     string
}

func NewMockSessionClient() *MockSessionClient {
	return &MockSessionClient{
		Result: &models.ChatSessionResult{ClientSecret: "test-secret"},
	}
}

func (m *MockSessionClient) CreateSession(ctx context.Context, workflowID, userID string) (*models.ChatSessionResult, error) {
	m.Calls++
	m.LastWorkflow = workflowID
	m.LastUser = userID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

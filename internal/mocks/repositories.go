package mocks

import (
	"context"
	"sort"

	"github.com/workout-generator-web/internal/models"
)

// MockSource is a mock implementation of content.Source
type MockSource struct {
	PostsData []models.Post
	Err       error
	Calls     int
}

func NewMockSource(posts ...models.Post) *MockSource {
	return &MockSource{PostsData: posts}
}

func (m *MockSource) Posts(ctx context.Context) ([]models.Post, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Post, len(m.PostsData))
	copy(out, m.PostsData)
	return out, nil
}

// MockPostRepository is a mock implementation of repository.PostRepository
type MockPostRepository struct {
	Posts     []models.Post
	ListError error
}

func NewMockPostRepository(posts ...models.Post) *MockPostRepository {
	return &MockPostRepository{Posts: posts}
}

func (m *MockPostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := make([]models.Post, len(m.Posts))
	copy(out, m.Posts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	for i := range m.Posts {
		if m.Posts[i].Slug == slug {
			post := m.Posts[i]
			return &post, nil
		}
	}
	return nil, nil
}

func (m *MockPostRepository) ListSlugs(ctx context.Context) ([]string, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	slugs := make([]string, 0, len(m.Posts))
	for i := range m.Posts {
		slugs = append(slugs, m.Posts[i].Slug)
	}
	return slugs, nil
}

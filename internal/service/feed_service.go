package service

import (
	"context"
	"time"

	"github.com/workout-generator-web/internal/models"
	"github.com/workout-generator-web/internal/repository"
	"github.com/workout-generator-web/internal/seo"
)

// feedService is the concrete implementation of FeedService
type feedService struct {
	posts   repository.PostRepository
	builder *seo.Builder
	now     func() time.Time
}

func newFeedService(posts repository.PostRepository, builder *seo.Builder, now func() time.Time) FeedService {
	return &feedService{posts: posts, builder: builder, now: now}
}

// Sitemap derives the URL set from the current post collection. Entries are
// generated fresh on every call.
func (s *feedService) Sitemap(ctx context.Context) ([]models.SitemapEntry, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.builder.Sitemap(posts, s.now()), nil
}

// Robots returns the static crawl policy.
func (s *feedService) Robots() models.RobotsPolicy {
	return s.builder.Robots()
}

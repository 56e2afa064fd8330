package repository

import (
	"context"
	"sort"

	"github.com/workout-generator-web/internal/content"
	"github.com/workout-generator-web/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	source content.Source
}

// NewPostRepo creates a new post repository over a content source
func NewPostRepo(source content.Source) PostRepository {
	return &postRepo{source: source}
}

// ListAll returns all posts sorted by date descending. The sort is stable so
// same-day posts keep their collection order.
func (r *postRepo) ListAll(ctx context.Context) ([]models.Post, error) {
	posts, err := r.source.Posts(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		// Dates are zero-padded YYYY-MM-DD, so string comparison orders
		// them chronologically.
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

// GetBySlug retrieves a post by its slug, (nil, nil) on a miss
func (r *postRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	posts, err := r.source.Posts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], nil
		}
	}
	return nil, nil
}

// ListSlugs returns every slug in collection order
func (r *postRepo) ListSlugs(ctx context.Context) ([]string, error) {
	posts, err := r.source.Posts(ctx)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(posts))
	for i := range posts {
		slugs = append(slugs, posts[i].Slug)
	}
	return slugs, nil
}

package repository

import (
	"context"

	"github.com/workout-generator-web/internal/content"
	"github.com/workout-generator-web/internal/models"
)

// PostRepository defines the read-only interface over the post collection.
// The content source behind it can be swapped (static table, markdown files,
// Postgres) without touching any caller.
type PostRepository interface {
	// ListAll returns every post ordered by date descending, newest first.
	// Posts sharing a date keep their original collection order.
	ListAll(ctx context.Context) ([]models.Post, error)

	// GetBySlug returns the post with the exact (case-sensitive) slug, or
	// (nil, nil) when no such post exists. A missing slug is not an error.
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)

	// ListSlugs returns every post's slug in collection order. The count
	// always equals ListAll's count.
	ListSlugs(ctx context.Context) ([]string, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Post PostRepository
}

// New creates all repositories over the given content source
func New(source content.Source) *Repositories {
	return &Repositories{
		Post: NewPostRepo(source),
	}
}

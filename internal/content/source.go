package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/workout-generator-web/internal/models"
	"github.com/workout-generator-web/internal/validation"
)

// ErrContentUnavailable marks a content source that cannot produce posts.
// Callers check for it with errors.Is; the static source never returns it.
var ErrContentUnavailable = errors.New("content unavailable")

// Source produces the full, immutable post collection. Implementations must be
// safe for concurrent readers; the returned slice is owned by the caller.
type Source interface {
	Posts(ctx context.Context) ([]models.Post, error)
}

// Validate checks collection-wide invariants: required fields, unique
// URL-safe slugs, parseable dates. It runs once at startup so a bad deploy
// fails loudly instead of serving a broken sitemap.
func Validate(posts []models.Post) error {
	if errs := validation.ValidatePosts(posts); len(errs) > 0 {
		return fmt.Errorf("invalid post collection: %d violation(s), first: %s", len(errs), errs[0].Error())
	}
	return nil
}

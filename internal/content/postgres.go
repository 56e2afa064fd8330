package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/workout-generator-web/internal/database"
	"github.com/workout-generator-web/internal/models"
)

// postgresSource reads the post collection from a posts table. Collection
// order is the insertion order (id), matching how the static table is laid
// out; the repository owns date sorting.
type postgresSource struct {
	db *database.DB
}

// NewPostgresSource creates a Source backed by the given database.
func NewPostgresSource(db *database.DB) Source {
	return &postgresSource{db: db}
}

func (s *postgresSource) Posts(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT id, slug, title, excerpt, content, date, author, category, tags, image, date_modified
		FROM posts ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying posts: %v", ErrContentUnavailable, err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		var tagsJSON []byte
		var image, dateModified sql.NullString

		err := rows.Scan(
			&post.ID, &post.Slug, &post.Title, &post.Excerpt, &post.Content,
			&post.Date, &post.Author, &post.Category, &tagsJSON, &image, &dateModified,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning post row: %v", ErrContentUnavailable, err)
		}

		post.Tags, err = decodeTags(tagsJSON)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding tags for post %q: %v", ErrContentUnavailable, post.Slug, err)
		}
		if image.Valid {
			post.Image = image.String
		}
		if dateModified.Valid {
			post.DateModified = dateModified.String
		}

		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating posts: %v", ErrContentUnavailable, err)
	}

	if err := Validate(posts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}
	return posts, nil
}

// decodeTags parses the JSONB tags column. An empty column means no tags.
func decodeTags(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

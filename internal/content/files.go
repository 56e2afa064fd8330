package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/workout-generator-web/internal/models"
)

// filesSource reads posts from a directory of markdown files with YAML
// frontmatter. Files are loaded on every call; the collection is small and the
// source exists so content can be edited without a rebuild.
type filesSource struct {
	dir string
}

// NewFilesSource creates a Source reading *.md files from dir.
func NewFilesSource(dir string) Source {
	return &filesSource{dir: dir}
}

// postMeta is the frontmatter block of a markdown post file.
type postMeta struct {
	ID           string   `yaml:"id"`
	Slug         string   `yaml:"slug"`
	Title        string   `yaml:"title"`
	Excerpt      string   `yaml:"excerpt"`
	Date         string   `yaml:"date"`
	Author       string   `yaml:"author"`
	Category     string   `yaml:"category"`
	Tags         []string `yaml:"tags"`
	Image        string   `yaml:"image"`
	DateModified string   `yaml:"dateModified"`
}

func (s *filesSource) Posts(ctx context.Context) ([]models.Post, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading content dir %s: %v", ErrContentUnavailable, s.dir, err)
	}

	var posts []models.Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(s.dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ErrContentUnavailable, path, err)
		}

		var meta postMeta
		body, err := frontmatter.Parse(f, &meta)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: parsing frontmatter in %s: %v", ErrContentUnavailable, path, err)
		}

		slug := meta.Slug
		if slug == "" {
			slug = strings.TrimSuffix(entry.Name(), ".md")
		}
		id := meta.ID
		if id == "" {
			id = slug
		}

		posts = append(posts, models.Post{
			ID:           id,
			Slug:         slug,
			Title:        meta.Title,
			Excerpt:      meta.Excerpt,
			Content:      strings.TrimSpace(string(body)),
			Date:         meta.Date,
			Author:       meta.Author,
			Category:     meta.Category,
			Tags:         meta.Tags,
			Image:        meta.Image,
			DateModified: meta.DateModified,
		})
	}

	// Directory listing order is platform dependent; fix collection order by
	// filename so slug listings stay deterministic.
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	if err := Validate(posts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}
	return posts, nil
}

package service

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/workout-generator-web/internal/repository"
	"github.com/workout-generator-web/internal/seo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Words per minute assumed when estimating reading time.
const readingSpeedWPM = 200

// Description length cap for search-result snippets.
const maxDescriptionLen = 160

const listingTitle = "Blog | Fitness Tips & Workout Strategies"
const listingDescription = "Discover expert fitness tips, workout strategies, and AI-powered training advice to help you achieve your goals. Start your journey today!"

// blogService is the concrete implementation of BlogService
type blogService struct {
	posts   repository.PostRepository
	builder *seo.Builder
	md      goldmark.Markdown
	log     zerolog.Logger
}

func newBlogService(posts repository.PostRepository, builder *seo.Builder, log zerolog.Logger) BlogService {
	return &blogService{
		posts:   posts,
		builder: builder,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		log: log.With().Str("service", "blog").Logger(),
	}
}

// ResolveListing returns the full sorted post set with listing metadata and
// the Blog feed schema.
func (s *blogService) ResolveListing(ctx context.Context) (*ListingPage, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListingPage{
		Posts: posts,
		Meta: PageMeta{
			Title:       listingTitle,
			Description: listingDescription,
		},
		Schema: s.builder.BlogSchema(posts),
	}, nil
}

// ResolveDetail resolves one post by slug, computing the derived display
// fields the detail page and its structured data need.
func (s *blogService) ResolveDetail(ctx context.Context, slug string) (*DetailPage, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	published, err := post.PublishedAt()
	if err != nil {
		return nil, err
	}
	modified, err := post.ModifiedAt()
	if err != nil {
		return nil, err
	}

	words := wordCount(post.Content)
	minutes := readingMinutes(words)

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(post.Content), &buf); err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("Markdown conversion failed")
		return nil, err
	}

	return &DetailPage{
		Post:           *post,
		HTML:           template.HTML(buf.String()),
		PublishedTime:  published.UTC().Format(time.RFC3339),
		ModifiedTime:   modified.UTC().Format(time.RFC3339),
		WordCount:      words,
		ReadingMinutes: minutes,
		Meta: PageMeta{
			Title:       post.Title + " | Blog",
			Description: truncateDescription(post.Excerpt),
		},
		Article:    s.builder.ArticleSchema(post, published, modified, words, minutes),
		Breadcrumb: s.builder.BreadcrumbSchema(post),
	}, nil
}

// StaticRoutes returns the slugs of every routable detail page.
func (s *blogService) StaticRoutes(ctx context.Context) ([]string, error) {
	return s.posts.ListSlugs(ctx)
}

// wordCount counts whitespace-delimited tokens in the markdown body.
func wordCount(content string) int {
	return len(strings.Fields(content))
}

// readingMinutes estimates reading time at readingSpeedWPM, floored at one
// minute.
func readingMinutes(words int) int {
	minutes := (words + readingSpeedWPM - 1) / readingSpeedWPM
	if minutes < 1 {
		return 1
	}
	return minutes
}

// truncateDescription caps an excerpt at maxDescriptionLen characters for SERP
// display, appending an ellipsis when cut. Counted in runes so multibyte
// excerpts are never split mid-character.
func truncateDescription(excerpt string) string {
	runes := []rune(excerpt)
	if len(runes) <= maxDescriptionLen {
		return excerpt
	}
	return strings.TrimSpace(string(runes[:maxDescriptionLen-3])) + "..."
}

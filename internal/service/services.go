package service

import (
	"context"
	"html/template"
	"time"

	"github.com/rs/zerolog"
	"github.com/workout-generator-web/internal/chatkit"
	"github.com/workout-generator-web/internal/config"
	"github.com/workout-generator-web/internal/models"
	"github.com/workout-generator-web/internal/repository"
	"github.com/workout-generator-web/internal/seo"
)

// BlogService resolves blog pages: the sorted listing, individual detail
// pages, and the set of routable slugs.
type BlogService interface {
	ResolveListing(ctx context.Context) (*ListingPage, error)
	// ResolveDetail returns (nil, nil) when no post has the slug; a missing
	// slug is an expected outcome, not a failure.
	ResolveDetail(ctx context.Context, slug string) (*DetailPage, error)
	StaticRoutes(ctx context.Context) ([]string, error)
}

// FeedService derives the machine-readable feeds from the post collection.
type FeedService interface {
	Sitemap(ctx context.Context) ([]models.SitemapEntry, error)
	Robots() models.RobotsPolicy
}

// SessionClient is the outbound ChatKit call, abstracted so tests can count
// invocations without touching the network.
type SessionClient interface {
	CreateSession(ctx context.Context, workflowID, userID string) (*models.ChatSessionResult, error)
}

// ChatService brokers chat sessions through the server-held credential.
type ChatService interface {
	CreateSession(ctx context.Context, workflowID, userID string) (*models.ChatSessionResult, error)
}

// PageMeta is the per-page head metadata.
type PageMeta struct {
	Title       string
	Description string
}

// ListingPage is the resolved blog index: all posts newest-first plus metadata
// and the Blog structured-data payload.
type ListingPage struct {
	Posts  []models.Post
	Meta   PageMeta
	Schema seo.Blog
}

// DetailPage is one resolved blog post with its derived display fields and
// structured data.
type DetailPage struct {
	Post           models.Post
	HTML           template.HTML
	PublishedTime  string
	ModifiedTime   string
	WordCount      int
	ReadingMinutes int
	Meta           PageMeta
	Article        seo.Article
	Breadcrumb     seo.BreadcrumbList
}

// Services holds all service interfaces
type Services struct {
	Blog BlogService
	Feed FeedService
	Chat ChatService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	builder := seo.NewBuilder(cfg.Site.BaseURL, cfg.Site.SiteName)
	client := chatkit.New(cfg.ChatKit.SessionURL, cfg.ChatKit.APIKey, cfg.ChatKit.Timeout)

	return &Services{
		Blog: newBlogService(repos.Post, builder, log),
		Feed: newFeedService(repos.Post, builder, time.Now),
		Chat: newChatService(client, cfg.ChatKit.APIKey != "", log),
	}
}

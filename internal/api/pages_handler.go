package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/workout-generator-web/internal/config"
	"github.com/workout-generator-web/internal/content"
	"github.com/workout-generator-web/internal/models"
	"github.com/workout-generator-web/internal/service"
)

// PagesHandler renders the server-side HTML pages
type PagesHandler struct {
	services *service.Services
	site     config.SiteConfig
	log      zerolog.Logger
}

// NewPagesHandler creates a new PagesHandler
func NewPagesHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *PagesHandler {
	return &PagesHandler{
		services: services,
		site:     cfg.Site,
		log:      log.With().Str("handler", "pages").Logger(),
	}
}

// base returns the fields every page template expects.
func (h *PagesHandler) base(meta service.PageMeta, canonical string, schemas ...any) gin.H {
	return gin.H{
		"SiteName":  h.site.SiteName,
		"Year":      time.Now().Year(),
		"Meta":      meta,
		"Canonical": h.site.BaseURL + canonical,
		"Schemas":   schemas,
	}
}

// Home handles GET /, the landing page with a preview of the latest posts.
func (h *PagesHandler) Home(c *gin.Context) {
	var latest []models.Post
	if page, err := h.services.Blog.ResolveListing(c.Request.Context()); err == nil {
		// Landing preview shows at most the three newest posts. A content
		// failure here degrades to an empty preview rather than a broken
		// homepage.
		latest = page.Posts
		if len(latest) > 3 {
			latest = latest[:3]
		}
	} else {
		h.log.Error().Err(err).Msg("Failed to load posts for landing preview")
	}

	data := h.base(service.PageMeta{
		Title:       h.site.SiteName + " | AI-Powered Workout Plans",
		Description: "Generate personalized workout plans with AI. Tailored to your goals, fitness level, and equipment.",
	}, "")
	data["Features"] = content.Features()
	data["Journey"] = content.JourneySteps()
	data["Videos"] = content.Videos()
	data["Pricing"] = content.PricingPlans()
	data["Testimonials"] = content.Testimonials()
	data["Posts"] = latest

	c.HTML(http.StatusOK, "home", data)
}

// BlogListing handles GET /blog
func (h *PagesHandler) BlogListing(c *gin.Context) {
	page, err := h.services.Blog.ResolveListing(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to resolve blog listing")
		c.String(http.StatusInternalServerError, "blog unavailable")
		return
	}

	data := h.base(page.Meta, "/blog", page.Schema)
	data["Posts"] = page.Posts

	c.HTML(http.StatusOK, "blog", data)
}

// BlogDetail handles GET /blog/:slug. An unknown slug renders the 404 page;
// it is an expected outcome, not an error.
func (h *PagesHandler) BlogDetail(c *gin.Context) {
	slug := c.Param("slug")

	page, err := h.services.Blog.ResolveDetail(c.Request.Context(), slug)
	if err != nil {
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to resolve blog post")
		c.String(http.StatusInternalServerError, "blog unavailable")
		return
	}
	if page == nil {
		h.NotFound(c)
		return
	}

	data := h.base(page.Meta, "/blog/"+page.Post.Slug, page.Article, page.Breadcrumb)
	data["Page"] = page

	c.HTML(http.StatusOK, "blog_post", data)
}

// NotFound renders the 404 page for unknown routes and missing posts.
func (h *PagesHandler) NotFound(c *gin.Context) {
	data := h.base(service.PageMeta{
		Title:       "Page Not Found - " + h.site.SiteName,
		Description: "The page you were looking for does not exist.",
	}, c.Request.URL.Path)

	c.HTML(http.StatusNotFound, "not_found", data)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/workout-generator-web/internal/service"
)

// BlogHandler serves the blog collection as JSON
type BlogHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services: services,
		log:      log.With().Str("handler", "blog").Logger(),
	}
}

// ListPosts handles GET /api/blog. The full sorted collection on success; a
// fixed error body on any repository failure, with the cause kept in the logs.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	page, err := h.services.Blog.ResolveListing(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to fetch blog posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
		return
	}

	c.JSON(http.StatusOK, page.Posts)
}

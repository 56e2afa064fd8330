package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/workout-generator-web/internal/seo"
	"github.com/workout-generator-web/internal/service"
)

// SEOHandler serves the machine-readable feeds (sitemap, robots policy)
type SEOHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSEOHandler creates a new SEOHandler
func NewSEOHandler(services *service.Services, log zerolog.Logger) *SEOHandler {
	return &SEOHandler{
		services: services,
		log:      log.With().Str("handler", "seo").Logger(),
	}
}

// Sitemap handles GET /sitemap.xml
func (h *SEOHandler) Sitemap(c *gin.Context) {
	entries, err := h.services.Feed.Sitemap(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build sitemap")
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	body, err := seo.SitemapXML(entries)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to serialize sitemap")
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots handles GET /robots.txt
func (h *SEOHandler) Robots(c *gin.Context) {
	policy := h.services.Feed.Robots()
	c.String(http.StatusOK, seo.RobotsText(policy))
}

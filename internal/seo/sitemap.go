package seo

import (
	"encoding/xml"
	"time"

	"github.com/workout-generator-web/internal/models"
)

// Builder derives SEO artifacts (sitemap, robots policy, structured data)
// from the configured site origin.
type Builder struct {
	baseURL  string
	siteName string
}

// NewBuilder creates a Builder for the given canonical origin.
func NewBuilder(baseURL, siteName string) *Builder {
	return &Builder{baseURL: baseURL, siteName: siteName}
}

// BaseURL returns the canonical site origin.
func (b *Builder) BaseURL() string {
	return b.baseURL
}

// Sitemap builds the full URL set: the site root, the blog index, then one
// entry per post in the given order. Always at least two entries. The blog
// index's lastModified is the newest post's date, or now when there are no
// posts; posts are expected to arrive newest-first.
func (b *Builder) Sitemap(posts []models.Post, now time.Time) []models.SitemapEntry {
	entries := make([]models.SitemapEntry, 0, 2+len(posts))

	entries = append(entries, models.SitemapEntry{
		URL:             b.baseURL,
		LastModified:    now,
		ChangeFrequency: models.ChangeWeekly,
		Priority:        1.0,
	})

	blogModified := now
	if len(posts) > 0 {
		if t, err := posts[0].PublishedAt(); err == nil {
			blogModified = t
		}
	}
	entries = append(entries, models.SitemapEntry{
		URL:             b.baseURL + "/blog",
		LastModified:    blogModified,
		ChangeFrequency: models.ChangeWeekly,
		Priority:        0.8,
	})

	for i := range posts {
		lastMod := now
		if t, err := posts[i].PublishedAt(); err == nil {
			lastMod = t
		}
		entries = append(entries, models.SitemapEntry{
			URL:             b.baseURL + "/blog/" + posts[i].Slug,
			LastModified:    lastMod,
			ChangeFrequency: models.ChangeMonthly,
			Priority:        0.7,
		})
	}

	return entries
}

// Robots builds the static crawl policy: everything allowed, sitemap pointer
// at {baseUrl}/sitemap.xml.
func (b *Builder) Robots() models.RobotsPolicy {
	return models.RobotsPolicy{
		Rules: models.RobotsRules{
			UserAgent: "*",
			Allow:     "/",
			Disallow:  []string{},
		},
		Sitemap: b.baseURL + "/sitemap.xml",
	}
}

// XML serialization of the sitemap per the sitemaps.org urlset schema.

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// SitemapXML renders sitemap entries as a sitemaps.org urlset document.
func SitemapXML(entries []models.SitemapEntry) ([]byte, error) {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlEntry, 0, len(entries)),
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        e.URL,
			LastMod:    e.LastModified.UTC().Format("2006-01-02"),
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   e.Priority,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// RobotsText renders a RobotsPolicy in robots.txt syntax.
func RobotsText(policy models.RobotsPolicy) string {
	out := "User-agent: " + policy.Rules.UserAgent + "\n"
	out += "Allow: " + policy.Rules.Allow + "\n"
	for _, d := range policy.Rules.Disallow {
		out += "Disallow: " + d + "\n"
	}
	out += "\nSitemap: " + policy.Sitemap + "\n"
	return out
}

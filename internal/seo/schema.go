package seo

import (
	"fmt"
	"strings"
	"time"

	"github.com/workout-generator-web/internal/models"
)

// schema.org JSON-LD payloads embedded in page heads. Field names follow the
// vocabulary at https://schema.org, hence the @-prefixed JSON tags.

// Person identifies a post author.
type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// ImageObject wraps a logo or illustration URL.
type ImageObject struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// Organization identifies the site publisher.
type Organization struct {
	Type string      `json:"@type"`
	Name string      `json:"name"`
	Logo ImageObject `json:"logo"`
}

// WebPage anchors an article to its canonical URL.
type WebPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

// Article is the JSON-LD payload for a blog detail page.
type Article struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description"`
	Image            string       `json:"image"`
	DatePublished    string       `json:"datePublished"`
	DateModified     string       `json:"dateModified"`
	WordCount        int          `json:"wordCount"`
	TimeRequired     string       `json:"timeRequired"`
	Author           Person       `json:"author"`
	Publisher        Organization `json:"publisher"`
	MainEntityOfPage WebPage      `json:"mainEntityOfPage"`
	ArticleSection   string       `json:"articleSection"`
	Keywords         string       `json:"keywords"`
}

// BlogPosting is one post summary inside the Blog payload.
type BlogPosting struct {
	Type          string `json:"@type"`
	Headline      string `json:"headline"`
	Description   string `json:"description"`
	URL           string `json:"url"`
	DatePublished string `json:"datePublished"`
	Author        Person `json:"author"`
}

// Blog is the JSON-LD payload for the blog listing page.
type Blog struct {
	Context     string        `json:"@context"`
	Type        string        `json:"@type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	Publisher   Organization  `json:"publisher"`
	BlogPost    []BlogPosting `json:"blogPost"`
}

// ListItem is one breadcrumb step.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbList is the JSON-LD payload for the detail page breadcrumb trail.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

func (b *Builder) publisher() Organization {
	return Organization{
		Type: "Organization",
		Name: b.siteName,
		Logo: ImageObject{Type: "ImageObject", URL: b.baseURL + "/logo.png"},
	}
}

func (b *Builder) postImage(post *models.Post) string {
	if post.Image != "" {
		return b.baseURL + post.Image
	}
	return b.baseURL + "/og-image.jpg"
}

// ArticleSchema builds the Article payload for one post, given the derived
// reading metrics the page resolver computed.
func (b *Builder) ArticleSchema(post *models.Post, published, modified time.Time, wordCount, readingMinutes int) Article {
	url := b.baseURL + "/blog/" + post.Slug
	return Article{
		Context:          "https://schema.org",
		Type:             "Article",
		Headline:         post.Title,
		Description:      post.Excerpt,
		Image:            b.postImage(post),
		DatePublished:    published.UTC().Format(time.RFC3339),
		DateModified:     modified.UTC().Format(time.RFC3339),
		WordCount:        wordCount,
		TimeRequired:     fmt.Sprintf("PT%dM", readingMinutes),
		Author:           Person{Type: "Person", Name: post.Author},
		Publisher:        b.publisher(),
		MainEntityOfPage: WebPage{Type: "WebPage", ID: url},
		ArticleSection:   post.Category,
		Keywords:         strings.Join(post.Tags, ", "),
	}
}

// BlogSchema builds the Blog payload enumerating all posts as a feed.
func (b *Builder) BlogSchema(posts []models.Post) Blog {
	schema := Blog{
		Context:     "https://schema.org",
		Type:        "Blog",
		Name:        b.siteName + " Blog",
		Description: "Discover fitness tips, workout strategies, and expert advice to help you achieve your fitness goals.",
		URL:         b.baseURL + "/blog",
		Publisher:   b.publisher(),
		BlogPost:    make([]BlogPosting, 0, len(posts)),
	}
	for i := range posts {
		post := &posts[i]
		published := ""
		if t, err := post.PublishedAt(); err == nil {
			published = t.UTC().Format(time.RFC3339)
		}
		schema.BlogPost = append(schema.BlogPost, BlogPosting{
			Type:          "BlogPosting",
			Headline:      post.Title,
			Description:   post.Excerpt,
			URL:           b.baseURL + "/blog/" + post.Slug,
			DatePublished: published,
			Author:        Person{Type: "Person", Name: post.Author},
		})
	}
	return schema
}

// BreadcrumbSchema builds the Home > Blog > Post trail for a detail page.
func (b *Builder) BreadcrumbSchema(post *models.Post) BreadcrumbList {
	return BreadcrumbList{
		Context: "https://schema.org",
		Type:    "BreadcrumbList",
		ItemListElement: []ListItem{
			{Type: "ListItem", Position: 1, Name: "Home", Item: b.baseURL},
			{Type: "ListItem", Position: 2, Name: "Blog", Item: b.baseURL + "/blog"},
			{Type: "ListItem", Position: 3, Name: post.Title, Item: b.baseURL + "/blog/" + post.Slug},
		},
	}
}

package seo_test

import (
	"strings"
	"testing"
	"time"

	"github.com/workout-generator-web/internal/models"
	"github.com/workout-generator-web/internal/seo"
)

const testBaseURL = "https://workoutgenerator.com"

func newBuilder() *seo.Builder {
	return seo.NewBuilder(testBaseURL, "Workout Generator")
}

func TestSitemap_ZeroPosts(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := newBuilder().Sitemap(nil, now)

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries with zero posts, got %d", len(entries))
	}

	if entries[0].URL != testBaseURL {
		t.Errorf("Expected root URL, got %s", entries[0].URL)
	}
	if entries[0].Priority != 1.0 || entries[0].ChangeFrequency != models.ChangeWeekly {
		t.Errorf("Root entry: expected priority 1.0 weekly, got %v %v", entries[0].Priority, entries[0].ChangeFrequency)
	}

	if entries[1].URL != testBaseURL+"/blog" {
		t.Errorf("Expected blog URL, got %s", entries[1].URL)
	}
	// With no posts the blog index falls back to now.
	if !entries[1].LastModified.Equal(now) {
		t.Errorf("Expected blog lastModified %v, got %v", now, entries[1].LastModified)
	}
}

func TestSitemap_EntryCountAndOrder(t *testing.T) {
	posts := []models.Post{
		{Slug: "a", Date: "2025-01-15"},
		{Slug: "b", Date: "2025-01-14"},
		{Slug: "c", Date: "2025-01-13"},
	}
	entries := newBuilder().Sitemap(posts, time.Now())

	if len(entries) != 2+len(posts) {
		t.Fatalf("Expected %d entries, got %d", 2+len(posts), len(entries))
	}

	wantPriorities := []float64{1.0, 0.8, 0.7, 0.7, 0.7}
	for i, want := range wantPriorities {
		if entries[i].Priority != want {
			t.Errorf("Entry %d: expected priority %v, got %v", i, want, entries[i].Priority)
		}
	}

	wantURLs := []string{
		testBaseURL,
		testBaseURL + "/blog",
		testBaseURL + "/blog/a",
		testBaseURL + "/blog/b",
		testBaseURL + "/blog/c",
	}
	for i, want := range wantURLs {
		if entries[i].URL != want {
			t.Errorf("Entry %d: expected %s, got %s", i, want, entries[i].URL)
		}
	}

	// Blog index inherits the newest post's date; post entries carry their
	// own date and monthly frequency.
	newest, _ := posts[0].PublishedAt()
	if !entries[1].LastModified.Equal(newest) {
		t.Errorf("Blog index lastModified: expected %v, got %v", newest, entries[1].LastModified)
	}
	for i := 2; i < len(entries); i++ {
		if entries[i].ChangeFrequency != models.ChangeMonthly {
			t.Errorf("Post entry %d: expected monthly, got %v", i, entries[i].ChangeFrequency)
		}
		want, _ := posts[i-2].PublishedAt()
		if !entries[i].LastModified.Equal(want) {
			t.Errorf("Post entry %d lastModified: expected %v, got %v", i, want, entries[i].LastModified)
		}
	}
}

func TestSitemapXML(t *testing.T) {
	posts := []models.Post{{Slug: "a", Date: "2025-01-15"}}
	entries := newBuilder().Sitemap(posts, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	body, err := seo.SitemapXML(entries)
	if err != nil {
		t.Fatalf("SitemapXML failed: %v", err)
	}

	xml := string(body)
	for _, want := range []string{
		`<?xml`,
		`xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`,
		`<loc>https://workoutgenerator.com/blog/a</loc>`,
		`<lastmod>2025-01-15</lastmod>`,
		`<changefreq>monthly</changefreq>`,
		`<priority>0.7</priority>`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("Sitemap XML missing %q:\n%s", want, xml)
		}
	}
}

func TestRobots(t *testing.T) {
	policy := newBuilder().Robots()

	if policy.Rules.UserAgent != "*" {
		t.Errorf("Expected user-agent *, got %s", policy.Rules.UserAgent)
	}
	if policy.Rules.Allow != "/" {
		t.Errorf("Expected allow /, got %s", policy.Rules.Allow)
	}
	if len(policy.Rules.Disallow) != 0 {
		t.Errorf("Expected no disallow rules, got %v", policy.Rules.Disallow)
	}
	if policy.Sitemap != testBaseURL+"/sitemap.xml" {
		t.Errorf("Expected sitemap URL %s/sitemap.xml, got %s", testBaseURL, policy.Sitemap)
	}
}

func TestRobotsText(t *testing.T) {
	text := seo.RobotsText(newBuilder().Robots())

	for _, want := range []string{
		"User-agent: *\n",
		"Allow: /\n",
		"Sitemap: https://workoutgenerator.com/sitemap.xml\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("robots.txt missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Disallow") {
		t.Errorf("robots.txt should carry no disallow rules:\n%s", text)
	}
}

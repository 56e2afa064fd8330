package models

import "time"

// ChangeFrequency is the sitemap change-frequency hint for crawlers.
type ChangeFrequency string

const (
	ChangeWeekly  ChangeFrequency = "weekly"
	ChangeMonthly ChangeFrequency = "monthly"
)

// SitemapEntry is one URL record in the generated sitemap. Entries are derived
// fresh on every request and never persisted.
type SitemapEntry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency ChangeFrequency
	Priority        float64
}

// RobotsRules describes the crawl policy for a user-agent group.
type RobotsRules struct {
	UserAgent string   `json:"userAgent"`
	Allow     string   `json:"allow"`
	Disallow  []string `json:"disallow"`
}

// RobotsPolicy is the full robots.txt policy: a single allow-everything rule
// plus a pointer at the sitemap.
type RobotsPolicy struct {
	Rules   RobotsRules `json:"rules"`
	Sitemap string      `json:"sitemap"`
}

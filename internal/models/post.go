package models

import (
	"fmt"
	"time"
)

// Post represents a single blog article. The full set of posts is defined at
// deploy time; nothing mutates a Post after startup.
type Post struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content"`
	Date         string   `json:"date"`
	Author       string   `json:"author"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Image        string   `json:"image,omitempty"`
	DateModified string   `json:"dateModified,omitempty"`
}

// DateLayout is the calendar-date format posts are authored in. Dates carry no
// timezone; they are interpreted as UTC midnight everywhere.
const DateLayout = "2006-01-02"

// PublishedAt parses the post's date. Invalid dates are a content-authoring
// error and are caught by source validation before they reach here.
func (p *Post) PublishedAt() (time.Time, error) {
	t, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("post %q: invalid date %q: %w", p.Slug, p.Date, err)
	}
	return t, nil
}

// ModifiedAt returns the modification date, falling back to the publication
// date when the post has never been updated.
func (p *Post) ModifiedAt() (time.Time, error) {
	if p.DateModified == "" {
		return p.PublishedAt()
	}
	t, err := time.Parse(DateLayout, p.DateModified)
	if err != nil {
		return time.Time{}, fmt.Errorf("post %q: invalid dateModified %q: %w", p.Slug, p.DateModified, err)
	}
	return t, nil
}

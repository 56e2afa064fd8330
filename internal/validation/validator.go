package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/workout-generator-web/internal/models"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator checks post records against the collection invariants: required
// fields, URL-safe unique slugs, and unambiguous calendar dates.
type Validator struct {
	slugCache map[string]bool
	idCache   map[string]bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		slugCache: make(map[string]bool),
		idCache:   make(map[string]bool),
	}
}

// ValidatePost validates a single post record and records its slug and ID for
// uniqueness checks against subsequent posts.
func (v *Validator) ValidatePost(post *models.Post) []ValidationError {
	var errors []ValidationError

	if post.ID == "" {
		errors = append(errors, ValidationError{Field: "id", Message: "id is required"})
	} else if v.idCache[post.ID] {
		errors = append(errors, ValidationError{Field: "id", Message: "duplicate id", Value: post.ID})
	}

	if post.Slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else {
		if !slugRegex.MatchString(post.Slug) {
			errors = append(errors, ValidationError{Field: "slug", Message: "slug must be lowercase alphanumeric with hyphens", Value: post.Slug})
		}
		if v.slugCache[post.Slug] {
			errors = append(errors, ValidationError{Field: "slug", Message: "duplicate slug", Value: post.Slug})
		}
	}

	if post.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	if post.Date == "" {
		errors = append(errors, ValidationError{Field: "date", Message: "date is required"})
	} else if _, err := time.Parse(models.DateLayout, post.Date); err != nil {
		errors = append(errors, ValidationError{Field: "date", Message: "date must be a valid YYYY-MM-DD date", Value: post.Date})
	}

	if post.DateModified != "" {
		if _, err := time.Parse(models.DateLayout, post.DateModified); err != nil {
			errors = append(errors, ValidationError{Field: "dateModified", Message: "dateModified must be a valid YYYY-MM-DD date", Value: post.DateModified})
		}
	}

	v.idCache[post.ID] = true
	v.slugCache[post.Slug] = true

	return errors
}

// ValidatePosts validates a whole collection, returning every violation found.
func ValidatePosts(posts []models.Post) []ValidationError {
	v := NewValidator()
	var errors []ValidationError
	for i := range posts {
		errors = append(errors, v.ValidatePost(&posts[i])...)
	}
	return errors
}

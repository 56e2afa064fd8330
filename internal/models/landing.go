package models

// Static data shapes rendered on the landing page. Like posts, these are
// defined at deploy time and read-only at runtime.

// PricingPlan is one column of the pricing section.
type PricingPlan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice,omitempty"`
	Period        string   `json:"period"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Popular       bool     `json:"popular,omitempty"`
	CTAText       string   `json:"ctaText"`
	CTALink       string   `json:"ctaLink,omitempty"`
}

// Video is an entry in the landing-page video gallery.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Category     string `json:"category"`
	Featured     bool   `json:"featured,omitempty"`
}

// Testimonial is a customer quote shown in the social-proof section.
type Testimonial struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

// JourneyStep is one step of the "how it works" walkthrough.
type JourneyStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Feature is one card of the feature grid.
type Feature struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

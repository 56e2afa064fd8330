package content

import "github.com/workout-generator-web/internal/models"

// Static landing-page tables. Rendered server-side on the homepage; read-only.

// PricingPlans returns the pricing section data.
func PricingPlans() []models.PricingPlan {
	return []models.PricingPlan{
		{
			ID:          "free",
			Name:        "Free",
			Price:       0,
			Period:      "month",
			Description: "Perfect for getting started with your fitness journey",
			Features: []string{
				"5 workouts per month",
				"Basic exercise library",
				"Progress tracking (coming soon)",
				"Community access (coming soon)",
				"Mobile Friendly",
			},
			CTAText: "Get Started",
			CTALink: "https://members.fitcopilot.ai/conversion",
		},
		{
			ID:            "premium",
			Name:          "Premium",
			Price:         10,
			OriginalPrice: 20,
			Period:        "month",
			Description:   "For serious fitness enthusiasts who want unlimited access",
			Popular:       true,
			Features: []string{
				"Fully personalized workouts",
				"Advanced AI generation",
				"Detailed analytics (coming soon)",
				"Priority support",
				"Custom workout plans",
				"Export workouts",
				"Early access to features",
			},
			CTAText: "Start Free Trial",
			CTALink: "https://members.fitcopilot.ai/conversion",
		},
	}
}

// Videos returns the landing-page video gallery.
func Videos() []models.Video {
	return []models.Video{
		{
			ID:           "1",
			Title:        "Brand Video",
			Description:  "Experience our mission and vision",
			VideoURL:     "/videos/brand-video.mp4",
			ThumbnailURL: "/videos/brand-video.jpg",
			Category:     "brand",
			Featured:     true,
		},
		{
			ID:          "2",
			Title:       "Featured Exercise Video 1",
			Description: "Learn proper form and technique",
			VideoURL:    "/videos/featured-exercise-1.mp4",
			Category:    "featured-exercise",
			Featured:    true,
		},
		{
			ID:          "3",
			Title:       "Workout of the Week",
			Description: "This week's full training session",
			VideoURL:    "/videos/workout-of-the-week.mp4",
			Category:    "workout-of-the-week",
		},
	}
}

// Testimonials returns the social-proof quotes.
func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:     "1",
			Name:   "Sarah Johnson",
			Role:   "Fitness Coach",
			Quote:  "This platform has completely transformed how I create workout plans for my clients. The variety and customization options are incredible!",
			Rating: 5,
		},
		{
			ID:     "2",
			Name:   "Michael Chen",
			Role:   "Personal Trainer",
			Quote:  "As a trainer, I love how easy it is to generate personalized workouts. My clients are seeing amazing results!",
			Rating: 5,
		},
		{
			ID:     "3",
			Name:   "Emily Rodriguez",
			Role:   "Yoga Instructor",
			Quote:  "The flexibility to create workouts for different fitness levels makes this tool invaluable. Highly recommend!",
			Rating: 5,
		},
		{
			ID:     "4",
			Name:   "David Thompson",
			Role:   "Gym Owner",
			Quote:  "We use this for all our members. The interface is clean, and the workouts are always fresh and challenging.",
			Rating: 5,
		},
	}
}

// JourneySteps returns the "how it works" walkthrough.
func JourneySteps() []models.JourneyStep {
	return []models.JourneyStep{
		{
			Step:        1,
			Title:       "Sign Up & Set Goals",
			Description: "Create your account and tell us about your fitness goals, experience level, and preferences.",
		},
		{
			Step:        2,
			Title:       "Get Your Plan",
			Description: "Our AI generates a personalized workout plan tailored specifically to your goals and capabilities.",
		},
		{
			Step:        3,
			Title:       "Train & Track",
			Description: "Follow your plan, log your sessions, and watch the workouts adapt as you get stronger.",
		},
		{
			Step:        4,
			Title:       "Celebrate Progress",
			Description: "Hit your milestones and keep the momentum going with fresh, progressive programming.",
		},
	}
}

// Features returns the feature-grid cards.
func Features() []models.Feature {
	return []models.Feature{
		{ID: "1", Title: "Personalized Plans", Description: "Every workout is tailored to your fitness level, goals, and available equipment."},
		{ID: "2", Title: "AI Generation", Description: "Advanced AI builds fresh, progressive routines so your training never goes stale."},
		{ID: "3", Title: "Train Anywhere", Description: "Home, gym, or travel - plans adapt to whatever space and gear you have."},
		{ID: "4", Title: "Time Efficient", Description: "Get maximum results from sessions that fit your schedule."},
	}
}

package content

import (
	"context"

	"github.com/workout-generator-web/internal/models"
)

// staticSource serves the launch post set compiled into the binary. It is the
// default source and can never fail.
type staticSource struct{}

// NewStaticSource returns the built-in post collection.
func NewStaticSource() Source {
	return staticSource{}
}

func (staticSource) Posts(ctx context.Context) ([]models.Post, error) {
	out := make([]models.Post, len(blogPosts))
	copy(out, blogPosts)
	return out, nil
}

var blogPosts = []models.Post{
	{
		ID:      "1",
		Slug:    "getting-started-with-ai-workouts",
		Title:   "Getting Started with AI-Powered Workouts",
		Excerpt: "Learn how to create your first personalized workout plan using our AI-powered platform. Discover the features that make fitness planning effortless.",
		Content: `# Getting Started with AI-Powered Workouts

Welcome to the future of fitness planning! Our AI-powered workout generator makes it easy to create personalized exercise routines tailored to your goals, fitness level, and available equipment.

## Why AI-Powered Workouts?

Traditional workout plans are often one-size-fits-all, but everyone's fitness journey is unique. Our AI analyzes your preferences and creates a custom plan that adapts to your needs.

## Key Features

- **Personalized Plans**: Tailored to your fitness level and goals
- **Equipment Flexibility**: Works with or without gym equipment
- **Progressive Difficulty**: Automatically adjusts as you improve
- **Time-Efficient**: Maximize results in minimal time

## Getting Started

1. Set your fitness goals
2. Choose your preferred workout style
3. Select available equipment
4. Let AI generate your custom plan

Start your fitness journey today and experience the power of personalized training!`,
		Date:     "2025-01-15",
		Author:   "Fitness Team",
		Category: "Getting Started",
		Tags:     []string{"workouts", "beginner", "ai", "fitness"},
	},
	{
		ID:      "2",
		Slug:    "maximizing-your-home-workout-space",
		Title:   "Maximizing Your Home Workout Space",
		Excerpt: "Transform any space into an effective workout area. Learn how to optimize your home gym setup for maximum results.",
		Content: `# Maximizing Your Home Workout Space

You don't need a full gym to achieve your fitness goals. With the right approach, any space can become your personal training ground.

## Space Requirements

Even a small corner of your living room can work. The key is organization and creativity.

## Essential Equipment

- **Resistance Bands**: Versatile and space-efficient
- **Dumbbells**: Adjustable weights save space
- **Yoga Mat**: Essential for floor exercises
- **Pull-up Bar**: Can be mounted in doorways

## Space Optimization Tips

1. **Vertical Storage**: Use wall mounts for equipment
2. **Multi-Purpose Items**: Choose equipment that serves multiple functions
3. **Clear Zones**: Designate specific areas for different exercises
4. **Portable Solutions**: Opt for equipment that can be stored away

## Workout Ideas for Small Spaces

- Bodyweight exercises
- HIIT routines
- Yoga and stretching
- Resistance band training

Make the most of your space and achieve your fitness goals from home!`,
		Date:     "2025-01-10",
		Author:   "Fitness Team",
		Category: "Home Fitness",
		Tags:     []string{"home-workout", "equipment", "space", "tips"},
	},
	{
		ID:      "3",
		Slug:    "nutrition-tips-for-better-workout-results",
		Title:   "Nutrition Tips for Better Workout Results",
		Excerpt: "Discover how proper nutrition can amplify your workout results. Learn about pre and post-workout nutrition strategies.",
		Content: `# Nutrition Tips for Better Workout Results

Exercise is only half the equation. Proper nutrition fuels your workouts and accelerates recovery.

## Pre-Workout Nutrition

Fuel your body 30-60 minutes before exercise with:
- **Complex Carbs**: Oatmeal, whole grain bread
- **Protein**: Greek yogurt, eggs
- **Hydration**: Water or electrolyte drinks

## Post-Workout Recovery

Within 30 minutes after your workout:
- **Protein**: Helps repair muscle tissue
- **Carbs**: Replenishes glycogen stores
- **Hydration**: Replaces lost fluids

## Daily Nutrition Guidelines

- **Protein**: 0.8-1g per pound of body weight
- **Carbs**: Focus on whole grains and vegetables
- **Fats**: Healthy fats from nuts, avocados, olive oil
- **Hydration**: 8-10 glasses of water daily

## Meal Timing

- Eat balanced meals every 3-4 hours
- Don't skip breakfast
- Include protein in every meal
- Stay hydrated throughout the day

Remember: Nutrition and exercise work together to help you achieve your fitness goals!`,
		Date:     "2025-01-05",
		Author:   "Nutrition Expert",
		Category: "Nutrition",
		Tags:     []string{"nutrition", "recovery", "health", "diet"},
	},
}

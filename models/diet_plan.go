package models

import (
	"gorm.io/gorm"
)

type DietPlan struct {
	gorm.Model
	Name        string   `gorm:"not null" json:"name"`
	Description string   `gorm:"not null" json:"description"`
	PriceINR    int      `gorm:"not null" json:"priceINR"`
	PriceUSD    int      `gorm:"not null" json:"priceUSD"`
	Features    []string `gorm:"serializer:json" json:"features"`
	Popular     bool     `gorm:"default:false" json:"popular"`
}

// DefaultDietPlans is the catalog seeded into an empty store.
func DefaultDietPlans() []DietPlan {
	return []DietPlan{
		{
			Name:        "Basic Plan",
			Description: "A great starter plan for beginners",
			PriceINR:    5000,
			PriceUSD:    60,
			Features: []string{
				"Personalized Diet Plan",
				"Weekly Follow-ups via Chat",
				"Basic Nutrition Guide",
			},
		},
		{
			Name:        "Premium Plan",
			Description: "Our most popular comprehensive plan",
			PriceINR:    12000,
			PriceUSD:    145,
			Features: []string{
				"Customized Diet Plan",
				"Bi-weekly Video Follow-ups",
				"Comprehensive Nutrition Guide",
				"2 1-on-1 Consultations",
				"Basic Workout Recommendations",
			},
			Popular: true,
		},
		{
			Name:        "Elite Plan",
			Description: "Advanced plan for serious fitness enthusiasts",
			PriceINR:    25000,
			PriceUSD:    300,
			Features: []string{
				"Advanced Personalized Diet Plan",
				"Weekly Video Follow-ups",
				"Elite Nutrition & Supplement Guide",
				"4 1-on-1 Consultations",
				"Complete Workout Program",
			},
		},
	}
}

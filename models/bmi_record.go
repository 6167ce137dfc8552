package models

import (
	"gorm.io/gorm"
)

// BMIRecord is one saved calculation. Height is meters, weight is kilograms,
// both kept as floats; rounding is a display concern only.
type BMIRecord struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null" json:"userId"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	BMIValue float64 `json:"bmiValue"`
	Category string  `json:"category"`
}

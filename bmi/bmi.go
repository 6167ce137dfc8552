// Package bmi is the shared BMI engine: formula, classification, gauge
// placement and plan recommendation. It has no platform dependencies so the
// API layer and any other surface compute from the same logic.
package bmi

import (
	"errors"
	"fmt"
	"math"
)

// Category is one of the four fixed BMI classification bands.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// Band thresholds. Lower bound inclusive, open-ended top.
const (
	normalThreshold     = 18.5
	overweightThreshold = 25.0
	obeseThreshold      = 30.0
)

const metersPerInch = 0.0254

// ErrZeroHeight is returned when feet and inches are both zero, which would
// make the formula divide by zero.
var ErrZeroHeight = errors.New("bmi: total height must be greater than zero")

// Result holds a single BMI computation. BMI keeps full precision; rounding
// happens only at display time via DisplayBMI.
type Result struct {
	BMI           float64
	Category      Category
	GaugePosition float64
	HeightMeters  float64
}

// DisplayBMI renders the value to one decimal place.
func (r Result) DisplayBMI() string {
	return fmt.Sprintf("%.1f", r.BMI)
}

// Compute derives BMI from imperial height and metric weight.
// Callers validate ranges (feet >= 1, inches in [0,11], weight > 0) before
// calling; the only check here is the degenerate zero-height case.
func Compute(heightFeet, heightInches, weightKg float64) (Result, error) {
	totalInches := heightFeet*12 + heightInches
	if totalInches <= 0 {
		return Result{}, ErrZeroHeight
	}

	heightMeters := totalInches * metersPerInch
	value := weightKg / (heightMeters * heightMeters)

	return Result{
		BMI:           value,
		Category:      Classify(value),
		GaugePosition: GaugePosition(value),
		HeightMeters:  heightMeters,
	}, nil
}

// Classify maps a BMI value onto its band. First match wins.
func Classify(value float64) Category {
	switch {
	case value < normalThreshold:
		return Underweight
	case value < overweightThreshold:
		return Normal
	case value < obeseThreshold:
		return Overweight
	default:
		return Obese
	}
}

// GaugePosition places a BMI value on the 0-100 scale of the four-segment
// indicator (segment widths 18/22/30/30). Purely presentational; the obese
// segment clamps at BMI 40 so the marker never runs past 100.
func GaugePosition(value float64) float64 {
	switch {
	case value < normalThreshold:
		return (value / normalThreshold) * 18
	case value < overweightThreshold:
		return 18 + ((value-normalThreshold)/6.5)*22
	case value < obeseThreshold:
		return 40 + ((value-overweightThreshold)/5)*30
	default:
		return 70 + (math.Min(value-obeseThreshold, 10)/10)*30
	}
}

// RecommendedPlan maps a band to the coaching plan pitched for it.
func RecommendedPlan(c Category) string {
	switch c {
	case Underweight:
		return "Weight Gain"
	case Normal:
		return "Balanced Weight Management"
	case Overweight:
		return "Weight Management"
	default:
		return "Weight Loss"
	}
}

package pipeline

import (
	"math"

	"awareness_backend/internal/model"
)

// Percentage is total/max*100, 0 when max is 0. Not rounded.
func Percentage(total, max int) float64 {
	if max == 0 {
		return 0
	}
	return float64(total) / float64(max) * 100
}

// OverallLevel applies the fixed threshold ladder; bounds are inclusive.
func OverallLevel(percentage float64) string {
	switch {
	case percentage >= 80:
		return model.LevelAdvanced
	case percentage >= 60:
		return model.LevelIntermediate
	case percentage >= 40:
		return model.LevelBasic
	default:
		return model.LevelBeginner
	}
}

func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

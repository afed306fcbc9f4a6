// Package mathutil provides small numeric helpers for derived battery metrics.
package mathutil

import "math"

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ClampPercent clamps v into the [0, 100] range.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 100 {
		return 100
	}

	return v
}

// Ratio returns part/whole*100 rounded to one decimal, or 0 when whole is 0.
func Ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}

	return Round1(float64(part) * 100 / float64(whole))
}

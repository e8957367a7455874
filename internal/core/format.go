package core

import (
	"math"
	"strconv"
)

// FormatValue renders a metric value for labels: whole numbers below 1000,
// thousands with one decimal and a "k" suffix above. Halves round up.
func FormatValue(v float64) string {
	if v >= 1000 {
		return strconv.FormatFloat(roundHalfUp(v/100)/10, 'f', -1, 64) + "k"
	}
	return strconv.FormatFloat(roundHalfUp(v), 'f', -1, 64)
}

func roundHalfUp(v float64) float64 {
	r := math.Floor(v + 0.5)
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

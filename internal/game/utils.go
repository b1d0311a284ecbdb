package game

import (
	"fmt"
	"math"
)

// formatRadians formats an angle as a multiple of π, e.g. "0.50π".
func formatRadians(r float64) string {
	return fmt.Sprintf("%.2fπ", r/math.Pi)
}

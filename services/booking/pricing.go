package booking

import "math"

// AllowedDurations are the consultation lengths in hours.
var AllowedDurations = []float64{1, 1.5, 2}

const DefaultDuration = 1.0

func ValidDuration(hours float64) bool {
	for _, d := range AllowedDurations {
		if d == hours {
			return true
		}
	}
	return false
}

// TotalAmount returns pricePerHour × hours rounded to the nearest whole unit,
// halves rounding away from zero. Whole-hour durations are exact.
func TotalAmount(pricePerHour int, hours float64) int {
	return int(math.Round(float64(pricePerHour) * hours))
}

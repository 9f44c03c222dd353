package eq

import "math"

// MaxDB is the gain magnitude that maps to a normalized value of 1.
const MaxDB = 12.0

// DBToValue converts a decibel gain to the normalized range [-1, 1].
// Gains beyond ±MaxDB clamp to the boundary, infinities clamp to their
// sign and NaN maps to 0 (flat).
func DBToValue(db float64) float64 {
	if math.IsNaN(db) {
		return 0
	}
	return math.Max(-1, math.Min(1, db/MaxDB))
}

// ValueToDB converts a normalized value back to decibels. It is only an exact
// inverse of DBToValue for gains inside [-MaxDB, MaxDB].
func ValueToDB(value float64) float64 {
	return value * MaxDB
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	if places < 0 {
		return v
	}
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if r == 0 {
		// Collapse -0 so reports never print "-0".
		return 0
	}
	return r
}

// RoundAll rounds every value with Round.
func RoundAll(values []float64, places int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = Round(v, places)
	}
	return out
}

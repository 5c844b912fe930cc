package pkg

import "math"

// Round2 rounds to 2 decimal places using round-half-up, which is how KDV is
// rounded on printed invoices.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// ToCents converts an amount to integer kuruş, guarding against float drift.
func ToCents(v float64) int64 {
	return int64(math.Floor(v*100 + 0.5))
}

// FromCents converts integer kuruş back to an amount.
func FromCents(c int64) float64 {
	return float64(c) / 100
}

package entity

import "math"

// ToCents converts a decimal currency amount to integer cents.
// All money is stored and computed in cents; decimals exist only at
// the API boundary.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer cents back to a decimal amount for display.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

func toCents(amount float64) int64 { return ToCents(amount) }

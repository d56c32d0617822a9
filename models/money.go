package models

import "math"

// PriceCents converts a decimal price to whole cents, rounding half away from zero.
func PriceCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CentsToPrice is the inverse of PriceCents.
func CentsToPrice(cents int64) float64 {
	return float64(cents) / 100
}

// All lists every model in migration order.
func All() []any {
	return []any{&User{}, &Dish{}, &CartItem{}, &Reservation{}}
}

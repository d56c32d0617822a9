package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceCents(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{10.50, 1050},
		{0, 0},
		{0.1 + 0.2, 30},
		{19.999, 2000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceCents(tt.price), "price %v", tt.price)
	}
}

func TestCartItem_LineTotalCents(t *testing.T) {
	item := CartItem{Quantity: 3, Dish: Dish{Price: 4.35}}
	assert.Equal(t, int64(1305), item.LineTotalCents())
	assert.Equal(t, 13.05, CentsToPrice(item.LineTotalCents()))
}

package models

import "time"

// CartItem links one user and one dish. There is at most one row per (user, dish);
// repeated adds increase Quantity.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_dish"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DishID    uint      `json:"dish_id" gorm:"not null;uniqueIndex:idx_cart_user_dish"`
	Dish      Dish      `json:"dish" gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// LineTotalCents is price × quantity in integer cents.
func (i CartItem) LineTotalCents() int64 {
	return PriceCents(i.Dish.Price) * int64(i.Quantity)
}

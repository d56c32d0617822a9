package services

import (
	"context"
	"fmt"
	"math"

	"restaurant-web/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cart is a user's cart with its computed total.
type Cart struct {
	Items      []models.CartItem `json:"items"`
	TotalCents int64             `json:"total_cents"`
	Total      float64           `json:"total"`
}

// MaxCartQuantity caps a single cart line.
const MaxCartQuantity = 999

// CartService manages per-user carts.
type CartService struct {
	db *gorm.DB
}

// NewCartService returns a cart service backed by db.
func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Add puts quantity of a dish into the user's cart. An existing line for the
// same dish is incremented in a single statement, as long as the line stays
// within MaxCartQuantity.
func (s *CartService) Add(ctx context.Context, userID, dishID uint, quantity int) error {
	if quantity < 1 || quantity > MaxCartQuantity {
		return ErrInvalidQuantity
	}
	db := s.db.WithContext(ctx)

	var dish models.Dish
	if err := db.Select("id").First(&dish, dishID).Error; err != nil {
		return translate(err)
	}

	item := models.CartItem{UserID: userID, DishID: dishID, Quantity: quantity}
	res := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "dish_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("cart_items.quantity + excluded.quantity <= ?", MaxCartQuantity),
		}},
	}).Create(&item)
	if res.Error != nil {
		return fmt.Errorf("add to cart: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Cart returns every line for the user and the sum of price × quantity.
func (s *CartService) Cart(ctx context.Context, userID uint) (*Cart, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).Preload("Dish").
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	var total int64
	for _, it := range items {
		line, ok := lineTotalCents(it)
		if !ok || total > math.MaxInt64-line {
			return nil, fmt.Errorf("cart %d: %w", userID, ErrTotalOverflow)
		}
		total += line
	}
	return &Cart{Items: items, TotalCents: total, Total: models.CentsToPrice(total)}, nil
}

// lineTotalCents is LineTotalCents with an overflow check.
func lineTotalCents(it models.CartItem) (int64, bool) {
	price := it.Dish.Price * 100
	if it.Quantity < 0 || price < 0 || price >= math.MaxInt64 {
		return 0, false
	}
	cents := models.PriceCents(it.Dish.Price)
	if it.Quantity > 0 && cents > math.MaxInt64/int64(it.Quantity) {
		return 0, false
	}
	return it.LineTotalCents(), true
}

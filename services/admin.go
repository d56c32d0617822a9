package services

import (
	"context"
	"fmt"
	"strings"

	"restaurant-web/models"

	"gorm.io/gorm"
)

// Summary holds the row counts shown on the admin landing page.
type Summary struct {
	Users        int64 `json:"users"`
	Dishes       int64 `json:"dishes"`
	Orders       int64 `json:"orders"`
	Reservations int64 `json:"reservations"`
}

// MaxDishPrice bounds a dish price so cart totals stay in range.
const MaxDishPrice = 100000

// AdminService holds the privileged operations. Callers are expected to have
// checked the admin guard already.
type AdminService struct {
	db            *gorm.DB
	adminUsername string
}

// NewAdminService returns the admin operations; adminUsername is protected from deletion.
func NewAdminService(db *gorm.DB, adminUsername string) *AdminService {
	return &AdminService{db: db, adminUsername: adminUsername}
}

// Summary counts the rows of every table.
func (s *AdminService) Summary(ctx context.Context) (*Summary, error) {
	db := s.db.WithContext(ctx)
	var sum Summary
	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.User{}, &sum.Users},
		{&models.Dish{}, &sum.Dishes},
		{&models.CartItem{}, &sum.Orders},
		{&models.Reservation{}, &sum.Reservations},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &sum, nil
}

// Orders lists every cart item with its owner and dish.
func (s *AdminService) Orders(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).Preload("User").Preload("Dish").Order("id").Find(&items).Error
	return items, err
}

// Users lists every account.
func (s *AdminService) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

// Dishes lists every dish by category and name.
func (s *AdminService) Dishes(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	err := s.db.WithContext(ctx).Order("category, name, id").Find(&dishes).Error
	return dishes, err
}

// CreateDish validates and stores a new dish.
func (s *AdminService) CreateDish(ctx context.Context, d *models.Dish) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	if d.Name == "" || d.Category == "" {
		return ErrMissingFields
	}
	if d.Price < 0 || d.Price > MaxDishPrice {
		return ErrInvalidPrice
	}
	return s.db.WithContext(ctx).Create(d).Error
}

// DeleteOrder removes one cart item.
func (s *AdminService) DeleteOrder(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.CartItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes a user and its cart items. The admin account is refused.
func (s *AdminService) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return translate(err)
		}
		if user.Username == s.adminUsername {
			return ErrProtectedAccount
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("delete cart items: %w", err)
		}
		return tx.Delete(&user).Error
	})
}

// DeleteDish removes a dish and every cart item referencing it. The deleted
// dish is returned so its image can be cleaned up.
func (s *AdminService) DeleteDish(ctx context.Context, id uint) (*models.Dish, error) {
	var dish models.Dish
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&dish, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("dish_id = ?", dish.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("delete cart items: %w", err)
		}
		return tx.Delete(&dish).Error
	})
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

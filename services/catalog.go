package services

import (
	"context"

	"restaurant-web/models"

	"gorm.io/gorm"
)

// Menu maps a category name to its dishes ordered by name.
type Menu map[string][]models.Dish

// CatalogService reads the menu.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService returns a catalog backed by db.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Menu returns every dish grouped by category.
func (s *CatalogService) Menu(ctx context.Context) (Menu, error) {
	var dishes []models.Dish
	if err := s.db.WithContext(ctx).Order("category, name, id").Find(&dishes).Error; err != nil {
		return nil, err
	}
	menu := Menu{}
	for _, d := range dishes {
		menu[d.Category] = append(menu[d.Category], d)
	}
	return menu, nil
}

// Dish returns one dish or ErrNotFound.
func (s *CatalogService) Dish(ctx context.Context, id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := s.db.WithContext(ctx).First(&dish, id).Error; err != nil {
		return nil, translate(err)
	}
	return &dish, nil
}

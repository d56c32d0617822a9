package config

import (
	"errors"
	"fmt"

	"restaurant-web/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the admin account from ADMIN_PASSWORD on first start.
// An existing admin is left untouched.
func SeedAdmin(db *gorm.DB, cfg *Config, log *logrus.Logger) error {
	if cfg.AdminPassword == "" {
		log.Warn("skip seeding admin: ADMIN_PASSWORD not set")
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		log.WithField("username", cfg.AdminUsername).Info("admin already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.User{Username: cfg.AdminUsername, PasswordHash: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.WithField("username", admin.Username).Info("admin account seeded")
	return nil
}

var sampleMenu = []models.Dish{
	{Name: "Borscht", Description: "Beetroot soup with sour cream", Price: 6.50, Category: "Soups"},
	{Name: "Chicken broth", Description: "Clear broth with noodles", Price: 5.00, Category: "Soups"},
	{Name: "Varenyky", Description: "Dumplings with potato and onion", Price: 8.75, Category: "Mains"},
	{Name: "Chicken Kyiv", Description: "Breaded chicken with herb butter", Price: 12.40, Category: "Mains"},
	{Name: "Syrnyky", Description: "Cottage cheese pancakes", Price: 5.90, Category: "Desserts"},
	{Name: "Uzvar", Description: "Dried fruit compote", Price: 2.50, Category: "Drinks"},
}

// SeedMenu inserts a sample menu when the dishes table is empty.
func SeedMenu(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&models.Dish{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count dishes: %w", err)
	}
	if count > 0 {
		log.WithField("dishes", count).Info("menu already present, skip seeding")
		return nil
	}
	dishes := make([]models.Dish, len(sampleMenu))
	copy(dishes, sampleMenu)
	if err := db.Create(&dishes).Error; err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	log.WithField("dishes", len(dishes)).Info("sample menu seeded")
	return nil
}

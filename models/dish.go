package models

import "time"

// Dish is a menu entry. Category is a free-text grouping key.
type Dish struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description"`
	Image       string    `json:"image" gorm:"size:255"` // URL or path returned by the image store
	Price       float64   `json:"price" gorm:"not null;check:price >= 0"`
	Category    string    `json:"category" gorm:"size:100;not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}

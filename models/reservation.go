package models

import "time"

// Reservation is a table booking. Date, time and phone are free text.
type Reservation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	PeopleCount int       `json:"people_count" gorm:"not null"`
	Date        string    `json:"date" gorm:"size:20;not null"`
	Time        string    `json:"time" gorm:"size:10;not null"`
	Phone       string    `json:"phone" gorm:"size:20;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

package services

import (
	"context"
	"strings"

	"restaurant-web/models"

	"gorm.io/gorm"
)

// ReservationService books and manages tables.
type ReservationService struct {
	db *gorm.DB
}

// NewReservationService returns a reservation service backed by db.
func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// Create stores a reservation. Every text field must be non-blank and the
// party size positive. No availability checks are made.
func (s *ReservationService) Create(ctx context.Context, r *models.Reservation) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Name == "" || r.Date == "" || r.Time == "" || r.Phone == "" {
		return ErrMissingFields
	}
	if r.PeopleCount < 1 {
		return ErrInvalidQuantity
	}
	return s.db.WithContext(ctx).Create(r).Error
}

// List returns every reservation, oldest first.
func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	var out []models.Reservation
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// Delete removes a reservation or returns ErrNotFound.
func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidQuantity    = errors.New("quantity must be a whole number between 1 and 999")
	ErrInvalidPrice       = errors.New("price must be between 0 and 100000")
	ErrProtectedAccount   = errors.New("the admin account cannot be deleted")
	ErrTotalOverflow      = errors.New("cart total out of range")
)

// translate maps gorm sentinel errors onto the service ones.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}

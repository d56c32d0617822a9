package services

import (
	"testing"

	"restaurant-web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	db := newTestDB(t)
	auth := newAuth(db)

	user, err := auth.Register(ctx, "  olena ", "borscht")
	require.NoError(t, err)
	assert.Equal(t, "olena", user.Username)
	assert.NotEqual(t, "borscht", user.PasswordHash, "password must be hashed")

	_, err = auth.Register(ctx, "olena", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	db.Model(&models.User{}).Where("username = ?", "olena").Count(&count)
	assert.Equal(t, int64(1), count)

	// The second attempt's password must not work.
	_, err = auth.Login(ctx, "olena", "other")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	auth := newAuth(newTestDB(t))

	_, err := auth.Register(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = auth.Register(ctx, "   ", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = auth.Register(ctx, "ivan", "")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = auth.Register(ctx, "admin", "pw")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Login(t *testing.T) {
	db := newTestDB(t)
	auth := newAuth(db)
	registered, err := auth.Register(ctx, "taras", "kobzar")
	require.NoError(t, err)

	user, err := auth.Login(ctx, "taras", "kobzar")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = auth.Login(ctx, "taras", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, "nobody", "kobzar")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UserByID(t *testing.T) {
	db := newTestDB(t)
	auth := newAuth(db)
	u := createUser(t, db, "lesya")

	got, err := auth.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "lesya", got.Username)

	_, err = auth.UserByID(ctx, u.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.False(t, auth.IsAdmin(got))
	assert.True(t, auth.IsAdmin(&models.User{Username: "admin"}))
	assert.False(t, auth.IsAdmin(nil))
}

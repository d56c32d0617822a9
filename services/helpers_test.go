package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"restaurant-web/config"
	"restaurant-web/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{DBDriver: "sqlite", DBSource: filepath.Join(t.TempDir(), "test.db")}
	db, err := config.OpenDB(cfg, log)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() { _ = config.Close(db) })
	return db
}

func newAuth(db *gorm.DB) *AuthService {
	s := NewAuthService(db, "admin")
	s.cost = bcrypt.MinCost
	return s
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createDish(t *testing.T, db *gorm.DB, name, category string, price float64) *models.Dish {
	t.Helper()
	d := &models.Dish{Name: name, Category: category, Price: price}
	require.NoError(t, db.Create(d).Error)
	return d
}

var ctx = context.Background()

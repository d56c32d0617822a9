package config

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"restaurant-web/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "DB_DRIVER", "DB_SOURCE", "SESSION_SECRET", "SESSION_TTL",
		"ADMIN_USERNAME", "CORS_ORIGINS", "LOGIN_RATE_PER_MIN", "LOGIN_BURST", "IMAGE_STORE", "S3_BUCKET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "restaurant.db", cfg.DBSource)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "local", cfg.ImageStore)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORSOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("ADMIN_USERNAME", "boss")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "boss", cfg.AdminUsername)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad ttl", "SESSION_TTL", "forever"},
		{"bad driver", "DB_DRIVER", "mysql"},
		{"bad gin mode", "GIN_MODE", "production"},
		{"bad store", "IMAGE_STORE", "ftp"},
		{"s3 without bucket", "IMAGE_STORE", "s3"},
		{"bad rate", "LOGIN_RATE_PER_MIN", "lots"},
		{"zero burst", "LOGIN_BURST", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ReleaseNeedsSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("SESSION_SECRET", "something-long-and-random")
	_, err = Load()
	assert.NoError(t, err)
}

func openTestDB(t *testing.T) *Config {
	t.Helper()
	return &Config{
		DBDriver:      "sqlite",
		DBSource:      filepath.Join(t.TempDir(), "test.db"),
		AdminUsername: "admin",
	}
}

func TestOpenDB_MigrateAndSeed(t *testing.T) {
	cfg := openTestDB(t)
	log := quietLogger()

	db, err := OpenDB(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "table for %T", m)
	}

	// Without a password nothing is seeded.
	require.NoError(t, SeedAdmin(db, cfg, log))
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)

	cfg.AdminPassword = "s3cret-pass"
	require.NoError(t, SeedAdmin(db, cfg, log))
	require.NoError(t, SeedAdmin(db, cfg, log))
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	assert.Equal(t, int64(1), count)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.NotEqual(t, "s3cret-pass", admin.PasswordHash)

	require.NoError(t, SeedMenu(db, log))
	require.NoError(t, SeedMenu(db, log))
	db.Model(&models.Dish{}).Count(&count)
	assert.Equal(t, int64(len(sampleMenu)), count)
}

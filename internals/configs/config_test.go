package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "DB_HOST", "PORT", "JWT_TTL_HOURS", "STORAGE_DRIVER", "UPLOAD_PUBLIC_PATH", "SEED_ADMIN"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "/uploads", cfg.Storage.PublicPath)
	assert.Equal(t, "http://localhost:3000", cfg.PublicBaseURL)
	assert.False(t, cfg.SeedAdmin)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "club")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "olimpo")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("STORAGE_DRIVER", "S3")
	t.Setenv("UPLOAD_PUBLIC_PATH", "static/files/")
	t.Setenv("SEED_ADMIN", "true")
	t.Setenv("PUBLIC_BASE_URL", "https://api.example.com/")

	cfg := FromEnv()
	assert.Equal(t, "postgres://club:pw@db:5432/olimpo?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.Equal(t, "/static/files", cfg.Storage.PublicPath)
	assert.True(t, cfg.SeedAdmin)
	assert.Equal(t, "https://api.example.com", cfg.PublicBaseURL)
}

package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// =======================
// CONFIG
// =======================

type Config struct {
	Port   string
	AppEnv string

	DatabaseURL   string
	DBAutoMigrate bool

	JWTSecret string
	JWTTTL    time.Duration

	PublicBaseURL string

	Storage StorageConfig

	CorsAllowOrigins string

	SeedAdmin     bool
	AdminUsername string
	AdminPassword string
	AdminEmail    string

	SponsorExpiryCron string
	LogLevel          string
}

type StorageConfig struct {
	Driver     string // local | oss | s3
	UploadDir  string
	PublicPath string
	MaxWidth   int

	OSSEndpoint   string
	OSSAccessKey  string
	OSSSecretKey  string
	OSSBucket     string
	OSSPublicBase string

	S3Region       string
	S3Bucket       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool
	S3PublicBase   string
}

// =======================
// ENV LOADER
// =======================

// LoadEnv reads .env (when present) and builds the Config from the process environment.
func LoadEnv() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			logrus.Info("⚠️ .env file not found, using system environment")
		} else {
			logrus.Info("✅ .env file loaded")
		}
	}

	cfg := FromEnv()
	if cfg.JWTSecret == "" {
		logrus.Warn("❌ JWT_SECRET is not set")
	}
	return cfg
}

// FromEnv builds the Config without touching .env files.
func FromEnv() *Config {
	port := GetEnv("PORT", "3000")

	cfg := &Config{
		Port:          port,
		AppEnv:        GetEnv("APP_ENV", "development"),
		DatabaseURL:   databaseURL(),
		DBAutoMigrate: envBool("DB_AUTO_MIGRATE", true),

		JWTSecret: strings.TrimSpace(GetEnv("JWT_SECRET")),
		JWTTTL:    time.Duration(envInt("JWT_TTL_HOURS", 24)) * time.Hour,

		PublicBaseURL: strings.TrimRight(GetEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),

		Storage: StorageConfig{
			Driver:     strings.ToLower(GetEnv("STORAGE_DRIVER", "local")),
			UploadDir:  GetEnv("UPLOAD_DIR", "public/uploads"),
			PublicPath: "/" + strings.Trim(GetEnv("UPLOAD_PUBLIC_PATH", "/uploads"), "/"),
			MaxWidth:   envInt("UPLOAD_MAX_WIDTH", 0),

			OSSEndpoint:   GetEnv("OSS_ENDPOINT"),
			OSSAccessKey:  GetEnv("OSS_ACCESS_KEY"),
			OSSSecretKey:  GetEnv("OSS_SECRET_KEY"),
			OSSBucket:     GetEnv("OSS_BUCKET"),
			OSSPublicBase: GetEnv("OSS_PUBLIC_BASE"),

			S3Region:       GetEnv("S3_REGION", "us-east-1"),
			S3Bucket:       GetEnv("S3_BUCKET"),
			S3Endpoint:     GetEnv("S3_ENDPOINT"),
			S3AccessKey:    GetEnv("S3_ACCESS_KEY"),
			S3SecretKey:    GetEnv("S3_SECRET_KEY"),
			S3UsePathStyle: envBool("S3_USE_PATH_STYLE", false),
			S3PublicBase:   GetEnv("S3_PUBLIC_BASE"),
		},

		CorsAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173, http://localhost:3000"),

		SeedAdmin:     envBool("SEED_ADMIN", false),
		AdminUsername: GetEnv("ADMIN_USERNAME", "olimpoadmin"),
		AdminPassword: GetEnv("ADMIN_PASSWORD"),
		AdminEmail:    GetEnv("ADMIN_EMAIL"),

		SponsorExpiryCron: GetEnv("SPONSOR_EXPIRY_CRON", "@daily"),
		LogLevel:          GetEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(GetEnv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := strings.TrimSpace(GetEnv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// databaseURL prefers DATABASE_URL and falls back to the DB_* parts.
func databaseURL() string {
	if url := strings.TrimSpace(GetEnv("DATABASE_URL")); url != "" {
		return url
	}
	host := GetEnv("DB_HOST")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		GetEnv("DB_USER"),
		GetEnv("DB_PASSWORD"),
		host,
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME"),
		GetEnv("DB_SSLMODE", "disable"),
	)
}

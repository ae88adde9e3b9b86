package database

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"clubolimpo_backend/internals/configs"
)

// GormConfig keeps driver errors untranslated so *pgconn.PgError (code,
// constraint, detail) reaches helper.ClassifyDBError.
func GormConfig(log logrus.FieldLogger) *gorm.Config {
	return &gorm.Config{Logger: configs.NewGormLogger(log)}
}

// ConnectDB opens the PostgreSQL pool described by cfg.DatabaseURL.
func ConnectDB(cfg *configs.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL (or DB_HOST/DB_*) is not set")
	}
	log.Info("🔌 Connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true,
	}), GormConfig(log))
	if err != nil {
		return nil, err
	}
	log.Info("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB, log logrus.FieldLogger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Warn("pool tune skipped")
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUpQueries fills the pool in the background once the server is up.
func WarmUpQueries(db *gorm.DB, log logrus.FieldLogger) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := Ping(ctx, db); err != nil {
			log.WithError(err).Warn("warm-up ping failed")
		}
	}()
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying pool.
func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

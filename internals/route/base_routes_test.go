package routes

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db, mock
}

func health(t *testing.T, db *gorm.DB) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	BaseRoutes(app, db)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHealthUp(t *testing.T) {
	db, mock := mockDB(t)
	mock.ExpectPing()

	status, body := health(t, db)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Connected", body["database"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthDatabaseDown(t *testing.T) {
	db, mock := mockDB(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	status, body := health(t, db)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "DOWN", body["status"])
}

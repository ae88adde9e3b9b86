package database

import (
	"errors"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "clubolimpo_backend/internals/helpers"
)

func TestPostgresErrorsKeepConstraintDetail(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := GormConfig(log)
	cfg.DisableAutomaticPing = true
	assert.False(t, cfg.TranslateError)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO teams").WillReturnError(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uq_teams_abbreviated_name",
		Detail:         "Key (abbreviated_name)=(OLI) already exists.",
	})

	err = db.Exec("INSERT INTO teams (abbreviated_name) VALUES (?)", "OLI").Error
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	kind, detail := helper.ClassifyDBError(err)
	assert.Equal(t, helper.DBErrDuplicate, kind)
	assert.Equal(t, "Key (abbreviated_name)=(OLI) already exists.", detail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

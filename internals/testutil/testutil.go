// Package testutil wires an in-memory sqlite database and a full fiber app
// for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"clubolimpo_backend/internals/app"
	"clubolimpo_backend/internals/configs"
	uploadService "clubolimpo_backend/internals/features/uploads/service"
	"clubolimpo_backend/internals/features/uploads/storage"
	authHelper "clubolimpo_backend/internals/features/users/auth/helper"
	authModel "clubolimpo_backend/internals/features/users/auth/model"
	authService "clubolimpo_backend/internals/features/users/auth/service"
	"clubolimpo_backend/internals/registry"
	routes "clubolimpo_backend/internals/route"
)

const JWTSecret = "test-secret"

// NewDB opens a private in-memory database with the full schema.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, one database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, registry.Migrate(db))
	return db
}

func Logger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func Config(t testing.TB) *configs.Config {
	t.Helper()
	return &configs.Config{
		Port:          "0",
		AppEnv:        "test",
		JWTSecret:     JWTSecret,
		JWTTTL:        time.Hour,
		PublicBaseURL: "http://localhost:3000",
		Storage: configs.StorageConfig{
			Driver:     "local",
			UploadDir:  t.TempDir(),
			PublicPath: "/uploads",
		},
		CorsAllowOrigins: "*",
	}
}

// Env is a running app plus the pieces tests poke at directly.
type Env struct {
	App    *fiber.App
	DB     *gorm.DB
	Repos  *registry.Repositories
	Auth   *authService.AuthService
	Config *configs.Config
}

func NewEnv(t testing.TB) *Env {
	t.Helper()
	db := NewDB(t)
	cfg := Config(t)
	log := Logger()

	repos := registry.NewRepositories(db)
	auth := authService.NewAuthService(repos.Users, cfg.JWTSecret, cfg.JWTTTL)
	store, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.PublicBaseURL, cfg.Storage.PublicPath)
	require.NoError(t, err)

	server := app.New(cfg, routes.Deps{
		DB:      db,
		Repos:   repos,
		Auth:    auth,
		Uploads: uploadService.NewUploadService(store, 0),
		Log:     log,
	})
	return &Env{App: server, DB: db, Repos: repos, Auth: auth, Config: cfg}
}

// Token inserts an active user directly and returns a bearer token for it.
func (e *Env) Token(t testing.TB) string {
	t.Helper()
	hashed, err := authHelper.HashPassword("secret123")
	require.NoError(t, err)
	user := &authModel.UserModel{Username: "admin", Password: hashed, IsActive: true}
	require.NoError(t, e.DB.Create(user).Error)

	token, _, err := e.Auth.IssueToken(user)
	require.NoError(t, err)
	return token
}

// Response is a decoded JSON envelope.
type Response struct {
	Status int
	Body   map[string]any
}

func (r Response) Data() map[string]any {
	m, _ := r.Body["data"].(map[string]any)
	return m
}

func (r Response) List() []any {
	l, _ := r.Body["data"].([]any)
	return l
}

func (r Response) Message() string {
	s, _ := r.Body["message"].(string)
	return s
}

// Do sends a JSON request; body may be nil, a string or any marshalable value.
func (e *Env) Do(t testing.TB, method, path string, body any, token string) Response {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.Send(t, req)
}

// Send runs a prepared request through the app.
func (e *Env) Send(t testing.TB, req *http.Request) Response {
	t.Helper()
	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := Response{Status: resp.StatusCode}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out.Body)
	}
	return out
}

// ID reads a numeric id from a decoded JSON object.
func ID(m map[string]any) uint {
	f, _ := m["id"].(float64)
	return uint(f)
}

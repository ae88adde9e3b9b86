package user

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	authService "clubolimpo_backend/internals/features/users/auth/service"
)

// AdminSeed is the account created on an empty users table.
type AdminSeed struct {
	Username string
	Password string
	Email    string
}

// SeedAdmin registers the admin once; a non-empty users table is a no-op.
func SeedAdmin(ctx context.Context, svc *authService.AuthService, seed AdminSeed, log logrus.FieldLogger) error {
	username := strings.TrimSpace(seed.Username)
	if username == "" || seed.Password == "" {
		log.Warn("⚠️ SEED_ADMIN activo pero faltan ADMIN_USERNAME/ADMIN_PASSWORD, se omite")
		return nil
	}

	var email *string
	if e := strings.TrimSpace(seed.Email); e != "" {
		email = &e
	}

	user, err := svc.Register(ctx, username, seed.Password, email)
	if errors.Is(err, authService.ErrAdminExists) {
		log.Info("ℹ️ Ya existe un usuario, seed de admin omitido")
		return nil
	}
	if err != nil {
		return err
	}
	log.WithField("username", user.Username).Info("✅ Usuario admin creado")
	return nil
}

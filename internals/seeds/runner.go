package seeds

import (
	"context"

	"github.com/sirupsen/logrus"

	"clubolimpo_backend/internals/configs"
	authService "clubolimpo_backend/internals/features/users/auth/service"
	users "clubolimpo_backend/internals/seeds/users/auth"
)

func RunAllSeeds(ctx context.Context, cfg *configs.Config, auth *authService.AuthService, log logrus.FieldLogger) {
	//* User
	if cfg.SeedAdmin {
		if err := users.SeedAdmin(ctx, auth, users.AdminSeed{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
			Email:    cfg.AdminEmail,
		}, log); err != nil {
			log.WithError(err).Error("❌ Error al crear el admin inicial")
		}
	}
}

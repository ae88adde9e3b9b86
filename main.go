package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubolimpo_backend/internals/app"
	"clubolimpo_backend/internals/configs"
	database "clubolimpo_backend/internals/databases"
	sponsorScheduler "clubolimpo_backend/internals/features/content/sponsors/scheduler"
	uploadService "clubolimpo_backend/internals/features/uploads/service"
	"clubolimpo_backend/internals/features/uploads/storage"
	authService "clubolimpo_backend/internals/features/users/auth/service"
	"clubolimpo_backend/internals/registry"
	routes "clubolimpo_backend/internals/route"
	"clubolimpo_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()
	log := configs.NewLogger(cfg.LogLevel)

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("❌ Failed to connect to database")
	}
	database.TunePool(db, log)
	database.WarmUpQueries(db, log)

	if cfg.DBAutoMigrate {
		if err := registry.Migrate(db); err != nil {
			log.WithError(err).Fatal("❌ AutoMigrate failed")
		}
		log.Info("✅ Schema migrated")
	}

	repos := registry.NewRepositories(db)
	auth := authService.NewAuthService(repos.Users, cfg.JWTSecret, cfg.JWTTTL)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	seeds.RunAllSeeds(bootCtx, cfg, auth, log)

	store, err := storage.New(bootCtx, cfg, log)
	cancelBoot()
	if err != nil {
		log.WithError(err).Fatal("❌ Storage init failed")
	}

	// ⏱ scheduler setelah DB siap
	expiry := sponsorScheduler.NewSponsorExpiryJob(repos.Sponsors, log)
	cronJobs, err := expiry.Start(cfg.SponsorExpiryCron)
	if err != nil {
		log.WithError(err).Error("⚠️ Sponsor expiry scheduler disabled")
	}

	server := app.New(cfg, routes.Deps{
		DB:      db,
		Repos:   repos,
		Auth:    auth,
		Uploads: uploadService.NewUploadService(store, cfg.Storage.MaxWidth),
		Log:     log,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	server.Server().ReadTimeout = 15 * time.Second
	server.Server().WriteTimeout = 30 * time.Second
	server.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Infof("✅ Listening on :%s", cfg.Port)
		if err := server.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Shutting down...")

	if cronJobs != nil {
		<-cronJobs.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.ShutdownWithContext(ctx)

	database.Close(db)
}

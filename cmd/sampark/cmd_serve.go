package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sampark/frontend/login"
	"sampark/infrastructure/audit"
	"sampark/infrastructure/cache"
	"sampark/infrastructure/config"
	"sampark/infrastructure/files"
	httpserver "sampark/infrastructure/http"
	"sampark/infrastructure/rbac"
	"sampark/infrastructure/sqlite"
	"sampark/infrastructure/store"
	"sampark/models"
)

const sessionPurgeInterval = 10 * time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web portal",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openAuditDB(ctx, cfg.SQLite)
	if err != nil {
		return err
	}
	defer db.Close()

	st, err := store.NewSeeded(cfg.Seed.File, store.WithLogger(logger.Named("store")))
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}
	logger.Info("store seeded", zap.Any("counts", st.Counts()))

	sessions := login.NewSessions(cache.NewUserSessionCache(), cache.NewUserCache(), demoUser(cfg.DemoUser))
	server := httpserver.NewServer(cfg.HTTP, httpserver.Deps{
		Logger:   logger.Named("http"),
		Store:    st,
		DB:       db,
		Audit:    audit.NewService(db, logger.Named("audit")),
		Sessions: sessions,
		Rbac:     rbac.New(cache.NewRbacRolesCache()),
		Blobs:    files.NewBlobs(),
	})
	if err := server.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	logger.Info("sampark listening", zap.String("addr", server.ListenAddr()))

	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := sessions.PurgeExpired(); n > 0 {
				logger.Debug("purged expired sessions", zap.Int("count", n))
			}
		case <-ctx.Done():
			if err := server.Stop(); err != nil {
				logger.Error("graceful shutdown error", zap.Error(err))
				return err
			}
			logger.Info("sampark stopped")
			return nil
		}
	}
}

func openAuditDB(ctx context.Context, c config.SQLiteConfig) (*sqlite.DB, error) {
	db, err := sqlite.OpenDB(c.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if c.MigrationsDir != "" {
		err = sqlite.ApplyMigrations(ctx, db, c.MigrationsDir)
	} else {
		err = sqlite.ApplyEmbeddedMigrations(ctx, db)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return db, nil
}

func demoUser(c config.DemoUserConfig) models.User {
	return models.User{
		FullName:   c.FullName,
		Email:      c.Email,
		Role:       c.Role,
		AgencyName: c.AgencyName,
		StateName:  c.StateName,
	}
}

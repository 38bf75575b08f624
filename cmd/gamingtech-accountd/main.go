package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/celerix-dev/gamingtech-store/internal/accounts"
	"github.com/celerix-dev/gamingtech-store/internal/api"
	"github.com/celerix-dev/gamingtech-store/internal/config"
	"github.com/celerix-dev/gamingtech-store/internal/engine"
	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"github.com/celerix-dev/gamingtech-store/internal/server"
	"github.com/celerix-dev/gamingtech-store/internal/vault"
	"github.com/celerix-dev/gamingtech-store/pkg/schema"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logCfg := cfg.Logging()
	logCfg.Prefix = "accountd"
	logger := logging.New(logCfg)

	store := engine.Open(cfg.DataFile)

	if len(os.Args) > 1 {
		if err := runCommand(logger, store, os.Args[1:]); err != nil {
			logger.Error("command failed", "err", err)
			os.Exit(1)
		}
		return
	}

	for _, key := range cfg.InsecureDefaults() {
		logger.Warn("using insecure development default", "setting", key)
	}

	svc := accounts.NewService(
		store,
		vault.NewPasswordHasher(cfg.BcryptCost),
		vault.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		logger,
	)

	ctx := context.Background()
	if cfg.SeedAdmin {
		if _, err := svc.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logger.Error("failed to seed admin user", "err", err)
			os.Exit(1)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(api.NewAccountRouter(svc, logger), logger)

	if !cfg.DisableTLS {
		cert, err := vault.GenerateSelfSignedCert()
		if err != nil {
			logger.Error("failed to generate TLS certificate", "err", err)
			os.Exit(1)
		}
		srv.SetCertificate(cert)
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		logger.Info("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}()

	logger.Info("account service starting", "port", cfg.AccountPort, "data", store.Path())
	if err := srv.Listen(cfg.AccountPort); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
	<-stopped
	logger.Info("account service stopped")
}

func runCommand(logger logging.Logger, store *engine.FileStore, args []string) error {
	switch args[0] {
	case "import":
		if len(args) < 2 {
			return fmt.Errorf("usage: gamingtech-accountd import <users.json>")
		}
		// Records without a bcrypt hash (such as a plaintext seed) cannot log
		// in and are skipped.
		report, err := engine.Migrate(context.Background(), engine.Open(args[1]), store, func(u schema.UserRecord) bool {
			return u.Email != "" && vault.IsHash(u.PasswordHash)
		})
		if err != nil {
			return err
		}
		logger.Info("import finished",
			"source", args[1],
			"imported", report.Imported,
			"duplicates", report.Duplicates,
			"rejected", report.Rejected,
		)
		return nil
	default:
		return fmt.Errorf("unknown command %q (known: import)", args[0])
	}
}

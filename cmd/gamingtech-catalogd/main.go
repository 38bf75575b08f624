package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/celerix-dev/gamingtech-store/internal/api"
	"github.com/celerix-dev/gamingtech-store/internal/catalog"
	"github.com/celerix-dev/gamingtech-store/internal/config"
	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"github.com/celerix-dev/gamingtech-store/internal/server"
	"github.com/celerix-dev/gamingtech-store/internal/vault"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logCfg := cfg.Logging()
	logCfg.Prefix = "catalogd"
	logger := logging.New(logCfg)

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(api.NewCatalogRouter(catalog.New(logger), logger), logger)

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

	logger.Info("catalog service starting", "port", cfg.CatalogPort)
	if err := srv.Listen(cfg.CatalogPort); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
	<-stopped
	logger.Info("catalog service stopped")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ggbd-labs/finance-server/api"
	"github.com/ggbd-labs/finance-server/internal/auth"
	"github.com/ggbd-labs/finance-server/internal/config"
	"github.com/ggbd-labs/finance-server/internal/logging"
	"github.com/ggbd-labs/finance-server/internal/service"
	"github.com/ggbd-labs/finance-server/internal/storage"
)

const tokenDuration = 24 * time.Hour

func main() {
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	dbStorage, err := storage.NewStorage(connectCtx, envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	logrus.Info("connected to MongoDB")

	svc := service.NewService(dbStorage)
	verifier := auth.NewJWTVerifier(envConfig.JWTSecret, tokenDuration)

	httpRest := api.Rest{
		Logger:     logger,
		Port:       envConfig.HTTPPort,
		CORSOrigin: envConfig.CORSOrigin,
		Service:    svc,
		Verifier:   verifier,
	}

	go func() {
		if err := httpRest.Serve(); err != nil {
			logger.WithError(err).Error("HttpServer.Serve")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpRest.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HttpServer.Shutdown")
	}
	if err := dbStorage.Close(shutdownCtx); err != nil {
		logger.WithError(err).Error("Storage.Close")
	}
}

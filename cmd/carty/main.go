package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/carty/internal/api"
	"github.com/terraincognita07/carty/internal/config"
	"github.com/terraincognita07/carty/internal/db"
	"github.com/terraincognita07/carty/internal/mail"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zapLogger.Sync()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	handler := api.NewHandler(database, cfg, zapLogger, newSender(cfg, zapLogger))

	app := fiber.New(fiber.Config{
		AppName:               "Carty",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("carty listening",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DBPath),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}

// newSender picks the mail transport: the HTTP API client when credentials
// are configured, otherwise a logger that prints the code.
func newSender(cfg config.Config, zapLogger *zap.Logger) mail.Sender {
	if cfg.MailAPIKey != "" && cfg.MailFromEmail != "" {
		return mail.NewAPIClient(cfg.MailAPIKey, cfg.MailFromEmail, cfg.MailFromName)
	}
	return mail.NewLogSender(zapLogger)
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safar/storefront/internal/auth"
	"github.com/safar/storefront/internal/config"
	"github.com/safar/storefront/internal/database"
	"github.com/safar/storefront/internal/handler"
	"github.com/safar/storefront/internal/notify"
	"github.com/safar/storefront/migrations"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Create logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		logger.Fatal("connect to database", zap.Error(err))
	}
	defer db.Close()

	applied, err := database.Migrate(context.Background(), db, migrations.FS, database.DirectionUp)
	if err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}
	logger.Info("database ready", zap.Int("migrations_applied", applied))

	manager := auth.NewManager(cfg.Auth)
	notifier := buildNotifier(cfg, logger)

	router := handler.NewRouter(db, cfg, manager, notifier, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}

// buildNotifier registers the email handlers only when mail is configured;
// otherwise dispatch degrades to a logged skip.
func buildNotifier(cfg *config.Config, logger *zap.Logger) *notify.Dispatcher {
	if !cfg.Mail.Configured() {
		logger.Warn("email settings not configured, order notifications disabled")
		return notify.NewDispatcher(logger)
	}

	sender := notify.NewSMTPSender(cfg.Mail, "Buss Ek Puff Orders")
	return notify.NewDispatcher(logger,
		notify.NewAdminEmail(sender, cfg.Mail.AdminEmail),
		notify.NewCustomerEmail(sender, cfg.Mail.WhatsAppNumber),
	)
}

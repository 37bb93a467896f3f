package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digitaltailor-backend/config"
	"digitaltailor-backend/repository"
	"digitaltailor-backend/routes"
	"digitaltailor-backend/services"
	"digitaltailor-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = utils.GenerateJWTSecret()
		logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	db, err := config.ConnectDB(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect database", zap.Error(err))
	}
	sqlStore := repository.NewGormStore(db)
	if err := sqlStore.Migrate(); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	hub := services.NewHub()

	var directory repository.DirectoryStore = sqlStore
	if cfg.DirectoryStore == "firestore" {
		client, err := config.ConnectFirestore(ctx, cfg)
		if err != nil {
			logger.Fatal("Failed to connect Firestore", zap.Error(err))
		}
		defer client.Close()

		fsStore := repository.NewFirestoreStore(client)
		// web clients write to the same collections; relay their changes
		fsStore.Listen(ctx, logger, hub.Publish)
		directory = fsStore
	}

	var texts services.TextSender
	if cfg.TwilioEnabled() {
		texts = services.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken,
			cfg.TwilioPhoneNumber, cfg.TwilioWhatsAppNumber)
	} else {
		logger.Warn("Twilio credentials not set, customer notifications are disabled")
	}
	var email services.EmailClient
	if cfg.SendGridEnabled() {
		email = services.NewSendGridClient(cfg.SendGridAPIKey)
	}

	notifier := services.NewNotifier(services.NotifierConfig{
		Texts:       texts,
		Email:       email,
		Settings:    services.AccountChannels{Users: sqlStore},
		Logs:        sqlStore,
		Logger:      logger,
		CountryCode: cfg.DefaultCountryCode,
		FromEmail:   cfg.DigestFromEmail,
	})

	customerService := services.NewCustomerService(directory, hub, logger)
	orderService := services.NewOrderService(directory, notifier, hub, logger)
	reminderService := services.NewReminderService(directory, sqlStore, sqlStore, orderService, notifier, logger)
	if err := reminderService.StartScheduler(cfg.ReminderSchedule); err != nil {
		logger.Fatal("Failed to start reminder scheduler", zap.Error(err))
	}
	defer reminderService.Stop()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := routes.SetupRouter(routes.Dependencies{
		Config:        cfg,
		Logger:        logger,
		Users:         sqlStore,
		Templates:     sqlStore,
		Notifications: sqlStore,
		Customers:     customerService,
		Orders:        orderService,
		Reminders:     reminderService,
		Hub:           hub,
	})
	printRoutes(r, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logger.Info("Starting HTTP server",
			zap.String("port", cfg.Port),
			zap.String("db_driver", cfg.DBDriver),
			zap.String("directory_store", cfg.DirectoryStore))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func printRoutes(r *gin.Engine, logger *zap.Logger) {
	for _, route := range r.Routes() {
		logger.Debug("route", zap.String("method", route.Method), zap.String("path", route.Path))
	}
}

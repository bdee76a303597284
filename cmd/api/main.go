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

	"portfolio-contact-backend/config"
	_ "portfolio-contact-backend/docs" // Important for Swagger
	v1 "portfolio-contact-backend/internal/delivery/http/v1"
	"portfolio-contact-backend/internal/usecase"
	"portfolio-contact-backend/pkg/email"
	"portfolio-contact-backend/pkg/logger"
	"portfolio-contact-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio Contact API
// @version         1.0
// @description     Receives portfolio contact-form submissions and relays them by email.
// @host            localhost:5000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Environment, cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Mail Transport
	var transport email.Transport
	switch cfg.MailTransport {
	case config.TransportLog:
		transport = email.NewLogTransport(logger.Log)
	default:
		if !cfg.MailConfigured() {
			logger.Log.Warn("Email service not fully configured, set GMAIL_USER and GMAIL_APP_PASSWORD")
		}
		transport = email.NewSMTPTransport(email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		})
	}
	dispatcher := email.NewDispatcher(transport, logger.Log)

	// Startup check is a liveness warning only; the server starts either way
	go verifyTransport(dispatcher)

	// 4. Setup UseCases
	renderer := email.NewRenderer(email.RendererConfig{
		FromAddress: cfg.SMTPUsername,
		Recipient:   cfg.Recipient(),
		OwnerName:   cfg.OwnerName,
		OwnerTitle:  cfg.OwnerTitle,
		Location:    cfg.Location(),
	})
	contactUC := usecase.NewContactUsecase(renderer, dispatcher, validation.New(), usecase.ContactOptions{
		AutoReply: cfg.SendAutoReply,
	})
	healthUC := usecase.NewHealthUsecase()

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	logStartup(cfg)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func verifyTransport(dispatcher *email.Dispatcher) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := dispatcher.Verify(ctx); err != nil {
		logger.Log.Error("Mail transport configuration error, check GMAIL_USER and GMAIL_APP_PASSWORD", "error", err)
		return
	}
	logger.Log.Info("Mail transport is ready to send emails")
}

func logStartup(cfg *config.Config) {
	autoReply := "Disabled"
	if cfg.SendAutoReply {
		autoReply = "Enabled"
	}
	sender := cfg.SMTPUsername
	if sender == "" {
		sender = "Not configured"
	}
	recipient := cfg.Recipient()
	if recipient == "" {
		recipient = "Not configured"
	}

	logger.Log.Info("Portfolio backend server started",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"transport", cfg.MailTransport,
		"sender", sender,
		"recipient", recipient,
		"auto_reply", autoReply,
		"endpoints", v1.AvailableEndpoints,
	)
}

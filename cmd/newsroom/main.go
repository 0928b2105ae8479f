package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"newsroom/internal/config"
	"newsroom/internal/events"
	"newsroom/internal/mailer"
	"newsroom/internal/server"
	"newsroom/internal/service"
	"newsroom/internal/social"
	"newsroom/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize stores
	userStore := postgres.NewUserStore(db)
	publisherStore := postgres.NewPublisherStore(db)
	articleStore := postgres.NewArticleStore(db)
	newsletterStore := postgres.NewNewsletterStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Notification collaborators
	smtpMailer := mailer.New(cfg.SMTP, logger)
	socialClient := social.New(social.Config{
		BaseURL: cfg.Social.BaseURL,
		Token:   cfg.Social.Token,
		Timeout: cfg.Social.Timeout,
	}, logger)

	// The approval-event publisher is optional; the notifier tolerates nil.
	var eventPublisher service.EventPublisher
	if cfg.Events.URL != "" {
		rabbitMQ, err := events.NewRabbitMQ(events.Config{
			URL:        cfg.Events.URL,
			Exchange:   cfg.Events.Exchange,
			RoutingKey: cfg.Events.RoutingKey,
			QueueName:  cfg.Events.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		eventPublisher = rabbitMQ
	}

	notifier := service.NewFanOutNotifier(userStore, smtpMailer, socialClient, eventPublisher, logger)

	contentService := service.NewContentService(
		userStore,
		publisherStore,
		articleStore,
		newsletterStore,
		txManager,
		notifier,
		logger,
	)
	userService := service.NewUserService(userStore, publisherStore, txManager, logger)

	srv := server.New(userService, contentService, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting newsroom", "addr", cfg.HTTP.Addr)

	if err := srv.Start(ctx, cfg.HTTP.Addr); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

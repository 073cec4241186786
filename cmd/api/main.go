package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aiconsult_backend/internal/contact"
	"aiconsult_backend/internal/contact/repository"
	"aiconsult_backend/internal/contact/service"
	"aiconsult_backend/internal/content"
	"aiconsult_backend/internal/email"
	"aiconsult_backend/internal/events"
	apphttp "aiconsult_backend/internal/http"
	"aiconsult_backend/internal/http/router"
	"aiconsult_backend/internal/notification"
	"aiconsult_backend/internal/readiness"
	"aiconsult_backend/internal/roi"
	"aiconsult_backend/internal/scheduler"
	"aiconsult_backend/platform/config"
	"aiconsult_backend/platform/db"
	"aiconsult_backend/platform/logger"
	"aiconsult_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var redisClient *redis.Client
	if cfg.IsRedisEnabled() {
		if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
			c, err := db.NewRedis(ctx, cfg)
			if err != nil {
				return err
			}
			redisClient = c
			return nil
		}); err != nil {
			log.Error("failed to connect to redis", "error", err)
			panic("failed to connect to redis: " + err.Error())
		}
		defer func() { _ = redisClient.Close() }()
		log.Info("redis connection established")
	} else {
		log.Warn("REDIS_URL not configured; contact inbox and follow-ups disabled")
	}

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	sender, err := email.NewSender(cfg, log)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}

	val := validator.New()

	var inbox repository.Inbox = repository.NoopInbox{}
	if redisClient != nil {
		inbox = repository.NewRedisInbox(redisClient, cfg.GetInboxRetention())
	}

	followUps, closeScheduler := initFollowUpScheduler(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	// ========================================================================
	// Domain Modules
	// ========================================================================

	notificationModule := notification.New(sender, cfg, inbox, log)
	notificationModule.RegisterHandlers(eventBus)

	contactModule := contact.NewModule(inbox, eventBus, followUps, val, cfg, log)
	roiModule := roi.NewModule(val)
	readinessModule := readiness.NewModule(val)

	contentModule, err := content.NewModule(cfg, log)
	if err != nil {
		log.Error("failed to load content", "error", err)
		panic("failed to load content: " + err.Error())
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			contactModule,
			roiModule,
			readinessModule,
			contentModule,
		},
	}
	if redisClient != nil {
		app.Health = db.NewRedisHealth(redisClient)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initFollowUpScheduler(cfg *config.Config, log *logger.Logger) (service.FollowUpScheduler, func()) {
	if !cfg.IsRedisEnabled() || cfg.GetContactFollowUpDelay() <= 0 {
		log.Info("contact follow-up reminders disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize follow-up scheduler client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}

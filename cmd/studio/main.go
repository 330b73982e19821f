package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/config"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/http"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/http/view"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/log"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/ratelimit"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/repository"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/service"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/session"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/db"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/kv"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/telemetry"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/whatsapp"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/cmdutil"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running studio application: %v\n", err)
		os.Exit(1)
	}
}

func envFile() string {
	if f := os.Getenv("ENV_FILE"); f != "" {
		return f
	}
	return ".env"
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type Config struct {
		Log       config.Log
		Postgres  config.Postgres
		HTTP      config.HTTP
		Otel      config.Otel
		Admin     config.Admin
		WhatsApp  config.WhatsApp
		Seed      config.Seed
		Session   config.Session
		Redis     config.Redis
		RateLimit config.RateLimit
	}
	cfg, err := config.New[Config](envFile())
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	if err := db.Migrate(pgxPool); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	redisClient, err := kv.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("error creating redis client: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	dbClient := db.NewClient(pgxPool)
	productRepository := repository.NewProductRepository(dbClient)
	messageRepository := repository.NewMessageRepository(dbClient)

	productService := service.NewProductService(dbClient, v, productRepository)
	messageService := service.NewMessageService(v, messageRepository)

	var (
		sessionStore session.Store = session.NewMemoryStore()
		loginLimiter service.Limiter
	)
	if redisClient != nil {
		sessionStore = session.NewRedisStore(redisClient)

		if cfg.RateLimit.LoginPerMinute > 0 {
			limiter, err := ratelimit.NewFixedWindowLimiter(redisClient, "", cfg.RateLimit.LoginPerMinute, time.Minute)
			if err != nil {
				return fmt.Errorf("error creating login rate limiter: %w", err)
			}
			loginLimiter = limiter
		}
	} else {
		logger.WarnContext(ctx, "redis not configured, sessions are kept in memory and login is not rate limited")
	}

	if cfg.Admin.Password == "" {
		logger.WarnContext(ctx, "ADMIN_PASS is empty, admin login is disabled")
	}
	authService := service.NewAuthService(cfg.Admin.Password, loginLimiter)

	if cfg.Seed.Products {
		n, err := productService.SeedIfEmpty(ctx)
		if err != nil {
			return fmt.Errorf("error seeding products: %w", err)
		}
		if n > 0 {
			logger.InfoContext(ctx, "seeded demo products", slog.Int64("count", n))
		}
	}

	renderer, err := view.New()
	if err != nil {
		return fmt.Errorf("error loading templates: %w", err)
	}

	svc := http.New(cfg.HTTP, logger, http.Deps{
		View:       renderer,
		Sessions:   session.NewManager(sessionStore, cfg.Session),
		WhatsApp:   whatsapp.NewLinker(cfg.WhatsApp.Number),
		Health:     dbClient,
		ProductSvc: productService,
		MessageSvc: messageService,
		AuthSvc:    authService,
	})
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-cmdutil.InterruptChan()

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}

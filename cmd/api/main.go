package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"cmsapi/docs"
	"cmsapi/internal/config"
	"cmsapi/internal/database"
	"cmsapi/internal/database/migration"
	handlers "cmsapi/internal/http/handler"
	"cmsapi/internal/http/middleware"
	"cmsapi/internal/logging"
	"cmsapi/internal/otel"
	"cmsapi/internal/repository/postgres"
	"cmsapi/internal/service"
	"cmsapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title CMS API
// @version 1.0
// @description Blog posts, tags, users and media stored in S3-compatible object storage.
// @BasePath /api/v1
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logging.New(cfg.Log, cfg.IsDevelopment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store, err := newStorage(ctx, cfg.Storage, reg)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	// Repositories, transaction manager and services
	tx := database.NewTxManager(db)
	userRepo := postgres.NewUserPostgres(db)
	tagRepo := postgres.NewTagPostgres(db)
	mediaRepo := postgres.NewMediaPostgres(db)
	postRepo := postgres.NewPostPostgres(db)

	svcs := handlers.Services{
		Posts:        service.NewPostService(tx, postRepo, userRepo, tagRepo, mediaRepo, log),
		Media:        service.NewMediaService(tx, store, mediaRepo, userRepo, log),
		Tags:         service.NewTagService(tx, tagRepo, log),
		Users:        service.NewUserService(tx, userRepo, log),
		SignedURLTTL: time.Duration(cfg.Storage.PresignTTLSec) * time.Second,
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "cmsapi",
		ErrorHandler: handlers.ErrorHandler(log),
		BodyLimit:    cfg.MaxUploadBytes,
	})

	// Logger renders chain errors, so the middlewares wrapping it observe final statuses.
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Logger(log))

	handlers.RegisterRoutes(app, db, reg, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", ":"+cfg.Port), zap.String("storage_driver", cfg.Storage.Driver))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newStorage selects the object storage driver and wraps it with spans and metrics.
func newStorage(ctx context.Context, cfg config.StorageConfig, reg prometheus.Registerer) (storage.Storage, error) {
	var (
		s   storage.Storage
		err error
	)
	switch cfg.Driver {
	case "s3":
		s, err = storage.NewS3(ctx, cfg)
	case "minio":
		s, err = storage.NewMinIO(ctx, cfg)
	default:
		err = errors.New("unknown STORAGE_DRIVER " + cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return storage.Instrument(s, cfg.Driver, reg)
}

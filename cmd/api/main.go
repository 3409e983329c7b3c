package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/employee-board/internal/api/http"
	"github.com/spec-kit/employee-board/internal/api/http/handlers"
	"github.com/spec-kit/employee-board/internal/config"
	"github.com/spec-kit/employee-board/internal/dataset"
	"github.com/spec-kit/employee-board/internal/events"
	"github.com/spec-kit/employee-board/internal/observability"
	"github.com/spec-kit/employee-board/internal/persistence"
	"github.com/spec-kit/employee-board/internal/repository"
	"github.com/spec-kit/employee-board/internal/service"
	"github.com/spec-kit/employee-board/internal/session"
	"github.com/spec-kit/employee-board/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loc, err := cfg.App.Location()
	if err != nil {
		logger.Fatal("invalid time zone", zap.Error(err))
	}
	clock := service.NewClock(loc)

	schema, err := dataset.LoadSchema(cfg.Upload.ColumnMapPath)
	if err != nil {
		logger.Fatal("failed to load column map", zap.Error(err))
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	var uploads repository.UploadRepository
	if pg.Enabled() {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		uploads = repository.NewUploadRepository(pg.PoolHandle())
	}

	var (
		redis *persistence.Redis
		store session.Store
	)
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		store = session.NewRedisStore(redis.Client, cfg.Session.TTL())
	default:
		store = session.NewMemoryStore(cfg.Session.TTL())
	}

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, uploads, logger)
	worker.StartAuditWorker(auditService)

	datasetService := service.NewDatasetService(service.DatasetDependencies{
		Loader:     dataset.NewLoader(schema),
		Store:      store,
		Dispatcher: dispatcher,
		Clock:      clock,
		Logger:     logger,
	})
	queryService := service.NewQueryService(clock)
	exportService := service.NewExportService(logger)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    int(cfg.Upload.MaxBytes),
		ErrorHandler: httptransport.ErrorHandler(logger, metrics, cfg.Upload.MaxBytes),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.Upload.MaxBytes)

	tokens := session.NewTokenManager(cfg.Session.Secret, cfg.Session.TTL())
	secureCookie := cfg.App.Env == "production"

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Datasets:    handlers.NewDatasetHandler(datasetService, auditService),
		Employees:   handlers.NewEmployeesHandler(datasetService, queryService),
		StatusBoard: handlers.NewStatusBoardHandler(datasetService, queryService, exportService),
		Session:     session.NewMiddleware(tokens, cfg.Session.CookieName, secureCookie, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

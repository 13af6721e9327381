package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/url-registry/internal/config"
	"github.com/avc-dev/url-registry/internal/config/db"
	"github.com/avc-dev/url-registry/internal/handler"
	"github.com/avc-dev/url-registry/internal/middleware"
	"github.com/avc-dev/url-registry/internal/migrations"
	"github.com/avc-dev/url-registry/internal/repository"
	"github.com/avc-dev/url-registry/internal/service"
	"github.com/avc-dev/url-registry/internal/store"
	"github.com/avc-dev/url-registry/internal/usecase"
	"go.uber.org/zap"
)

type dependencies struct {
	handler *handler.Handler
	auth    *middleware.AuthMiddleware
	db      db.Database
}

func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, database, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	closeOnErr := func() {
		if database != nil {
			database.Close()
		}
	}

	repo := repository.New(storage)

	urlService := service.NewURLService(repo, cfg)
	credentialService, err := service.NewCredentialService(repo, cfg)
	if err != nil {
		closeOnErr()
		return nil, err
	}
	authService := service.NewAuthService(repo, cfg.JWTSecret, cfg.TokenTTL)

	urlUsecase := usecase.NewURLUsecase(urlService, cfg, logger)
	userUsecase := usecase.NewUserUsecase(credentialService, authService, cfg, logger)

	if err := userUsecase.BootstrapAdmin(ctx); err != nil {
		closeOnErr()
		return nil, err
	}

	return &dependencies{
		handler: handler.New(urlUsecase, userUsecase, logger, repo),
		auth:    middleware.NewAuthMiddleware(authService, logger),
		db:      database,
	}, nil
}

// initStorage picks the backend: PostgreSQL when a DSN is set, then the
// JSON file, then memory
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, db.Database, error) {
	if cfg.DatabaseDSN != "" {
		dbConfig := db.NewConfig(cfg.DatabaseDSN)
		dbConfig.MaxConns = cfg.DatabaseMaxConn

		database, err := dbConfig.Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := migrations.NewMigrator(database.DB(), logger).RunUp(ctx); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		logger.Info("Using database storage")
		return store.NewDatabaseStore(database.Pool), database, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil, nil
}

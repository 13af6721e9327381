package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed schema/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded schema for the urls and users tables
type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewMigrator(db *sql.DB, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// newInstance runs migrate on a single connection borrowed from m.db.
// Closing the instance returns that connection and leaves m.db open.
func (m *Migrator) newInstance(ctx context.Context) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "schema")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire migration connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	instance, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return instance, nil
}

func (m *Migrator) close(instance *migrate.Migrate) {
	srcErr, dbErr := instance.Close()
	if err := errors.Join(srcErr, dbErr); err != nil {
		m.logger.Warn("failed to close migrate instance", zap.Error(err))
	}
}

// RunUp applies every pending migration
func (m *Migrator) RunUp(ctx context.Context) error {
	m.logger.Info("Starting database migrations")

	instance, err := m.newInstance(ctx)
	if err != nil {
		return err
	}
	defer m.close(instance)

	err = instance.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := instance.Version()
	m.logger.Info("Migrations applied successfully", zap.Uint("version", version))
	return nil
}

// RunDown rolls every migration back. Used by integration tests.
func (m *Migrator) RunDown(ctx context.Context) error {
	instance, err := m.newInstance(ctx)
	if err != nil {
		return err
	}
	defer m.close(instance)

	if err := instance.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}

	return nil
}

// GetVersion reports the applied version and whether it is dirty
func (m *Migrator) GetVersion(ctx context.Context) (uint, bool, error) {
	instance, err := m.newInstance(ctx)
	if err != nil {
		return 0, false, err
	}
	defer m.close(instance)

	return instance.Version()
}

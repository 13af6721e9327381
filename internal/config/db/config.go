// Package db owns the PostgreSQL connection pool.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Config holds the PostgreSQL pool settings
type Config struct {
	DSN            string
	MaxConns       int32
	ConnectTimeout time.Duration
}

// NewConfig returns pool settings for dsn
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:            dsn,
		MaxConns:       10,
		ConnectTimeout: 5 * time.Second,
	}
}

// Connect dials the pool and checks the server answers. The *sql.DB used
// by migrations shares the pool's connections.
func (c *Config) Connect(ctx context.Context) (*Conn, error) {
	if c.DSN == "" {
		return nil, errors.New("database DSN is required")
	}

	poolCfg, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if c.MaxConns > 0 {
		poolCfg.MaxConns = c.MaxConns
	}
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.ConnectTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// the sql view is only used for migrations and keeps no idle
	// connections, so nothing stays checked out of the pool afterwards
	sqlDB := stdlib.OpenDBFromPool(pool)
	sqlDB.SetMaxIdleConns(0)

	return &Conn{Pool: pool, sqlDB: sqlDB}, nil
}

//go:generate mockery --name Database --output ../../mocks --outpkg mocks --with-expecter

// Database is what the application needs to own a database connection
type Database interface {
	Ping(ctx context.Context) error
	Close()
	// DB returns the *sql.DB used by migrations
	DB() *sql.DB
}

// Conn is an open pool plus its database/sql view
type Conn struct {
	Pool  *pgxpool.Pool
	sqlDB *sql.DB
}

func (c *Conn) Ping(ctx context.Context) error {
	return c.Pool.Ping(ctx)
}

// Close releases the sql view first; it borrows connections from the pool
func (c *Conn) Close() {
	_ = c.sqlDB.Close()
	c.Pool.Close()
}

func (c *Conn) DB() *sql.DB {
	return c.sqlDB
}

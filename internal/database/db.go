// Package database provides the connection pool and transaction helpers shared by
// the repositories and migrations. MariaDB/MySQL, PostgreSQL and SQLite are supported.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql" // Import MySQL driver
	_ "github.com/lib/pq"              // Import PostgreSQL driver
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // Import SQLite driver

	"github.com/yasinhessnawi1/sharecloud/internal/config"
	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

// Pool represents a database connection pool
type Pool struct {
	*sql.DB

	// Driver is the configured driver name, used to pick SQL dialect details
	Driver string
}

// Connect creates a new database connection pool
func Connect(cfg *config.AppConfig) (*Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DBConnectionTimeout)
	defer cancel()

	driver := cfg.Database.Driver
	log.Info().
		Str("driver", driver).
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.Name).
		Str("user", cfg.Database.User).
		Msg("Connecting to database")

	switch driver {
	case constants.DriverMySQL:
		if err := ensureMySQLDatabase(ctx, &cfg.Database); err != nil {
			return nil, err
		}
	case constants.DriverSQLite:
		if dir := filepath.Dir(cfg.Database.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	case constants.DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := sql.Open(driverName(driver), cfg.Database.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool
	if driver == constants.DriverSQLite {
		// SQLite allows a single writer
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.Database.MaxConns)
		db.SetMaxIdleConns(cfg.Database.MinConns)
	}
	db.SetConnMaxLifetime(constants.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(constants.DBConnMaxIdleTime)

	// Verify connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("driver", driver).Msg("Successfully connected to database")

	return &Pool{DB: db, Driver: driver}, nil
}

// ensureMySQLDatabase creates the configured schema if it does not exist yet
func ensureMySQLDatabase(ctx context.Context, dbs *config.DatabaseSettings) error {
	password := dbs.Password
	if password != "" {
		password = ":" + password
	}
	rootDSN := fmt.Sprintf("%s%s@tcp(%s:%d)/", dbs.User, password, dbs.Host, dbs.Port)

	rootDB, err := sql.Open(constants.DriverMySQL, rootDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to root database: %w", err)
	}
	defer rootDB.Close()

	if _, err := rootDB.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbs.Name)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	log.Info().Msgf("Ensured database '%s' exists", dbs.Name)
	return nil
}

// driverName maps a configured driver onto the name registered with database/sql
func driverName(driver string) string {
	if driver == constants.DriverSQLite {
		// modernc.org/sqlite registers itself as "sqlite"
		return "sqlite"
	}
	return driver
}

// Close closes the database connection pool
func (p *Pool) Close() {
	if p != nil && p.DB != nil {
		log.Info().Msg("Closing database connection pool")
		if err := p.DB.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection pool")
		}
	}
}

// Transaction executes a function within a transaction
func (p *Pool) Transaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := p.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Roll back and re-panic so callers see the original failure
	defer func() {
		if r := recover(); r != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("Failed to rollback transaction after panic")
			}
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// HealthCheck performs a health check on the database connection
func (p *Pool) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DBHealthCheckTimeout)
	defer cancel()

	if err := p.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	// Run a simple query to verify database functionality
	var result int
	if err := p.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("database query test failed: %w", err)
	}

	if result != 1 {
		return fmt.Errorf("database returned unexpected result: %d", result)
	}

	return nil
}

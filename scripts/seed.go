// Package scripts provides utility scripts for database and system management.
//
// Seeds populate the data the server needs on first start. Executed seeds are
// tracked in the seeds table, so seeding is safe to run on every start.
package scripts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/config"
	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/database"
)

// Seeder handles database seeding.
type Seeder struct {
	db      *database.Pool
	shipped []string
	version string
}

// NewSeeder creates a new seeder that registers the apps shipped with this build.
func NewSeeder(db *database.Pool, cfg *config.AppConfig) *Seeder {
	return &Seeder{
		db:      db,
		shipped: cfg.Apps.Shipped,
		version: cfg.App.Version,
	}
}

// SeedDatabase runs every seed that has not been executed yet.
func (s *Seeder) SeedDatabase(ctx context.Context) error {
	log.Info().Msg("Seeding database")
	startTime := time.Now()

	if err := s.createSeedsTable(ctx); err != nil {
		return fmt.Errorf("failed to create seeds table: %w", err)
	}

	executedSeeds, err := s.getExecutedSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to get executed seeds: %w", err)
	}

	seeds := []struct {
		Name     string
		SeedFunc func(ctx context.Context, tx *sql.Tx) error
	}{
		{"shipped_apps", s.seedShippedApps},
	}

	for _, seed := range seeds {
		if executedSeeds[seed.Name] {
			log.Debug().Str("seed", seed.Name).Msg("Seed already executed")
			continue
		}

		log.Info().Str("seed", seed.Name).Msg("Running seed")
		if err := s.runSeed(ctx, seed.Name, seed.SeedFunc); err != nil {
			return err
		}
	}

	log.Info().
		Dur("duration", time.Since(startTime)).
		Msg("Database seeding completed")

	return nil
}

// createSeedsTable creates the seeds table if it doesn't exist.
func (s *Seeder) createSeedsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS seeds (
			name VARCHAR(255) NOT NULL PRIMARY KEY,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// getExecutedSeeds returns the names of executed seeds.
func (s *Seeder) getExecutedSeeds(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM seeds`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	seeds := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		seeds[name] = true
	}

	return seeds, rows.Err()
}

// runSeed runs a seed function within a transaction and records it.
func (s *Seeder) runSeed(ctx context.Context, name string, seedFunc func(ctx context.Context, tx *sql.Tx) error) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := seedFunc(ctx, tx); err != nil {
			return fmt.Errorf("seed %s failed: %w", name, err)
		}

		if _, err := tx.ExecContext(ctx, s.db.Rebind(`INSERT INTO seeds (name) VALUES (?)`), name); err != nil {
			return fmt.Errorf("failed to record seed: %w", err)
		}

		return nil
	})
}

// seedShippedApps registers the shipped apps as installed and enabled for everyone.
// Keys that already exist are left untouched so an admin's choice survives a reseed.
func (s *Seeder) seedShippedApps(ctx context.Context, tx *sql.Tx) error {
	query := s.db.Rebind(`SELECT appid, configkey FROM appconfig WHERE configkey IN (?, ?)`)
	rows, err := tx.QueryContext(ctx, query, constants.ConfigKeyEnabled, constants.ConfigKeyInstalledVersion)
	if err != nil {
		return fmt.Errorf("failed to query existing apps: %w", err)
	}

	existing := make(map[string]bool)
	for rows.Next() {
		var appID, key string
		if err := rows.Scan(&appID, &key); err != nil {
			rows.Close()
			return err
		}
		existing[appID+"/"+key] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	insert := s.db.Rebind(`INSERT INTO appconfig (appid, configkey, configvalue) VALUES (?, ?, ?)`)
	insertedCount := 0
	for _, appID := range s.shipped {
		values := []struct{ key, value string }{
			{constants.ConfigKeyInstalledVersion, s.version},
			{constants.ConfigKeyEnabled, constants.EnabledYes},
		}
		for _, v := range values {
			if existing[appID+"/"+v.key] {
				continue
			}
			if _, err := tx.ExecContext(ctx, insert, appID, v.key, v.value); err != nil {
				return fmt.Errorf("failed to register app %s: %w", appID, err)
			}
			insertedCount++
		}
	}

	log.Info().
		Int("shipped_apps", len(s.shipped)).
		Int("inserted_keys", insertedCount).
		Msg("Shipped apps seeding completed")

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/database"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// AppConfigRepository defines methods for reading and writing per-app configuration values
type AppConfigRepository interface {
	GetValue(ctx context.Context, appID, key string) (string, error)
	GetValuesByKey(ctx context.Context, key string) (map[string]string, error)
	SetValue(ctx context.Context, appID, key, value string) error
}

// SQLAppConfigRepository is the database/sql implementation of AppConfigRepository.
// Queries are written with "?" placeholders and rebound for the pool's driver.
type SQLAppConfigRepository struct {
	db *database.Pool
}

// NewAppConfigRepository creates a new AppConfigRepository
func NewAppConfigRepository(db *database.Pool) AppConfigRepository {
	return &SQLAppConfigRepository{
		db: db,
	}
}

// GetValue retrieves a single configuration value
func (r *SQLAppConfigRepository) GetValue(ctx context.Context, appID, key string) (string, error) {
	startTime := time.Now()

	query := r.db.Rebind(`
        SELECT configvalue
        FROM appconfig
        WHERE appid = ? AND configkey = ?
    `)

	var value sql.NullString
	err := r.db.QueryRowContext(ctx, query, appID, key).Scan(&value)

	utils.LogDBQuery(query, []interface{}{appID, key}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", utils.NewNotFoundError("AppConfig", fmt.Sprintf("%s/%s", appID, key))
		}
		return "", fmt.Errorf("failed to get app config value: %w", err)
	}

	return value.String, nil
}

// GetValuesByKey returns the value of key for every app that has it, keyed by app id
func (r *SQLAppConfigRepository) GetValuesByKey(ctx context.Context, key string) (map[string]string, error) {
	startTime := time.Now()

	query := r.db.Rebind(`
        SELECT appid, configvalue
        FROM appconfig
        WHERE configkey = ?
        ORDER BY appid
    `)

	rows, err := r.db.QueryContext(ctx, query, key)

	utils.LogDBQuery(query, []interface{}{key}, time.Since(startTime), err)

	if err != nil {
		return nil, fmt.Errorf("failed to get app config values: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	values := make(map[string]string)
	for rows.Next() {
		var appID string
		var value sql.NullString
		if err := rows.Scan(&appID, &value); err != nil {
			return nil, fmt.Errorf("failed to scan app config value: %w", err)
		}
		values[appID] = value.String
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating app config values: %w", err)
	}

	return values, nil
}

// SetValue stores a configuration value, replacing any previous value.
// The replace runs as delete and insert inside one transaction, which works
// the same on every supported driver.
func (r *SQLAppConfigRepository) SetValue(ctx context.Context, appID, key, value string) error {
	startTime := time.Now()

	deleteQuery := r.db.Rebind(`DELETE FROM appconfig WHERE appid = ? AND configkey = ?`)
	insertQuery := r.db.Rebind(`INSERT INTO appconfig (appid, configkey, configvalue) VALUES (?, ?, ?)`)

	err := r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, appID, key); err != nil {
			return fmt.Errorf("failed to clear app config value: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, appID, key, value); err != nil {
			return fmt.Errorf("failed to insert app config value: %w", err)
		}
		return nil
	})

	utils.LogDBQuery(insertQuery, []interface{}{appID, key, value}, time.Since(startTime), err)

	if err != nil {
		if utils.IsDuplicateError(utils.ParseError(err)) {
			return utils.NewDuplicateError("AppConfig", "configkey", key)
		}
		return err
	}

	log.Debug().
		Str("appid", appID).
		Str("configkey", key).
		Msg("App config value stored")

	return nil
}

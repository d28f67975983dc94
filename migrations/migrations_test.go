package migrations_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/sharecloud/internal/config"
	"github.com/yasinhessnawi1/sharecloud/internal/database"
	"github.com/yasinhessnawi1/sharecloud/migrations"
)

// createMockPool creates a mock MySQL pool for testing
func createMockPool(t *testing.T) (*database.Pool, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &database.Pool{DB: db, Driver: "mysql"}, mock
}

func TestNewMigrator(t *testing.T) {
	pool, _ := createMockPool(t)
	assert.NotNil(t, migrations.NewMigrator(pool))
}

func TestGetMigrations(t *testing.T) {
	all := migrations.GetMigrations()
	require.NotEmpty(t, all)

	names := make(map[string]bool)
	for _, m := range all {
		assert.False(t, names[m.Name], "duplicate migration %s", m.Name)
		names[m.Name] = true
		assert.NotEmpty(t, m.TableName)
		assert.NotNil(t, m.RunSQL)
	}
	assert.True(t, names["create_appconfig_table"])
}

func TestRunMigrations(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr string
	}{
		{
			name: "Create migrations table fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnError(errors.New("boom"))
			},
			wantErr: "failed to create migrations table",
		},
		{
			name: "Get executed migrations fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT name FROM migrations").
					WillReturnError(errors.New("boom"))
			},
			wantErr: "failed to get executed migrations",
		},
		{
			name: "Table exists check fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT name FROM migrations").
					WillReturnRows(sqlmock.NewRows([]string{"name"}))
				mock.ExpectQuery("SELECT COUNT.*FROM information_schema.tables").
					WithArgs("appconfig").
					WillReturnError(errors.New("boom"))
			},
			wantErr: "failed to check if table appconfig exists",
		},
		{
			name: "Fresh database runs and records the migration",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT name FROM migrations").
					WillReturnRows(sqlmock.NewRows([]string{"name"}))
				mock.ExpectQuery("SELECT COUNT.*FROM information_schema.tables").
					WithArgs("appconfig").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectBegin()
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS appconfig").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("CREATE INDEX appconfig_config_key_index").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO migrations").
					WithArgs("create_appconfig_table", "Creates the appconfig table").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Existing table is only recorded",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT name FROM migrations").
					WillReturnRows(sqlmock.NewRows([]string{"name"}))
				mock.ExpectQuery("SELECT COUNT.*FROM information_schema.tables").
					WithArgs("appconfig").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectExec("INSERT INTO migrations").
					WithArgs("create_appconfig_table", "Creates the appconfig table").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "Executed migration with existing table is skipped",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT name FROM migrations").
					WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("create_appconfig_table"))
				mock.ExpectQuery("SELECT COUNT.*FROM information_schema.tables").
					WithArgs("appconfig").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
		},
		{
			name: "Executed migration with missing table is run without recording",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT name FROM migrations").
					WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("create_appconfig_table"))
				mock.ExpectQuery("SELECT COUNT.*FROM information_schema.tables").
					WithArgs("appconfig").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectBegin()
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS appconfig").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("CREATE INDEX appconfig_config_key_index").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
		},
		{
			name: "Migration SQL failure rolls back",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT name FROM migrations").
					WillReturnRows(sqlmock.NewRows([]string{"name"}))
				mock.ExpectQuery("SELECT COUNT.*FROM information_schema.tables").
					WithArgs("appconfig").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectBegin()
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS appconfig").
					WillReturnError(errors.New("no permission"))
				mock.ExpectRollback()
			},
			wantErr: "migration create_appconfig_table failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, mock := createMockPool(t)
			tt.setup(mock)

			err := migrations.NewMigrator(pool).RunMigrations(context.Background())

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunMigrationsSQLite(t *testing.T) {
	cfg := &config.AppConfig{
		Database: config.DatabaseSettings{
			Driver: "sqlite",
			Path:   filepath.Join(t.TempDir(), "migrations.db"),
		},
	}
	pool, err := database.Connect(cfg)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	migrator := migrations.NewMigrator(pool)

	// Running twice must be a no-op the second time
	require.NoError(t, migrator.RunMigrations(ctx))
	require.NoError(t, migrator.RunMigrations(ctx))

	var recorded int
	require.NoError(t, pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM migrations`).Scan(&recorded))
	assert.Equal(t, len(migrations.GetMigrations()), recorded)

	_, err = pool.ExecContext(ctx, `INSERT INTO appconfig (appid, configkey, configvalue) VALUES ('files', 'enabled', 'yes')`)
	assert.NoError(t, err)
}

// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines constants related to database structures,
// including table names, appconfig keys and the supported drivers.
package constants

// Table Names define the names of database tables used in the application.
const (
	// TableAppConfig stores per-app configuration values, including enablement.
	TableAppConfig = "appconfig"

	// TableMigrations tracks executed schema migrations.
	TableMigrations = "migrations"

	// TableSeeds tracks executed data seeds.
	TableSeeds = "seeds"
)

// App configuration keys and values.
const (
	// ConfigKeyEnabled is the appconfig key holding the enablement state.
	ConfigKeyEnabled = "enabled"

	// ConfigKeyInstalledVersion is the appconfig key written when an app is installed.
	ConfigKeyInstalledVersion = "installed_version"

	// EnabledYes marks an app enabled for every user.
	EnabledYes = "yes"

	// EnabledNo marks an installed but disabled app.
	EnabledNo = "no"
)

// Database Drivers define the driver names accepted in configuration.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Database DSN options
const (
	// PostgresSSLDisable is appended to PostgreSQL DSNs when TLS is not configured.
	PostgresSSLDisable = "sslmode=disable connect_timeout=15"
)

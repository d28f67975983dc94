package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file
	configPath := filepath.Join(t.TempDir(), "config_test.yaml")
	configContent := `
app:
  environment: testing
  name: TestApp
  version: 1.0.0
server:
  host: 127.0.0.1
  port: 8080
  read_timeout: 5s
  write_timeout: 10s
database:
  driver: mysql
  host: localhost
  port: 3306
  name: test_db
  user: testuser
  password: testpass
ocs:
  default_format: JSON
theme:
  name: Acme Cloud
  logo_claim: Files for everyone
apps:
  shipped: [files, files_sharing, gallery]
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	// Load the configuration
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Check the loaded values
	if cfg.App.Environment != "testing" {
		t.Errorf("Expected Environment = %s, got %s", "testing", cfg.App.Environment)
	}

	if cfg.App.Name != "TestApp" {
		t.Errorf("Expected Name = %s, got %s", "TestApp", cfg.App.Name)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected Port = %d, got %d", 8080, cfg.Server.Port)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("Expected Host = %s, got %s", "localhost", cfg.Database.Host)
	}

	if cfg.OCS.DefaultFormat != "json" {
		t.Errorf("Expected OCS.DefaultFormat = %s, got %s", "json", cfg.OCS.DefaultFormat)
	}

	if cfg.Theme.Name != "Acme Cloud" || cfg.Theme.LogoClaim != "Files for everyone" {
		t.Errorf("Unexpected theme %+v", cfg.Theme)
	}

	// Unset theme values fall back to the built-in branding
	if cfg.Theme.Entity != constants.DefaultThemeEntity {
		t.Errorf("Expected Theme.Entity = %s, got %s", constants.DefaultThemeEntity, cfg.Theme.Entity)
	}

	if len(cfg.Apps.Shipped) != 3 || cfg.Apps.Shipped[2] != "gallery" {
		t.Errorf("Unexpected shipped apps %v", cfg.Apps.Shipped)
	}
}

func TestLoadWithInvalidPath(t *testing.T) {
	// Without a file the configuration comes from the environment and defaults
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "sharecloud.db"))

	cfg, err := Load("non_existent_config.yaml")
	if err != nil {
		t.Fatalf("Load() with non-existent file should not error, got %v", err)
	}

	// Check that defaults were applied
	if cfg.App.Environment != "development" {
		t.Errorf("Expected default Environment = %s, got %s", "development", cfg.App.Environment)
	}

	if cfg.OCS.DefaultFormat != "xml" {
		t.Errorf("Expected default OCS format = %s, got %s", "xml", cfg.OCS.DefaultFormat)
	}
}

func TestLoadWithMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(configPath, []byte("app: [unterminated"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("Load() with malformed YAML should error")
	}
}

func TestGet(t *testing.T) {
	// Set up a test configuration
	origCfg := cfg
	defer func() { cfg = origCfg }() // Restore global config after test

	testCfg := &AppConfig{
		App: AppSettings{
			Name: "TestApp",
		},
	}

	// Set the global config
	cfg = testCfg

	// Get the config
	result := Get()

	// Check that it's the same instance
	if result != testCfg {
		t.Errorf("Get() = %v, want %v", result, testCfg)
	}
}

func TestDatabaseSettings_ConnectionString(t *testing.T) {
	tests := []struct {
		name     string
		settings DatabaseSettings
		want     string
	}{
		{
			name: "With password",
			settings: DatabaseSettings{
				Host:     "localhost",
				Port:     3306,
				Name:     "testdb",
				User:     "user",
				Password: "pass",
			},
			want: "user:pass@tcp(localhost:3306)/testdb?parseTime=true&charset=utf8mb4&collation=utf8mb4_unicode_ci",
		},
		{
			name: "Without password",
			settings: DatabaseSettings{
				Host:     "localhost",
				Port:     3306,
				Name:     "testdb",
				User:     "user",
				Password: "",
			},
			want: "user@tcp(localhost:3306)/testdb?parseTime=true&charset=utf8mb4&collation=utf8mb4_unicode_ci",
		},
		{
			name: "Postgres",
			settings: DatabaseSettings{
				Driver:   "postgres",
				Host:     "db",
				Port:     5432,
				Name:     "cloud",
				User:     "cloud",
				Password: "secret",
			},
			want: "host=db port=5432 user=cloud password=secret dbname=cloud sslmode=disable connect_timeout=15",
		},
		{
			name: "SQLite",
			settings: DatabaseSettings{
				Driver: "sqlite",
				Path:   "/var/lib/sharecloud/cloud.db",
			},
			want: "/var/lib/sharecloud/cloud.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connStr := tt.settings.ConnectionString()
			if connStr != tt.want {
				t.Errorf("ConnectionString() = %v, want %v", connStr, tt.want)
			}
		})
	}
}

func TestServerSettings_ServerAddress(t *testing.T) {
	settings := ServerSettings{
		Host: "localhost",
		Port: 8080,
	}

	want := "localhost:8080"
	if got := settings.ServerAddress(); got != want {
		t.Errorf("ServerAddress() = %v, want %v", got, want)
	}
}

func TestAppSettings_Environment(t *testing.T) {
	tests := []struct {
		name         string
		environment  string
		isDev        bool
		isProduction bool
		isTesting    bool
	}{
		{
			name:         "Development",
			environment:  "development",
			isDev:        true,
			isProduction: false,
			isTesting:    false,
		},
		{
			name:         "Production",
			environment:  "production",
			isDev:        false,
			isProduction: true,
			isTesting:    false,
		},
		{
			name:         "Testing",
			environment:  "testing",
			isDev:        false,
			isProduction: false,
			isTesting:    true,
		},
		{
			name:         "Unknown (defaults to dev)",
			environment:  "unknown",
			isDev:        false,
			isProduction: false,
			isTesting:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := AppSettings{
				Environment: tt.environment,
			}

			if got := settings.IsDevelopment(); got != tt.isDev {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.isDev)
			}

			if got := settings.IsProduction(); got != tt.isProduction {
				t.Errorf("IsProduction() = %v, want %v", got, tt.isProduction)
			}

			if got := settings.IsTesting(); got != tt.isTesting {
				t.Errorf("IsTesting() = %v, want %v", got, tt.isTesting)
			}
		})
	}
}

func TestSetDefaults(t *testing.T) {
	// Create a minimal config
	cfg := &AppConfig{}

	// Apply defaults
	setDefaults(cfg)

	// Check app defaults
	if cfg.App.Environment != "development" {
		t.Errorf("Default App.Environment = %v, want %v", cfg.App.Environment, "development")
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Default Server.Port = %v, want %v", cfg.Server.Port, 8080)
	}

	if cfg.Database.Driver != "mysql" {
		t.Errorf("Default Database.Driver = %v, want %v", cfg.Database.Driver, "mysql")
	}

	if cfg.JWT.Expiry != 15*time.Minute {
		t.Errorf("Default JWT.Expiry = %v, want %v", cfg.JWT.Expiry, 15*time.Minute)
	}

	// Check OCS controller defaults
	if cfg.OCS.CORSMethods != "PUT, POST, GET, DELETE, PATCH" {
		t.Errorf("Default OCS.CORSMethods = %v", cfg.OCS.CORSMethods)
	}

	if cfg.OCS.CORSAllowedHeaders != "Authorization, Content-Type, Accept" {
		t.Errorf("Default OCS.CORSAllowedHeaders = %v", cfg.OCS.CORSAllowedHeaders)
	}

	if cfg.OCS.CORSMaxAge != 1728000 {
		t.Errorf("Default OCS.CORSMaxAge = %v, want %v", cfg.OCS.CORSMaxAge, 1728000)
	}

	// Logo claim has no built-in default
	if cfg.Theme.LogoClaim != "" {
		t.Errorf("Default Theme.LogoClaim = %q, want empty", cfg.Theme.LogoClaim)
	}

	if len(cfg.Apps.AlwaysEnabled) != 1 || cfg.Apps.AlwaysEnabled[0] != "files" {
		t.Errorf("Default Apps.AlwaysEnabled = %v, want [files]", cfg.Apps.AlwaysEnabled)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			App:      AppSettings{Environment: "development"},
			Database: DatabaseSettings{Driver: "mysql", User: "testuser"},
			JWT:      JWTSettings{Secret: "some-secret"},
			Logging:  LoggingSettings{Level: "info"},
			OCS:      OCSSettings{DefaultFormat: "xml"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*AppConfig)
		shouldErr bool
	}{
		{
			name:      "Valid config",
			mutate:    func(c *AppConfig) {},
			shouldErr: false,
		},
		{
			name:      "Invalid environment",
			mutate:    func(c *AppConfig) { c.App.Environment = "invalid" },
			shouldErr: false, // It will default to development with a warning
		},
		{
			name: "Production without JWT secret",
			mutate: func(c *AppConfig) {
				c.App.Environment = "production"
				c.JWT.Secret = "changeme"
			},
			shouldErr: true,
		},
		{
			name:      "Missing database user",
			mutate:    func(c *AppConfig) { c.Database.User = "" },
			shouldErr: true,
		},
		{
			name:      "SQLite without path",
			mutate:    func(c *AppConfig) { c.Database.Driver = "sqlite" },
			shouldErr: true,
		},
		{
			name:      "Unsupported driver",
			mutate:    func(c *AppConfig) { c.Database.Driver = "oracle" },
			shouldErr: true,
		},
		{
			name:      "Invalid OCS format",
			mutate:    func(c *AppConfig) { c.OCS.DefaultFormat = "yaml" },
			shouldErr: true,
		},
		{
			name:      "Invalid log level",
			mutate:    func(c *AppConfig) { c.Logging.Level = "invalid" },
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validateConfig(cfg)

			if (err != nil) != tt.shouldErr {
				t.Errorf("validateConfig() error = %v, shouldErr %v", err, tt.shouldErr)
			}
		})
	}
}

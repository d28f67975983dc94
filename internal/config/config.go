package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

// AppConfig represents the entire application configuration
type AppConfig struct {
	App      AppSettings      `yaml:"app"`
	Database DatabaseSettings `yaml:"database"`
	Server   ServerSettings   `yaml:"server"`
	JWT      JWTSettings      `yaml:"jwt"`
	Logging  LoggingSettings  `yaml:"logging"`
	CORS     CORSSettings     `yaml:"cors"`
	OCS      OCSSettings      `yaml:"ocs"`
	Theme    ThemeSettings    `yaml:"theme"`
	Apps     AppsSettings     `yaml:"apps"`
}

// AppSettings contains general application settings
type AppSettings struct {
	Environment string `yaml:"environment" env:"APP_ENV"`
	Name        string `yaml:"name" env:"APP_NAME"`
	Version     string `yaml:"version" env:"APP_VERSION"`
}

// DatabaseSettings contains database connection settings
type DatabaseSettings struct {
	Driver   string `yaml:"driver" env:"DB_DRIVER"`
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	Name     string `yaml:"name" env:"DB_NAME"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Path     string `yaml:"path" env:"DB_PATH"` // sqlite only
	MaxConns int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
	MinConns int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
}

// ServerSettings contains HTTP server settings
type ServerSettings struct {
	Host            string        `yaml:"host" env:"SERVER_HOST"`
	Port            int           `yaml:"port" env:"SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// JWTSettings contains the bearer token verification settings.
// Tokens are issued by the identity provider; this server only verifies them.
type JWTSettings struct {
	Secret string        `yaml:"secret" env:"JWT_SECRET"`
	Expiry time.Duration `yaml:"expiry" env:"JWT_EXPIRY"`
	Issuer string        `yaml:"issuer" env:"JWT_ISSUER"`
}

// LoggingSettings contains logging configuration
type LoggingSettings struct {
	Level      string `yaml:"level" env:"LOG_LEVEL"`
	Format     string `yaml:"format" env:"LOG_FORMAT"`
	RequestLog bool   `yaml:"request_log" env:"LOG_REQUESTS"`
}

// CORSSettings contains CORS configuration
type CORSSettings struct {
	AllowedOrigins   []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	AllowCredentials bool     `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
}

// OCSSettings contains the defaults of OCS controllers
type OCSSettings struct {
	DefaultFormat      string `yaml:"default_format" env:"OCS_DEFAULT_FORMAT"`
	CORSMethods        string `yaml:"cors_methods" env:"OCS_CORS_METHODS"`
	CORSAllowedHeaders string `yaml:"cors_allowed_headers" env:"OCS_CORS_ALLOWED_HEADERS"`
	CORSMaxAge         int    `yaml:"cors_max_age" env:"OCS_CORS_MAX_AGE"`
}

// ThemeSettings contains the branding strings served by the defaults accessor
type ThemeSettings struct {
	Name             string `yaml:"name" env:"THEME_NAME"`
	HTMLName         string `yaml:"html_name" env:"THEME_HTML_NAME"`
	Entity           string `yaml:"entity" env:"THEME_ENTITY"`
	BaseURL          string `yaml:"base_url" env:"THEME_BASE_URL"`
	SyncClientURL    string `yaml:"sync_client_url" env:"THEME_SYNC_CLIENT_URL"`
	IOSClientURL     string `yaml:"ios_client_url" env:"THEME_IOS_CLIENT_URL"`
	AndroidClientURL string `yaml:"android_client_url" env:"THEME_ANDROID_CLIENT_URL"`
	DocBaseURL       string `yaml:"doc_base_url" env:"THEME_DOC_BASE_URL"`
	Slogan           string `yaml:"slogan" env:"THEME_SLOGAN"`
	LogoClaim        string `yaml:"logo_claim" env:"THEME_LOGO_CLAIM"`
	ITunesAppID      string `yaml:"itunes_app_id" env:"THEME_ITUNES_APP_ID"`
}

// AppsSettings lists apps shipped with the server and apps that can never be disabled
type AppsSettings struct {
	Shipped       []string `yaml:"shipped" env:"APPS_SHIPPED"`
	AlwaysEnabled []string `yaml:"always_enabled" env:"APPS_ALWAYS_ENABLED"`
	AdminGroup    string   `yaml:"admin_group" env:"APPS_ADMIN_GROUP"`
}

// ConnectionString returns the driver specific data source name
func (dbs *DatabaseSettings) ConnectionString() string {
	switch dbs.Driver {
	case constants.DriverPostgres:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s %s",
			dbs.Host, dbs.Port, dbs.User, dbs.Password, dbs.Name, constants.PostgresSSLDisable,
		)
	case constants.DriverSQLite:
		return dbs.Path
	}

	// MariaDB/MySQL connection string format: username:password@tcp(host:port)/dbname
	password := dbs.Password
	if password != "" {
		password = ":" + password
	}

	return fmt.Sprintf(
		"%s%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&collation=utf8mb4_unicode_ci",
		dbs.User, password, dbs.Host, dbs.Port, dbs.Name,
	)
}

// ServerAddress returns the complete server address
func (ss *ServerSettings) ServerAddress() string {
	return fmt.Sprintf("%s:%d", ss.Host, ss.Port)
}

// IsDevelopment checks if the application is running in development mode
func (as *AppSettings) IsDevelopment() bool {
	return strings.ToLower(as.Environment) == constants.EnvDevelopment
}

// IsProduction checks if the application is running in production mode
func (as *AppSettings) IsProduction() bool {
	return strings.ToLower(as.Environment) == constants.EnvProduction
}

// IsTesting checks if the application is running in testing mode
func (as *AppSettings) IsTesting() bool {
	return strings.ToLower(as.Environment) == constants.EnvTesting
}

var (
	// cfg holds the current application configuration
	cfg *AppConfig
)

// Load loads the configuration from a config file and environment variables
func Load(configPath string) (*AppConfig, error) {
	config := &AppConfig{}

	// Load configuration from file if it exists
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// Override with environment variables
	if err := LoadEnv(config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	setDefaults(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = config

	logConfig(config)

	return config, nil
}

// Get returns the current application configuration
func Get() *AppConfig {
	if cfg == nil {
		log.Fatal().Msg("configuration not loaded")
	}
	return cfg
}

// setDefaults sets default values for any missing configuration
func setDefaults(config *AppConfig) {
	// App defaults
	if config.App.Environment == "" {
		config.App.Environment = constants.EnvDevelopment
	}
	if config.App.Name == "" {
		config.App.Name = constants.DefaultThemeName
	}
	if config.App.Version == "" {
		config.App.Version = "1.0.0"
	}

	if config.Server.Port == 0 {
		config.Server.Port = constants.DefaultServerPort
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = constants.DefaultReadTimeout
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = constants.DefaultWriteTimeout
	}
	if config.Server.ShutdownTimeout == 0 {
		config.Server.ShutdownTimeout = constants.DefaultShutdownTimeout
	}

	if config.Database.Driver == "" {
		config.Database.Driver = constants.DefaultDBDriver
	}
	config.Database.Driver = strings.ToLower(config.Database.Driver)
	if config.Database.MaxConns == 0 {
		config.Database.MaxConns = constants.DefaultDBMaxConnections
	}
	if config.Database.MinConns == 0 {
		config.Database.MinConns = constants.DefaultDBMinConnections
	}

	if config.JWT.Expiry == 0 {
		config.JWT.Expiry = constants.DefaultJWTExpiry
	}
	if config.JWT.Issuer == "" {
		config.JWT.Issuer = constants.DefaultJWTIssuer
	}

	if config.Logging.Level == "" {
		config.Logging.Level = constants.DefaultLogLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = constants.DefaultLogFormat
	}

	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = []string{"*"}
	}

	// OCS controller defaults
	if config.OCS.DefaultFormat == "" {
		config.OCS.DefaultFormat = constants.OCSDefaultFormat
	}
	if config.OCS.CORSMethods == "" {
		config.OCS.CORSMethods = constants.DefaultCORSMethods
	}
	if config.OCS.CORSAllowedHeaders == "" {
		config.OCS.CORSAllowedHeaders = constants.DefaultCORSAllowedHeaders
	}
	if config.OCS.CORSMaxAge == 0 {
		config.OCS.CORSMaxAge = constants.DefaultCORSMaxAge
	}

	config.Theme = config.Theme.WithDefaults()

	if len(config.Apps.Shipped) == 0 {
		config.Apps.Shipped = []string{constants.AppFiles, constants.AppFilesSharing, constants.AppProvisioningAPI}
	}
	if len(config.Apps.AlwaysEnabled) == 0 {
		config.Apps.AlwaysEnabled = []string{constants.AppFiles}
	}
	if config.Apps.AdminGroup == "" {
		config.Apps.AdminGroup = "admin"
	}
}

// WithDefaults returns a copy with empty branding values filled in.
// LogoClaim stays empty unless configured.
func (theme ThemeSettings) WithDefaults() ThemeSettings {
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&theme.Name, constants.DefaultThemeName)
	fill(&theme.HTMLName, constants.DefaultThemeHTMLName)
	fill(&theme.Entity, constants.DefaultThemeEntity)
	fill(&theme.BaseURL, constants.DefaultThemeBaseURL)
	fill(&theme.SyncClientURL, constants.DefaultThemeSyncClientURL)
	fill(&theme.IOSClientURL, constants.DefaultThemeIOSClientURL)
	fill(&theme.AndroidClientURL, constants.DefaultThemeAndroidClientURL)
	fill(&theme.DocBaseURL, constants.DefaultThemeDocBaseURL)
	fill(&theme.Slogan, constants.DefaultThemeSlogan)
	fill(&theme.ITunesAppID, constants.DefaultThemeITunesAppID)
	return theme
}

// validateConfig validates that the configuration has all required values
func validateConfig(config *AppConfig) error {
	env := strings.ToLower(config.App.Environment)
	if env != constants.EnvDevelopment && env != constants.EnvTesting && env != constants.EnvProduction {
		// Instead of failing, use a default and warn
		log.Warn().Str("environment", config.App.Environment).Msg("Invalid environment, defaulting to development")
		config.App.Environment = constants.EnvDevelopment
	}

	// In production, ensure we have a proper JWT secret
	if config.App.IsProduction() && (config.JWT.Secret == "" || config.JWT.Secret == "changeme") {
		return fmt.Errorf("JWT secret must be set in production")
	}

	switch config.Database.Driver {
	case constants.DriverMySQL, constants.DriverPostgres:
		if config.Database.User == "" {
			return fmt.Errorf("database user must be set")
		}
	case constants.DriverSQLite:
		if config.Database.Path == "" {
			return fmt.Errorf("database path must be set for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", config.Database.Driver)
	}

	format := strings.ToLower(config.OCS.DefaultFormat)
	if format != constants.OCSFormatJSON && format != constants.OCSFormatXML {
		return fmt.Errorf("invalid OCS default format: %s", config.OCS.DefaultFormat)
	}
	config.OCS.DefaultFormat = format

	if config.OCS.CORSMaxAge < 0 {
		return fmt.Errorf("OCS CORS max age must not be negative")
	}

	logLevel := strings.ToLower(config.Logging.Level)
	validLevels := []string{"debug", "info", "warn", "error", "fatal", "panic"}
	validLevel := false
	for _, level := range validLevels {
		if logLevel == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// logConfig logs the current configuration, masking sensitive values
func logConfig(config *AppConfig) {
	logCfg := *config

	if logCfg.Database.Password != "" {
		logCfg.Database.Password = constants.LogRedactedValue
	}
	if logCfg.JWT.Secret != "" {
		logCfg.JWT.Secret = constants.LogRedactedValue
	}

	log.Info().
		Str("environment", logCfg.App.Environment).
		Str("version", logCfg.App.Version).
		Str("server", logCfg.Server.ServerAddress()).
		Str("db_driver", logCfg.Database.Driver).
		Str("db_host", logCfg.Database.Host).
		Int("db_port", logCfg.Database.Port).
		Str("db_name", logCfg.Database.Name).
		Str("ocs_format", logCfg.OCS.DefaultFormat).
		Str("log_level", logCfg.Logging.Level).
		Msg("Configuration loaded")
}

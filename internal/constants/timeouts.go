package constants

import "time"

// Server Timeouts
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
)

// Database Timeouts
const (
	DBConnectionTimeout  = 10 * time.Second
	DBHealthCheckTimeout = 5 * time.Second
	DBConnMaxLifetime    = 1 * time.Hour
	DBConnMaxIdleTime    = 30 * time.Minute
)

// Maintenance
const (
	// AppCacheRefreshInterval is how often the app manager rereads appconfig
	AppCacheRefreshInterval = 5 * time.Minute
)

// Token lifetimes
const (
	DefaultJWTExpiry = 15 * time.Minute
)

// OCS CORS
const (
	// DefaultCORSMaxAge is how long a preflighted OPTIONS request may be cached, in seconds.
	DefaultCORSMaxAge = 1728000
)

// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the
// application. These constants provide fallbacks for configuration settings and
// establish boundaries for resource usage.
package constants

import "time"

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 3005

	// DefaultDBPort is the default PostgreSQL port.
	DefaultDBPort = 5432

	// DefaultDBMaxConnections is the default maximum number of pooled database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default number of idle connections kept in the pool.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Timeouts define durations for server and database operations.
const (
	// DefaultReadTimeout is the maximum duration for reading a request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the maximum duration for writing a response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum idle time for keep-alive connections.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the grace period for in-flight requests on shutdown.
	DefaultShutdownTimeout = 15 * time.Second

	// DBConnectTimeout bounds the initial connection and ping at startup.
	DBConnectTimeout = 10 * time.Second

	// DBHealthCheckTimeout bounds the /health database probe.
	DBHealthCheckTimeout = 5 * time.Second

	// DBConnMaxLifetime is the maximum lifetime of a pooled connection.
	DBConnMaxLifetime = 1 * time.Hour

	// DBConnMaxIdleTime is the eviction timeout for idle pooled connections.
	DBConnMaxIdleTime = 30 * time.Minute
)

// Request Limits define the maximum allowed sizes for client input.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1 << 20 // 1 MB
)

// Logging Values define shared logging conventions.
const (
	// LogRedactedValue replaces sensitive values in log output.
	LogRedactedValue = "[REDACTED]"

	// RequestIDContextKey is the log field name for request correlation IDs.
	RequestIDContextKey = "request_id"
)

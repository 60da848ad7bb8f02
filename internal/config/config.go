// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// accounts service. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: rules checked by go-playground/validator after merging.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate limit settings for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// CheckGroupReferences makes the user service reject writes that
	// reference group IDs missing from the groups table.
	// Env: APP_CHECK_GROUP_REFERENCES
	CheckGroupReferences bool `env:"CHECK_GROUP_REFERENCES"`

	// LogLevel is the global zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the dialect and the database. "postgres://" and
	// "postgresql://" DSNs use pgx; "sqlite://", "file:" and ":memory:" use
	// sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" validate:"required"`

	// MaxOpenConns caps the connection pool. Zero means unlimited.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS" validate:"gte=0"`

	// ConnectTimeout bounds the initial ping.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" validate:"gte=0"`
}

// Server holds network, timeout and rate limit settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens. Empty disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS" validate:"omitempty,hostname_port"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`

	// RateLimit is the sustained number of write requests per second
	// allowed for one client IP. Zero disables limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT" validate:"gte=0"`

	// RateBurst is the token bucket size for RateLimit.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST" validate:"gte=0"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval is how often the health worker pings the database and
	// publishes the result to the gRPC health service.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL" validate:"gte=0"`
}

// Defaults used for fields that no source sets.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultDSN            = "sqlite://accounts.db"
	DefaultRequestTimeout = 30 * time.Second
	DefaultConnectTimeout = 5 * time.Second
	DefaultHealthInterval = 15 * time.Second
	DefaultRateLimit      = 10
	DefaultRateBurst      = 20
	DefaultLogLevel       = "info"
	DefaultVersion        = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:            DefaultDSN,
				ConnectTimeout: DefaultConnectTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Workers: Workers{
			HealthInterval: DefaultHealthInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (after loading an optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

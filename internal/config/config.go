// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package config loads Cinecatalog configuration with koanf.
//
// Precedence, lowest to highest: built-in defaults, an optional YAML file
// (CONFIG_PATH or one of DefaultConfigPaths), then environment variables.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Invalid configuration")
//	}
package config

import (
	"fmt"
	"strings"
	"time"
)

// Store backend names.
const (
	BackendDuckDB = "duckdb"
	BackendBadger = "badger"
	BackendMongo  = "mongo"
)

// Event transport names.
const (
	TransportGoChannel = "gochannel"
	TransportNATS      = "nats"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Store    StoreConfig    `koanf:"store"`
	Database DatabaseConfig `koanf:"database"`
	Badger   BadgerConfig   `koanf:"badger"`
	Mongo    MongoConfig    `koanf:"mongo"`
	Events   EventsConfig   `koanf:"events"`
	Tracing  TracingConfig  `koanf:"tracing"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Seed     SeedConfig     `koanf:"seed"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds listing and recommendation limits.
type APIConfig struct {
	DefaultPageSize     int     `koanf:"default_page_size"`
	MaxPageSize         int     `koanf:"max_page_size"`
	RecommendationLimit int     `koanf:"recommendation_limit"`
	DefaultMinRating    float64 `koanf:"default_min_rating"`
}

// StoreConfig selects the document store backend and wraps it.
type StoreConfig struct {
	Backend      string        `koanf:"backend"`
	QueryTimeout time.Duration `koanf:"query_timeout"`
	Breaker      BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker around store calls.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// DatabaseConfig configures the DuckDB backend.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// BadgerConfig configures the Badger document backend.
type BadgerConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// MongoConfig configures the MongoDB backend.
type MongoConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	Collection     string        `koanf:"collection"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// EventsConfig configures movie change events.
type EventsConfig struct {
	Enabled        bool   `koanf:"enabled"`
	Transport      string `koanf:"transport"`
	Topic          string `koanf:"topic"`
	NATSURL        string `koanf:"nats_url"`
	EmbeddedServer bool   `koanf:"embedded_server"`
	StoreDir       string `koanf:"store_dir"`
	StreamName     string `koanf:"stream_name"`
}

// TracingConfig configures OpenTelemetry export.
type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"`
	Insecure    bool    `koanf:"insecure"`
	ServiceName string  `koanf:"service_name"`
	SampleRatio float64 `koanf:"sample_ratio"`
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SeedConfig controls the demo catalog loader.
type SeedConfig struct {
	OnStartup        bool    `koanf:"on_startup"`
	Wipe             bool    `koanf:"wipe"`
	BatchSize        int     `koanf:"batch_size"`
	BatchesPerSecond float64 `koanf:"batches_per_second"`
	GeneratedCount   int     `koanf:"generated_count"`
	RandomSeed       int64   `koanf:"random_seed"`
	MinYear          int     `koanf:"min_year"`
}

// Load reads configuration from defaults, file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateEvents(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Seed.BatchSize <= 0 {
		return fmt.Errorf("seed.batch_size must be positive, got %d", c.Seed.BatchSize)
	}
	if c.Tracing.Enabled && (c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1) {
		return fmt.Errorf("tracing.sample_ratio must be within [0,1], got %v", c.Tracing.SampleRatio)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.MaxPageSize < 1 || c.API.MaxPageSize > 1000 {
		return fmt.Errorf("api.max_page_size must be between 1 and 1000, got %d", c.API.MaxPageSize)
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("api.default_page_size must be between 1 and api.max_page_size (%d), got %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.API.RecommendationLimit < 1 {
		return fmt.Errorf("api.recommendation_limit must be positive, got %d", c.API.RecommendationLimit)
	}
	if c.API.DefaultMinRating < 0 || c.API.DefaultMinRating > 10 {
		return fmt.Errorf("api.default_min_rating must be within [0,10], got %v", c.API.DefaultMinRating)
	}
	return nil
}

func (c *Config) validateStore() error {
	switch c.Store.Backend {
	case BackendDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the duckdb backend")
		}
	case BackendBadger:
		if c.Badger.Path == "" && !c.Badger.InMemory {
			return fmt.Errorf("badger.path is required unless badger.in_memory is set")
		}
	case BackendMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" || c.Mongo.Collection == "" {
			return fmt.Errorf("mongo.uri, mongo.database and mongo.collection are required for the mongo backend")
		}
	default:
		return fmt.Errorf("store.backend must be one of duckdb, badger, mongo; got %q", c.Store.Backend)
	}
	if c.Store.QueryTimeout <= 0 {
		return fmt.Errorf("store.query_timeout must be positive")
	}
	if b := c.Store.Breaker; b.Enabled && (b.FailureRatio <= 0 || b.FailureRatio > 1) {
		return fmt.Errorf("store.breaker.failure_ratio must be within (0,1], got %v", b.FailureRatio)
	}
	return nil
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	switch c.Events.Transport {
	case TransportGoChannel:
	case TransportNATS:
		if c.Events.NATSURL == "" && !c.Events.EmbeddedServer {
			return fmt.Errorf("events.nats_url is required unless events.embedded_server is set")
		}
	default:
		return fmt.Errorf("events.transport must be gochannel or nats, got %q", c.Events.Transport)
	}
	if c.Events.Topic == "" {
		return fmt.Errorf("events.topic is required")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinecatalog/config.yaml",
	"/etc/cinecatalog/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		API: APIConfig{
			DefaultPageSize:     24,
			MaxPageSize:         100,
			RecommendationLimit: 20,
			DefaultMinRating:    7,
		},
		Store: StoreConfig{
			Backend:      BackendDuckDB,
			QueryTimeout: 10 * time.Second,
			Breaker: BreakerConfig{
				Enabled:      true,
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Database: DatabaseConfig{
			Path:      "data/cinecatalog.duckdb",
			MaxMemory: "1GB",
		},
		Badger: BadgerConfig{
			Path: "data/badger",
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "cinecatalog",
			Collection:     "movies",
			ConnectTimeout: 10 * time.Second,
		},
		Events: EventsConfig{
			Enabled:    true,
			Transport:  TransportGoChannel,
			Topic:      "movies.changes",
			NATSURL:    "nats://127.0.0.1:4222",
			StoreDir:   "data/nats",
			StreamName: "MOVIES",
		},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4317",
			Insecure:    true,
			ServiceName: "cinecatalog",
			SampleRatio: 1.0,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Seed: SeedConfig{
			Wipe:           true,
			BatchSize:      100,
			GeneratedCount: 975,
			RandomSeed:     2000,
			MinYear:        2000,
		},
	}
}

// LoadWithKoanf layers defaults, the optional config file and environment
// variables, then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for slice fields.
// Values that arrived as YAML lists are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	"api_default_page_size":    "api.default_page_size",
	"api_max_page_size":        "api.max_page_size",
	"api_recommendation_limit": "api.recommendation_limit",
	"api_default_min_rating":   "api.default_min_rating",

	"store_backend":               "store.backend",
	"store_query_timeout":         "store.query_timeout",
	"store_breaker_enabled":       "store.breaker.enabled",
	"store_breaker_timeout":       "store.breaker.timeout",
	"store_breaker_failure_ratio": "store.breaker.failure_ratio",

	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	"badger_path":      "badger.path",
	"badger_in_memory": "badger.in_memory",

	"mongo_uri":             "mongo.uri",
	"mongo_database":        "mongo.database",
	"mongo_collection":      "mongo.collection",
	"mongo_connect_timeout": "mongo.connect_timeout",

	"events_enabled":   "events.enabled",
	"events_transport": "events.transport",
	"events_topic":     "events.topic",
	"nats_url":         "events.nats_url",
	"nats_embedded":    "events.embedded_server",
	"nats_store_dir":   "events.store_dir",
	"nats_stream_name": "events.stream_name",

	"tracing_enabled":             "tracing.enabled",
	"otel_exporter_otlp_endpoint": "tracing.endpoint",
	"otel_exporter_otlp_insecure": "tracing.insecure",
	"otel_service_name":           "tracing.service_name",
	"tracing_sample_ratio":        "tracing.sample_ratio",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"seed_on_startup":         "seed.on_startup",
	"seed_wipe":               "seed.wipe",
	"seed_batch_size":         "seed.batch_size",
	"seed_batches_per_second": "seed.batches_per_second",
	"seed_generated_count":    "seed.generated_count",
	"seed_random_seed":        "seed.random_seed",
}

// envTransformFunc maps environment variable names to koanf paths.
// Unknown variables map to "" and are skipped.
//
//	HTTP_PORT     -> server.port
//	STORE_BACKEND -> store.backend
//	MONGO_URI     -> mongo.uri
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

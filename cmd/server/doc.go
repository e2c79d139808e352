// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

/*
Package main is the entry point for the Cinecatalog API server.

The server exposes a movie catalog over HTTP: filtered and paginated
listing, single-movie CRUD, catalog analytics, recommendations and filter
option discovery. Movies live in one of three document stores selected at
startup.

# Application Architecture

Long-running components run under a Suture v4 supervisor tree:

	RootSupervisor ("cinecatalog")
	├── StoreSupervisor ("store-layer")
	│   └── Badger value log GC (badger backend only)
	├── EventsSupervisor ("events-layer")
	│   └── Movie event auditor (EVENTS_ENABLED=true)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Tracing: OpenTelemetry OTLP exporter (optional)
 4. Store: DuckDB, Badger or MongoDB behind a circuit breaker
 5. Seed: demo catalog load (SEED_ON_STARTUP=true)
 6. Events: Watermill over Go channels or NATS JetStream (optional)
 7. HTTP Server: Chi router with middleware stack

# Configuration

Priority: Environment variables > Config file > Defaults

	HTTP_PORT=8080               # HTTP server port
	STORE_BACKEND=duckdb         # duckdb, badger or mongo
	DUCKDB_PATH=./data/cinecatalog.duckdb
	MONGO_URI=mongodb://localhost:27017
	EVENTS_ENABLED=false
	TRACING_ENABLED=false
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests within HTTP_SHUTDOWN_TIMEOUT, then the store and event
transport are closed.

# Endpoints

	GET    /api/health
	GET    /api/movies
	POST   /api/movies
	GET    /api/movies/{id}
	PUT    /api/movies/{id}
	DELETE /api/movies/{id}
	GET    /api/movies/analytics/stats
	GET    /api/movies/recommendations
	GET    /api/movies/filters/options
	GET    /metrics
	GET    /swagger/index.html
*/
package main

package config

import "time"

const (
	envPort            = "PORT"
	envTeamsAPIURL     = "TEAMS_API_URL"
	envTeamsAPITimeout = "TEAMS_API_TIMEOUT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envBackendPort     = "TEAMS_API_PORT"
	envBackendDB       = "TEAMS_API_DATABASE_URL"
	envBackendSeed     = "TEAMS_API_SEED"

	defaultPort = "4000"
	// json-server style collection the console was built against.
	defaultTeamsAPIURL     = "http://localhost:3000/teams"
	defaultTeamsAPITimeout = 10 * Duration(time.Second)
	defaultMetricsPort     = "9090"
	defaultServiceName     = "nfl-teams-console"
	defaultBackendPort     = "3000"
	defaultBackendSeed     = true
)

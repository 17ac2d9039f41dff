package config

// BackendConfig configures the development teams collection server.
type BackendConfig struct {
	Port        string
	DatabaseURL string // empty selects the in-memory store
	Seed        bool   // seed fixture teams into an empty in-memory store
	Metrics     MetricsConfig
}

// LoadBackend reads the dev backend configuration from the environment.
func LoadBackend() BackendConfig {
	loadDotEnv()
	metrics := loadMetrics()
	metrics.ServiceName = envOrDefault(envOtelService, "teams-api")
	return BackendConfig{
		Port:        envOrDefault(envBackendPort, defaultBackendPort),
		DatabaseURL: envOrDefault(envBackendDB, ""),
		Seed:        boolEnvOrDefault(envBackendSeed, defaultBackendSeed),
		Metrics:     metrics,
	}
}

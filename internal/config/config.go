package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the console server.
type Config struct {
	Port     string
	TeamsAPI TeamsAPIConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; real
// environment variables win over it.
func Load() Config {
	loadDotEnv()
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		TeamsAPI: loadTeamsAPI(),
		Metrics:  loadMetrics(),
	}
}

var dotEnvFiles = []string{".env"}

func loadDotEnv() {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load(dotEnvFiles...)
}

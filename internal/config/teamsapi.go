package config

// TeamsAPIConfig controls how the console reaches the remote teams collection.
type TeamsAPIConfig struct {
	BaseURL string
	Timeout Duration
}

func loadTeamsAPI() TeamsAPIConfig {
	return TeamsAPIConfig{
		BaseURL: envOrDefault(envTeamsAPIURL, defaultTeamsAPIURL),
		Timeout: durationEnvOrDefault(envTeamsAPITimeout, defaultTeamsAPITimeout),
	}
}

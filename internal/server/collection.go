package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nfl-teams-console/internal/config"
	"github.com/preston-bernstein/nfl-teams-console/internal/metrics"
	"github.com/preston-bernstein/nfl-teams-console/internal/providers"
	"github.com/preston-bernstein/nfl-teams-console/internal/providers/teamsapi"
)

// buildCollection assembles the remote teams collection client with instrumentation.
func buildCollection(cfg config.TeamsAPIConfig, logger *slog.Logger, recorder *metrics.Recorder) providers.TeamCollection {
	client := teamsapi.NewClient(teamsapi.Config{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
	if logger != nil {
		logger.Info("teams collection configured", slog.String("url", client.BaseURL()))
	}
	return providers.NewInstrumentedCollection(client, logger, recorder, teamsapi.ProviderName)
}

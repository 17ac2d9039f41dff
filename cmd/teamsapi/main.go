// Command teamsapi serves a development teams collection at /teams for the console.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nfl-teams-console/internal/config"
	"github.com/preston-bernstein/nfl-teams-console/internal/logging"
	"github.com/preston-bernstein/nfl-teams-console/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.LoadBackend()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "teams-api",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.NewBackend(ctx, cfg, logger)
	if err != nil {
		logging.Error(logger, "failed to start teams api", err)
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}

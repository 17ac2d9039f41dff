package teamsapi

import "time"

const (
	defaultBaseURL     = "http://localhost:3000/teams"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)

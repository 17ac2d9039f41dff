package backend

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/preston-bernstein/nfl-teams-console/internal/http/requestutil"
	"github.com/preston-bernstein/nfl-teams-console/internal/logging"
	"github.com/preston-bernstein/nfl-teams-console/internal/metrics"
)

// requestLogger is the gin counterpart of the console's logging middleware:
// request id, request-scoped logger, completion log and HTTP metrics.
func requestLogger(baseLogger *slog.Logger, recorder *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(c.GetHeader(requestutil.HeaderRequestID))
		c.Header(requestutil.HeaderRequestID, reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, c.Request.Method),
			slog.String(logging.FieldPath, c.Request.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(c.Request)),
		)
		ctx := logging.WithLogger(c.Request.Context(), logger)
		ctx = requestutil.WithRequestID(ctx, reqID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		duration := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "other"
		}
		status := c.Writer.Status()
		recorder.RecordHTTPRequest(c.Request.Method, route, status, duration)

		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	}
}

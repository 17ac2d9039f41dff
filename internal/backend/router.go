package backend

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/preston-bernstein/nfl-teams-console/internal/metrics"
)

// Handler serves the teams collection.
type Handler struct {
	store  Store
	logger *slog.Logger
}

// NewRouter builds the gin engine exposing the collection at /teams.
func NewRouter(s Store, logger *slog.Logger, recorder *metrics.Recorder) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{store: s, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger, recorder))
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) { abortWithError(c, http.StatusNotFound, codeNotFound, "route not found") })
	r.NoMethod(func(c *gin.Context) {
		abortWithError(c, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	r.GET("/teams", h.HandleList)
	r.POST("/teams", h.HandleCreate)
	r.GET("/teams/:id", h.HandleGet)
	r.DELETE("/teams/:id", h.HandleDelete)

	return r
}

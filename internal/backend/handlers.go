package backend

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
	"github.com/preston-bernstein/nfl-teams-console/internal/logging"
	"github.com/preston-bernstein/nfl-teams-console/internal/store"
)

const (
	codeBadRequest       = "BAD_REQUEST"
	codeNotFound         = "NOT_FOUND"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codeInternal         = "INTERNAL"
)

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	logging.Error(logging.FromContext(c.Request.Context(), h.logger), msg, err)
	abortWithError(c, http.StatusInternalServerError, codeInternal, err.Error())
}

func (h *Handler) HandleList(c *gin.Context) {
	items, err := h.store.ListTeams(c.Request.Context())
	if err != nil {
		h.internalError(c, "list teams failed", err)
		return
	}
	if items == nil {
		items = []teams.Team{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) HandleGet(c *gin.Context) {
	team, err := h.store.GetTeam(c.Request.Context(), teams.ID(c.Param("id")))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, codeNotFound, "team not found")
			return
		}
		h.internalError(c, "get team failed", err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *Handler) HandleCreate(c *gin.Context) {
	var req teams.Fields
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	team, err := h.store.CreateTeam(c.Request.Context(), req)
	if err != nil {
		h.internalError(c, "create team failed", err)
		return
	}
	logging.Info(logging.FromContext(c.Request.Context(), h.logger), "team created",
		slog.String(logging.FieldTeamID, team.ID.String()),
	)
	c.JSON(http.StatusCreated, team)
}

func (h *Handler) HandleDelete(c *gin.Context) {
	id := teams.ID(c.Param("id"))
	if err := h.store.DeleteTeam(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, codeNotFound, "team not found")
			return
		}
		h.internalError(c, "delete team failed", err)
		return
	}
	logging.Info(logging.FromContext(c.Request.Context(), h.logger), "team deleted",
		slog.String(logging.FieldTeamID, id.String()),
	)
	c.JSON(http.StatusOK, gin.H{})
}

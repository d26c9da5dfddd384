package handler

import (
	"context"
	"net/http"

	"esports-api/internal/domain/esports"
	"esports-api/internal/middleware"
	"esports-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CacheInvalidator is satisfied by *services.EsportsService.
type CacheInvalidator interface {
	InvalidateTeam(ctx context.Context, game esports.Game, id int64) error
}

type AdminHandler struct {
	service CacheInvalidator
	logger  *logger.Logger
}

func NewAdminHandler(service CacheInvalidator, l *logger.Logger) *AdminHandler {
	return &AdminHandler{service: service, logger: l}
}

type invalidatedDTO struct {
	Game   esports.Game `json:"game"`
	TeamID int64        `json:"team_id"`
}

func (h *AdminHandler) InvalidateTeam(c *gin.Context) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "team_id")
	if !ok {
		return
	}
	err := h.service.InvalidateTeam(c.Request.Context(), game, id)
	if err != nil && h.logger != nil {
		h.logger.WithContext(c.Request.Context()).Errorf("invalidate team cache: %v", err)
	}
	if err == nil && h.logger != nil {
		h.logger.WithContext(c.Request.Context()).Infof("team %s/%d cache invalidated by %s", game, id, middleware.AdminSubject(c))
	}
	respondConditional(c, err == nil, invalidatedDTO{Game: game, TeamID: id}, http.StatusInternalServerError, "The cache could not be invalidated.")
}

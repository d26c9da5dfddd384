package handler

import (
	"context"

	"esports-api/internal/domain/esports"
	"esports-api/internal/services"
	"esports-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LogoResolver is satisfied by *services.LogoService.
type LogoResolver interface {
	TeamLogoURL(ctx context.Context, game esports.Game, teamID int64) (services.TeamLogo, error)
}

type LogoHandler struct {
	service LogoResolver
	logger  *logger.Logger
}

func NewLogoHandler(service LogoResolver, l *logger.Logger) *LogoHandler {
	return &LogoHandler{service: service, logger: l}
}

func (h *LogoHandler) TeamLogo(c *gin.Context) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "team_id")
	if !ok {
		return
	}
	logo, err := h.service.TeamLogoURL(c.Request.Context(), game, id)
	if err != nil {
		respondServiceError(c, h.logger, err, game.String(), "team logo", id)
		return
	}
	respondSuccess(c, logo)
}

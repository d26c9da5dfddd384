package handler

import (
	"context"
	"net/http"
	"strconv"

	"esports-api/internal/domain/esports"
	"esports-api/internal/transport/apimsg"
	"esports-api/internal/transport/httpdto"
	"esports-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// EsportsReader is satisfied by *services.EsportsService.
type EsportsReader interface {
	GetTeam(ctx context.Context, game esports.Game, id int64) (esports.Team, error)
	ListTeams(ctx context.Context, game esports.Game) ([]esports.Team, error)
	GetPlayer(ctx context.Context, game esports.Game, id int64) (esports.Player, error)
	ListTeamPlayers(ctx context.Context, game esports.Game, teamID int64) ([]esports.Player, error)
	GetMatch(ctx context.Context, game esports.Game, id int64) (esports.Match, error)
	ListTeamMatches(ctx context.Context, game esports.Game, teamID int64, limit int) ([]esports.Match, error)
}

type EsportsHandler struct {
	service EsportsReader
	logger  *logger.Logger
}

func NewEsportsHandler(service EsportsReader, l *logger.Logger) *EsportsHandler {
	return &EsportsHandler{service: service, logger: l}
}

// Games lists the game APIs and the endpoints each one serves.
func (h *EsportsHandler) Games(c *gin.Context) {
	games := esports.Games()
	out := make([]httpdto.GameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, httpdto.FromGame(g))
	}
	respondSuccess(c, out)
}

func (h *EsportsHandler) ListTeams(c *gin.Context) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	teams, err := h.service.ListTeams(c.Request.Context(), game)
	if err != nil {
		respondServiceError(c, h.logger, err, game.String(), "team", 0)
		return
	}
	respondSuccess(c, httpdto.FromTeamSlice(teams))
}

func (h *EsportsHandler) GetTeam(c *gin.Context) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "team_id")
	if !ok {
		return
	}
	team, err := h.service.GetTeam(c.Request.Context(), game, id)
	if err != nil {
		respondServiceError(c, h.logger, err, game.String(), "team", id)
		return
	}
	respondSuccess(c, httpdto.FromTeam(team))
}

func (h *EsportsHandler) ListTeamPlayers(c *gin.Context) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "team_id")
	if !ok {
		return
	}
	players, err := h.service.ListTeamPlayers(c.Request.Context(), game, id)
	if err != nil {
		respondServiceError(c, h.logger, err, game.String(), "team", id)
		return
	}
	respondSuccess(c, httpdto.FromPlayerSlice(players))
}

func (h *EsportsHandler) ListTeamMatches(c *gin.Context) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "team_id")
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, apimsg.InvalidIdentifier("limit", raw))
			return
		}
		limit = n
	}
	matches, err := h.service.ListTeamMatches(c.Request.Context(), game, id, limit)
	if err != nil {
		respondServiceError(c, h.logger, err, game.String(), "team", id)
		return
	}
	respondSuccess(c, httpdto.FromMatchSlice(matches))
}

func (h *EsportsHandler) GetPlayer(c *gin.Context) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "player_id")
	if !ok {
		return
	}
	player, err := h.service.GetPlayer(c.Request.Context(), game, id)
	if err != nil {
		respondServiceError(c, h.logger, err, game.String(), "player", id)
		return
	}
	respondSuccess(c, httpdto.FromPlayer(player))
}

func (h *EsportsHandler) GetMatch(c *gin.Context) {
	game, ok := gameParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "match_id")
	if !ok {
		return
	}
	match, err := h.service.GetMatch(c.Request.Context(), game, id)
	if err != nil {
		respondServiceError(c, h.logger, err, game.String(), "match", id)
		return
	}
	respondSuccess(c, httpdto.FromMatch(match))
}

// gameParam resolves :game. Unknown games get the standard API's
// unsupported endpoint response.
func gameParam(c *gin.Context) (esports.Game, bool) {
	game, ok := esports.ParseGame(c.Param("game"))
	if !ok {
		respondError(c, http.StatusNotFound, apimsg.EndpointNotSupported(c.Request.URL.Path, ""))
		return "", false
	}
	return game, true
}

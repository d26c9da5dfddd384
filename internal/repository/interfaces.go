package repository

import (
	"context"

	"esports-api/internal/domain/esports"
)

type TeamRepository interface {
	GetTeam(ctx context.Context, game esports.Game, id int64) (esports.Team, error)
	ListTeams(ctx context.Context, game esports.Game) ([]esports.Team, error)
}

type PlayerRepository interface {
	GetPlayer(ctx context.Context, game esports.Game, id int64) (esports.Player, error)
	ListPlayersByTeam(ctx context.Context, game esports.Game, teamID int64) ([]esports.Player, error)
}

type MatchRepository interface {
	GetMatch(ctx context.Context, game esports.Game, id int64) (esports.Match, error)
	ListMatchesByTeam(ctx context.Context, game esports.Game, teamID int64, limit int) ([]esports.Match, error)
}

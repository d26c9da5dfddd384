package repository

import (
	"context"

	"esports-api/internal/domain/esports"

	"github.com/jackc/pgx/v5"
)

const (
	defaultMatchLimit = 20
	maxMatchLimit     = 100
)

type PostgresMatchRepository struct {
	db DBTX
}

func NewMatchRepository(db DBTX) MatchRepository {
	return &PostgresMatchRepository{db: db}
}

const matchColumns = `id, game, home_team_id, away_team_id, home_score, away_score, played_at`

func (r *PostgresMatchRepository) GetMatch(ctx context.Context, game esports.Game, id int64) (esports.Match, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE game = $1 AND id = $2`, string(game), id)
	m, err := scanMatch(row)
	if err != nil {
		return esports.Match{}, notFound(err)
	}
	return m, nil
}

// ListMatchesByTeam returns the team's most recent matches, newest first.
func (r *PostgresMatchRepository) ListMatchesByTeam(ctx context.Context, game esports.Game, teamID int64, limit int) ([]esports.Match, error) {
	const query = `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE game = $1 AND (home_team_id = $2 OR away_team_id = $2)
		ORDER BY played_at DESC
		LIMIT $3`
	rows, err := r.db.Query(ctx, query, string(game), teamID, ClampMatchLimit(limit))
	if err != nil {
		return nil, err
	}
	return collect(rows, scanMatch)
}

// ClampMatchLimit maps non-positive limits to the default and caps the rest.
func ClampMatchLimit(limit int) int {
	if limit <= 0 {
		return defaultMatchLimit
	}
	if limit > maxMatchLimit {
		return maxMatchLimit
	}
	return limit
}

func scanMatch(row pgx.Row) (esports.Match, error) {
	var m esports.Match
	var game string
	if err := row.Scan(&m.ID, &game, &m.HomeTeamID, &m.AwayTeamID, &m.HomeScore, &m.AwayScore, &m.PlayedAt); err != nil {
		return esports.Match{}, err
	}
	m.Game = esports.Game(game)
	return m, nil
}

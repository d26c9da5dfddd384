package repository

import (
	"context"

	"esports-api/internal/domain/esports"

	"github.com/jackc/pgx/v5"
)

type PostgresTeamRepository struct {
	db DBTX
}

func NewTeamRepository(db DBTX) TeamRepository {
	return &PostgresTeamRepository{db: db}
}

const teamColumns = `id, game, name, region, logo_key`

func (r *PostgresTeamRepository) GetTeam(ctx context.Context, game esports.Game, id int64) (esports.Team, error) {
	row := r.db.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE game = $1 AND id = $2`, string(game), id)
	t, err := scanTeam(row)
	if err != nil {
		return esports.Team{}, notFound(err)
	}
	return t, nil
}

func (r *PostgresTeamRepository) ListTeams(ctx context.Context, game esports.Game) ([]esports.Team, error) {
	rows, err := r.db.Query(ctx, `SELECT `+teamColumns+` FROM teams WHERE game = $1 ORDER BY name`, string(game))
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTeam)
}

func scanTeam(row pgx.Row) (esports.Team, error) {
	var t esports.Team
	var game string
	if err := row.Scan(&t.ID, &game, &t.Name, &t.Region, &t.LogoKey); err != nil {
		return esports.Team{}, err
	}
	t.Game = esports.Game(game)
	return t, nil
}

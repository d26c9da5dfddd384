package repository

import (
	"context"

	"esports-api/internal/domain/esports"

	"github.com/jackc/pgx/v5"
)

type PostgresPlayerRepository struct {
	db DBTX
}

func NewPlayerRepository(db DBTX) PlayerRepository {
	return &PostgresPlayerRepository{db: db}
}

const playerColumns = `id, game, team_id, handle, real_name, role`

func (r *PostgresPlayerRepository) GetPlayer(ctx context.Context, game esports.Game, id int64) (esports.Player, error) {
	row := r.db.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE game = $1 AND id = $2`, string(game), id)
	p, err := scanPlayer(row)
	if err != nil {
		return esports.Player{}, notFound(err)
	}
	return p, nil
}

func (r *PostgresPlayerRepository) ListPlayersByTeam(ctx context.Context, game esports.Game, teamID int64) ([]esports.Player, error) {
	rows, err := r.db.Query(ctx, `SELECT `+playerColumns+` FROM players WHERE game = $1 AND team_id = $2 ORDER BY handle`, string(game), teamID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPlayer)
}

func scanPlayer(row pgx.Row) (esports.Player, error) {
	var p esports.Player
	var game string
	if err := row.Scan(&p.ID, &game, &p.TeamID, &p.Handle, &p.RealName, &p.Role); err != nil {
		return esports.Player{}, err
	}
	p.Game = esports.Game(game)
	return p, nil
}

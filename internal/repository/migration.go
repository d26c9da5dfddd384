package repository

import (
	"context"
	"fmt"
)

// InitSchema creates the tables used by the API. Safe to run repeatedly.
func InitSchema(ctx context.Context, db DBTX) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS teams (
			id BIGSERIAL PRIMARY KEY,
			game TEXT NOT NULL,
			name TEXT NOT NULL,
			region TEXT NOT NULL DEFAULT '',
			logo_key TEXT NOT NULL DEFAULT '',
			UNIQUE (game, name)
		);`,
		`CREATE TABLE IF NOT EXISTS players (
			id BIGSERIAL PRIMARY KEY,
			game TEXT NOT NULL,
			team_id BIGINT REFERENCES teams(id) ON DELETE SET NULL,
			handle TEXT NOT NULL,
			real_name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS players_team_idx ON players (game, team_id);`,
		`CREATE TABLE IF NOT EXISTS matches (
			id BIGSERIAL PRIMARY KEY,
			game TEXT NOT NULL,
			home_team_id BIGINT NOT NULL REFERENCES teams(id),
			away_team_id BIGINT NOT NULL REFERENCES teams(id),
			home_score INT NOT NULL DEFAULT 0,
			away_score INT NOT NULL DEFAULT 0,
			played_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS matches_home_idx ON matches (game, home_team_id, played_at DESC);`,
		`CREATE INDEX IF NOT EXISTS matches_away_idx ON matches (game, away_team_id, played_at DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
)

type SeedResult struct {
	Teams   int
	Players int
	Matches int
}

// SeedDevelopment inserts a small fixture set of teams, players and matches.
func SeedDevelopment(ctx context.Context, db DBTX) (SeedResult, error) {
	teams := []struct {
		game, name, region, logo string
	}{
		{"valorant", "Sentinels", "NA", "valorant/sentinels.png"},
		{"valorant", "Fnatic", "EU", "valorant/fnatic.png"},
		{"tf2", "froyotech", "NA", ""},
		{"tf2", "Se7en", "EU", ""},
	}

	var res SeedResult
	ids := make(map[string]int64, len(teams))
	for _, t := range teams {
		var id int64
		err := db.QueryRow(ctx, `
			INSERT INTO teams (game, name, region, logo_key) VALUES ($1, $2, $3, $4)
			ON CONFLICT (game, name) DO UPDATE SET region = EXCLUDED.region
			RETURNING id`, t.game, t.name, t.region, t.logo).Scan(&id)
		if err != nil {
			return res, fmt.Errorf("seed team %s: %w", t.name, err)
		}
		ids[t.name] = id
		res.Teams++
	}

	players := []struct {
		team, handle, role string
	}{
		{"Sentinels", "TenZ", "duelist"},
		{"Sentinels", "zekken", "initiator"},
		{"Fnatic", "Boaster", "controller"},
	}
	for _, p := range players {
		if _, err := db.Exec(ctx, `
			INSERT INTO players (game, team_id, handle, role) VALUES ('valorant', $1, $2, $3)`,
			ids[p.team], p.handle, p.role); err != nil {
			return res, fmt.Errorf("seed player %s: %w", p.handle, err)
		}
		res.Players++
	}

	matches := []struct {
		game, home, away string
		hs, as           int
	}{
		{"valorant", "Sentinels", "Fnatic", 13, 11},
		{"tf2", "froyotech", "Se7en", 5, 3},
	}
	for _, m := range matches {
		if _, err := db.Exec(ctx, `
			INSERT INTO matches (game, home_team_id, away_team_id, home_score, away_score) VALUES ($1, $2, $3, $4, $5)`,
			m.game, ids[m.home], ids[m.away], m.hs, m.as); err != nil {
			return res, fmt.Errorf("seed match %s vs %s: %w", m.home, m.away, err)
		}
		res.Matches++
	}
	return res, nil
}

// TableExists reports whether table is present in the current schema.
func TableExists(ctx context.Context, db DBTX, table string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, table).Scan(&exists)
	return exists, err
}

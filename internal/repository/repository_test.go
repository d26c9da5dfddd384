package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"esports-api/internal/domain/esports"
	esports_errors "esports-api/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampMatchLimit(t *testing.T) {
	assert.Equal(t, defaultMatchLimit, ClampMatchLimit(0))
	assert.Equal(t, defaultMatchLimit, ClampMatchLimit(-3))
	assert.Equal(t, 5, ClampMatchLimit(5))
	assert.Equal(t, maxMatchLimit, ClampMatchLimit(1000))
}

func TestNotFoundMapsNoRows(t *testing.T) {
	assert.ErrorIs(t, notFound(pgx.ErrNoRows), esports_errors.ErrNotFound)

	other := errors.New("boom")
	assert.Same(t, other, notFound(other))
}

// TestRepositoryIntegration runs against a live Postgres.
func TestRepositoryIntegration(t *testing.T) {
	if os.Getenv("RUN_REPOSITORY_INTEGRATION") != "true" {
		t.Skip("set RUN_REPOSITORY_INTEGRATION=true to run this integration test")
	}
	dbURL := os.Getenv("DATABASE_URL")
	require.NotEmpty(t, dbURL, "DATABASE_URL is required")

	ctx := context.Background()
	pool, err := NewPool(ctx, dbURL)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, InitSchema(ctx, pool))

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	var homeID, awayID int64
	require.NoError(t, tx.QueryRow(ctx,
		`INSERT INTO teams (game, name, region) VALUES ('valorant', $1, 'NA') RETURNING id`, "home_"+suffix).Scan(&homeID))
	require.NoError(t, tx.QueryRow(ctx,
		`INSERT INTO teams (game, name, region) VALUES ('valorant', $1, 'EU') RETURNING id`, "away_"+suffix).Scan(&awayID))
	_, err = tx.Exec(ctx,
		`INSERT INTO players (game, team_id, handle) VALUES ('valorant', $1, 'tenz')`, homeID)
	require.NoError(t, err)
	_, err = tx.Exec(ctx,
		`INSERT INTO matches (game, home_team_id, away_team_id, home_score, away_score) VALUES ('valorant', $1, $2, 13, 7)`, homeID, awayID)
	require.NoError(t, err)

	teams := NewTeamRepository(tx)
	team, err := teams.GetTeam(ctx, esports.GameValorant, homeID)
	require.NoError(t, err)
	assert.Equal(t, "home_"+suffix, team.Name)

	_, err = teams.GetTeam(ctx, esports.GameTF2, homeID)
	assert.ErrorIs(t, err, esports_errors.ErrNotFound)

	players, err := NewPlayerRepository(tx).ListPlayersByTeam(ctx, esports.GameValorant, homeID)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "tenz", players[0].Handle)

	matches, err := NewMatchRepository(tx).ListMatchesByTeam(ctx, esports.GameValorant, awayID, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, homeID, matches[0].Winner())
}

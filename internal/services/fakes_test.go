package services

import (
	"context"
	"encoding/json"
	"errors"

	"esports-api/internal/domain/esports"
	esports_errors "esports-api/pkg/errors"
)

type memTeams struct {
	teams []esports.Team
	calls int
}

func (m *memTeams) GetTeam(_ context.Context, game esports.Game, id int64) (esports.Team, error) {
	m.calls++
	for _, t := range m.teams {
		if t.Game == game && t.ID == id {
			return t, nil
		}
	}
	return esports.Team{}, esports_errors.ErrNotFound
}

func (m *memTeams) ListTeams(_ context.Context, game esports.Game) ([]esports.Team, error) {
	out := []esports.Team{}
	for _, t := range m.teams {
		if t.Game == game {
			out = append(out, t)
		}
	}
	return out, nil
}

type memPlayers struct {
	players []esports.Player
}

func (m *memPlayers) GetPlayer(_ context.Context, game esports.Game, id int64) (esports.Player, error) {
	for _, p := range m.players {
		if p.Game == game && p.ID == id {
			return p, nil
		}
	}
	return esports.Player{}, esports_errors.ErrNotFound
}

func (m *memPlayers) ListPlayersByTeam(_ context.Context, game esports.Game, teamID int64) ([]esports.Player, error) {
	out := []esports.Player{}
	for _, p := range m.players {
		if p.Game == game && p.TeamID != nil && *p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memMatches struct {
	matches   []esports.Match
	lastLimit int
}

func (m *memMatches) GetMatch(_ context.Context, game esports.Game, id int64) (esports.Match, error) {
	for _, x := range m.matches {
		if x.Game == game && x.ID == id {
			return x, nil
		}
	}
	return esports.Match{}, esports_errors.ErrNotFound
}

func (m *memMatches) ListMatchesByTeam(_ context.Context, game esports.Game, teamID int64, limit int) ([]esports.Match, error) {
	m.lastLimit = limit
	out := []esports.Match{}
	for _, x := range m.matches {
		if x.Game == game && (x.HomeTeamID == teamID || x.AwayTeamID == teamID) {
			out = append(out, x)
		}
	}
	return out, nil
}

type memCache struct {
	data    map[string][]byte
	failGet bool
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if c.failGet {
		return false, errors.New("connection refused")
	}
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) Set(_ context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memCache) Invalidate(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

type memLogos struct {
	publicBase string
}

func (m memLogos) FileURL(key string) string {
	if m.publicBase == "" {
		return ""
	}
	return m.publicBase + "/" + key
}

func (m memLogos) PresignGet(_ context.Context, key string) (string, error) {
	return "https://signed.example.com/" + key + "?sig=1", nil
}

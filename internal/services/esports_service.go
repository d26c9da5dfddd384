package services

import (
	"context"
	"fmt"

	"esports-api/internal/domain/esports"
	"esports-api/internal/redis"
	"esports-api/internal/repository"
	esports_errors "esports-api/pkg/errors"
	"esports-api/pkg/logger"
)

// Cache is the read-through cache used for single-entity lookups.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, keys ...string) error
}

type EsportsService struct {
	teams   repository.TeamRepository
	players repository.PlayerRepository
	matches repository.MatchRepository
	cache   Cache
	logger  *logger.Logger
}

// NewEsportsService wires the repositories. cache may be nil to disable caching.
func NewEsportsService(teams repository.TeamRepository, players repository.PlayerRepository, matches repository.MatchRepository, cache Cache, l *logger.Logger) *EsportsService {
	if l == nil {
		l = logger.NewNop()
	}
	return &EsportsService{teams: teams, players: players, matches: matches, cache: cache, logger: l}
}

func (s *EsportsService) GetTeam(ctx context.Context, game esports.Game, id int64) (esports.Team, error) {
	if err := requireEndpoint(game, esports.EndpointTeams); err != nil {
		return esports.Team{}, err
	}
	return cached(ctx, s, redis.TeamKey(game, id), func() (esports.Team, error) {
		return s.teams.GetTeam(ctx, game, id)
	})
}

func (s *EsportsService) ListTeams(ctx context.Context, game esports.Game) ([]esports.Team, error) {
	if err := requireEndpoint(game, esports.EndpointTeams); err != nil {
		return nil, err
	}
	return s.teams.ListTeams(ctx, game)
}

func (s *EsportsService) GetPlayer(ctx context.Context, game esports.Game, id int64) (esports.Player, error) {
	if err := requireEndpoint(game, esports.EndpointPlayers); err != nil {
		return esports.Player{}, err
	}
	return cached(ctx, s, redis.PlayerKey(game, id), func() (esports.Player, error) {
		return s.players.GetPlayer(ctx, game, id)
	})
}

// ListTeamPlayers returns the roster of a team. ErrNotFound refers to the team.
func (s *EsportsService) ListTeamPlayers(ctx context.Context, game esports.Game, teamID int64) ([]esports.Player, error) {
	if err := requireEndpoint(game, esports.EndpointPlayers); err != nil {
		return nil, err
	}
	if _, err := s.GetTeam(ctx, game, teamID); err != nil {
		return nil, err
	}
	return s.players.ListPlayersByTeam(ctx, game, teamID)
}

func (s *EsportsService) GetMatch(ctx context.Context, game esports.Game, id int64) (esports.Match, error) {
	if err := requireEndpoint(game, esports.EndpointMatches); err != nil {
		return esports.Match{}, err
	}
	return cached(ctx, s, redis.MatchKey(game, id), func() (esports.Match, error) {
		return s.matches.GetMatch(ctx, game, id)
	})
}

// ListTeamMatches returns a team's recent matches. ErrNotFound refers to the team.
func (s *EsportsService) ListTeamMatches(ctx context.Context, game esports.Game, teamID int64, limit int) ([]esports.Match, error) {
	if err := requireEndpoint(game, esports.EndpointMatches); err != nil {
		return nil, err
	}
	if _, err := s.GetTeam(ctx, game, teamID); err != nil {
		return nil, err
	}
	return s.matches.ListMatchesByTeam(ctx, game, teamID, limit)
}

// InvalidateTeam drops the cached copy of a team.
func (s *EsportsService) InvalidateTeam(ctx context.Context, game esports.Game, id int64) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx, redis.TeamKey(game, id)); err != nil {
		return fmt.Errorf("invalidate team %d: %w", id, err)
	}
	return nil
}

func requireEndpoint(game esports.Game, endpoint esports.Endpoint) error {
	if _, ok := esports.ParseGame(string(game)); !ok {
		return esports_errors.ErrUnsupportedGame
	}
	if !game.Supports(endpoint) {
		return fmt.Errorf("%s for %s: %w", endpoint, game, esports_errors.ErrUnsupportedEndpoint)
	}
	return nil
}

// cached reads key from the cache, falling back to load and storing the result.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, s *EsportsService, key string, load func() (T, error)) (T, error) {
	log := s.logger.WithContext(ctx)
	if s.cache != nil {
		var v T
		hit, err := s.cache.Get(ctx, key, &v)
		if err != nil {
			log.Warnf("cache get %s: %v", key, err)
		} else if hit {
			return v, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, v); err != nil {
			log.Warnf("cache set %s: %v", key, err)
		}
	}
	return v, nil
}

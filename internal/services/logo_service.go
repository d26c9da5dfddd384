package services

import (
	"context"
	"fmt"

	"esports-api/internal/domain/esports"
	esports_errors "esports-api/pkg/errors"
)

// LogoStore resolves object keys to downloadable URLs.
type LogoStore interface {
	FileURL(key string) string
	PresignGet(ctx context.Context, key string) (string, error)
}

type LogoService struct {
	teams *EsportsService
	store LogoStore
}

// NewLogoService creates the service. A nil store leaves logos unsupported.
func NewLogoService(teams *EsportsService, store LogoStore) *LogoService {
	return &LogoService{teams: teams, store: store}
}

type TeamLogo struct {
	TeamID int64  `json:"team_id"`
	URL    string `json:"url"`
}

// TeamLogoURL returns a URL for the team's logo. ErrNotFound refers to the
// team, or to its logo when none was uploaded.
func (s *LogoService) TeamLogoURL(ctx context.Context, game esports.Game, teamID int64) (TeamLogo, error) {
	if s.store == nil {
		return TeamLogo{}, fmt.Errorf("logo storage disabled: %w", esports_errors.ErrUnsupportedEndpoint)
	}
	if err := requireEndpoint(game, esports.EndpointLogo); err != nil {
		return TeamLogo{}, err
	}
	team, err := s.teams.GetTeam(ctx, game, teamID)
	if err != nil {
		return TeamLogo{}, err
	}
	if team.LogoKey == "" {
		return TeamLogo{}, fmt.Errorf("team %d has no logo: %w", teamID, esports_errors.ErrNotFound)
	}

	if url := s.store.FileURL(team.LogoKey); url != "" {
		return TeamLogo{TeamID: team.ID, URL: url}, nil
	}
	url, err := s.store.PresignGet(ctx, team.LogoKey)
	if err != nil {
		return TeamLogo{}, fmt.Errorf("presign logo: %w", err)
	}
	return TeamLogo{TeamID: team.ID, URL: url}, nil
}

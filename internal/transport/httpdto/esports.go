package httpdto

import (
	"time"

	"esports-api/internal/domain/esports"
)

// GameDTO describes one game API in GET /v1/games
type GameDTO struct {
	Game      string   `json:"game"`
	Endpoints []string `json:"endpoints"`
}

// TeamDTO represents a team in API responses
type TeamDTO struct {
	ID     int64  `json:"id"`
	Game   string `json:"game"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// PlayerDTO represents a player in API responses
type PlayerDTO struct {
	ID       int64  `json:"id"`
	Game     string `json:"game"`
	TeamID   *int64 `json:"team_id"`
	Handle   string `json:"handle"`
	RealName string `json:"real_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// MatchDTO represents a match in API responses
type MatchDTO struct {
	ID         int64  `json:"id"`
	Game       string `json:"game"`
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	WinnerID   *int64 `json:"winner_id"`
	PlayedAt   string `json:"played_at"`
}

func FromGame(g esports.Game) GameDTO {
	eps := g.Endpoints()
	out := make([]string, len(eps))
	for i, e := range eps {
		out[i] = string(e)
	}
	return GameDTO{Game: g.String(), Endpoints: out}
}

func FromTeam(t esports.Team) TeamDTO {
	return TeamDTO{
		ID:     t.ID,
		Game:   t.Game.String(),
		Name:   t.Name,
		Region: t.Region,
	}
}

func FromTeamSlice(items []esports.Team) []TeamDTO {
	out := make([]TeamDTO, 0, len(items))
	for _, t := range items {
		out = append(out, FromTeam(t))
	}
	return out
}

func FromPlayer(p esports.Player) PlayerDTO {
	return PlayerDTO{
		ID:       p.ID,
		Game:     p.Game.String(),
		TeamID:   p.TeamID,
		Handle:   p.Handle,
		RealName: p.RealName,
		Role:     p.Role,
	}
}

func FromPlayerSlice(items []esports.Player) []PlayerDTO {
	out := make([]PlayerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, FromPlayer(p))
	}
	return out
}

func FromMatch(m esports.Match) MatchDTO {
	dto := MatchDTO{
		ID:         m.ID,
		Game:       m.Game.String(),
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		PlayedAt:   m.PlayedAt.UTC().Format(time.RFC3339),
	}
	if w := m.Winner(); w != 0 {
		dto.WinnerID = &w
	}
	return dto
}

func FromMatchSlice(items []esports.Match) []MatchDTO {
	out := make([]MatchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, FromMatch(m))
	}
	return out
}

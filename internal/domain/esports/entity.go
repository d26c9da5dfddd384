package esports

import "time"

type Team struct {
	ID      int64  `json:"id"`
	Game    Game   `json:"game"`
	Name    string `json:"name"`
	Region  string `json:"region"`
	LogoKey string `json:"logo_key,omitempty"`
}

type Player struct {
	ID       int64  `json:"id"`
	Game     Game   `json:"game"`
	TeamID   *int64 `json:"team_id,omitempty"`
	Handle   string `json:"handle"`
	RealName string `json:"real_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

type Match struct {
	ID         int64     `json:"id"`
	Game       Game      `json:"game"`
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	PlayedAt   time.Time `json:"played_at"`
}

// Winner returns the winning team's ID, or 0 for a draw.
func (m Match) Winner() int64 {
	switch {
	case m.HomeScore > m.AwayScore:
		return m.HomeTeamID
	case m.AwayScore > m.HomeScore:
		return m.AwayTeamID
	default:
		return 0
	}
}

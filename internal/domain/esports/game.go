package esports

import "strings"

// Game identifies one of the game-specific APIs.
type Game string

const (
	GameTF2      Game = "tf2"
	GameValorant Game = "valorant"
)

// Endpoint names a resource family that a game API may serve.
type Endpoint string

const (
	EndpointTeams   Endpoint = "teams"
	EndpointPlayers Endpoint = "players"
	EndpointMatches Endpoint = "matches"
	EndpointLogo    Endpoint = "logo"
)

// TF2 rosters are not tracked, so it has no players endpoint.
var capabilities = map[Game][]Endpoint{
	GameTF2:      {EndpointTeams, EndpointMatches, EndpointLogo},
	GameValorant: {EndpointTeams, EndpointPlayers, EndpointMatches, EndpointLogo},
}

// Games returns the supported games in a stable order.
func Games() []Game {
	return []Game{GameTF2, GameValorant}
}

// ParseGame resolves a path segment to a supported game.
func ParseGame(s string) (Game, bool) {
	g := Game(strings.ToLower(strings.TrimSpace(s)))
	_, ok := capabilities[g]
	return g, ok
}

// Endpoints lists what the game's API serves.
func (g Game) Endpoints() []Endpoint {
	eps := capabilities[g]
	out := make([]Endpoint, len(eps))
	copy(out, eps)
	return out
}

// Supports reports whether the game's API serves endpoint.
func (g Game) Supports(endpoint Endpoint) bool {
	for _, e := range capabilities[g] {
		if e == endpoint {
			return true
		}
	}
	return false
}

func (g Game) String() string {
	return string(g)
}

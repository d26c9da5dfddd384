package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"esports-api/config"
	"esports-api/internal/domain/esports"
	"esports-api/internal/handler"
	"esports-api/internal/middleware"
	"esports-api/internal/redis"
	"esports-api/internal/services"
	esports_errors "esports-api/pkg/errors"
	"esports-api/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyReader struct{}

func (emptyReader) GetTeam(context.Context, esports.Game, int64) (esports.Team, error) {
	return esports.Team{}, esports_errors.ErrNotFound
}
func (emptyReader) ListTeams(context.Context, esports.Game) ([]esports.Team, error) {
	return []esports.Team{}, nil
}
func (emptyReader) GetPlayer(context.Context, esports.Game, int64) (esports.Player, error) {
	return esports.Player{}, esports_errors.ErrNotFound
}
func (emptyReader) ListTeamPlayers(context.Context, esports.Game, int64) ([]esports.Player, error) {
	return nil, esports_errors.ErrNotFound
}
func (emptyReader) GetMatch(context.Context, esports.Game, int64) (esports.Match, error) {
	return esports.Match{}, esports_errors.ErrNotFound
}
func (emptyReader) ListTeamMatches(context.Context, esports.Game, int64, int) ([]esports.Match, error) {
	return nil, esports_errors.ErrNotFound
}
func (emptyReader) InvalidateTeam(context.Context, esports.Game, int64) error { return nil }

type noLogos struct{}

func (noLogos) TeamLogoURL(context.Context, esports.Game, int64) (services.TeamLogo, error) {
	return services.TeamLogo{}, esports_errors.ErrUnsupportedEndpoint
}

// keyedLimiter allows limit requests per client key.
type keyedLimiter struct {
	limit int
	seen  map[string]int
}

func (k *keyedLimiter) AllowClient(_ context.Context, ip string) (*redis.RateLimitResult, error) {
	if k.seen == nil {
		k.seen = map[string]int{}
	}
	k.seen[ip]++
	n := k.seen[ip]
	return &redis.RateLimitResult{Allowed: n <= k.limit, Remaining: k.limit - n, Limit: k.limit, ResetIn: time.Minute}, nil
}

type countingLimiter struct {
	limit int
	seen  int
}

func (c *countingLimiter) AllowClient(context.Context, string) (*redis.RateLimitResult, error) {
	c.seen++
	return &redis.RateLimitResult{Allowed: c.seen <= c.limit, Remaining: c.limit - c.seen, Limit: c.limit, ResetIn: time.Minute}, nil
}

func newTestServer(t *testing.T, limiter middleware.Limiter, auth *services.AuthService) *Server {
	return newTestServerWithConfig(t, &config.Config{AppPort: "0", AppMode: TestMode}, limiter, auth)
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config, limiter middleware.Limiter, auth *services.AuthService) *Server {
	t.Helper()
	l := logger.NewNop()
	srv, err := New(cfg, l)
	require.NoError(t, err)
	srv.SetupRoutes(&Handlers{
		System:  handler.NewSystemHandler(nil, l),
		Esports: handler.NewEsportsHandler(emptyReader{}, l),
		Logo:    handler.NewLogoHandler(noLogos{}, l),
		Admin:   handler.NewAdminHandler(emptyReader{}, l),
	}, Middlewares{Limiter: limiter, Auth: auth})
	return srv
}

func get(srv *Server, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func TestRoutesReturnEnvelopes(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	rec := get(srv, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"message":"pong"}}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = get(srv, http.MethodGet, "/v1/games/valorant/teams", nil)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())

	rec = get(srv, http.MethodGet, "/v1/games/valorant/teams/5", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "The team with the given id 5 could not be found.")
}

func TestUnroutedPathsReportUnsupportedEndpoint(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	rec := get(srv, http.MethodGet, "/v1/games/tf2/brackets", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"success":false,"data":{"error-message":"The tf2 API does not support /v1/games/tf2/brackets. Please refer to the documentation for a list of available endpoints."}}`,
		rec.Body.String())

	// admin routes are not mounted without an auth service
	rec = get(srv, http.MethodDelete, "/v1/admin/cache/tf2/teams/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "The standard API does not support /v1/admin/cache/tf2/teams/1.")
}

func TestRateLimitAppliesToV1(t *testing.T) {
	limiter := &countingLimiter{limit: 1}
	srv := newTestServer(t, limiter, nil)

	assert.Equal(t, http.StatusOK, get(srv, http.MethodGet, "/v1/games", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(srv, http.MethodGet, "/v1/games", nil).Code)
	assert.Equal(t, http.StatusOK, get(srv, http.MethodGet, "/ping", nil).Code)
	assert.Equal(t, 2, limiter.seen)
}

func TestAdminRequiresToken(t *testing.T) {
	auth := services.NewAuthService("secret")
	srv := newTestServer(t, nil, auth)

	rec := get(srv, http.MethodDelete, "/v1/admin/cache/valorant/teams/1", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := auth.IssueToken("ops", services.RoleAdmin, time.Minute)
	require.NoError(t, err)
	rec = get(srv, http.MethodDelete, "/v1/admin/cache/valorant/teams/1", http.Header{"Authorization": {"Bearer " + token}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"game":"valorant","team_id":1}}`, rec.Body.String())
}

func getFrom(srv *Server, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/v1/games", nil)
	req.RemoteAddr = remoteAddr
	req.Header.Set("X-Forwarded-For", forwardedFor)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	limiter := &keyedLimiter{limit: 1}
	srv := newTestServer(t, limiter, nil)

	var codes []int
	for _, xff := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		codes = append(codes, getFrom(srv, "203.0.113.7:40000", xff))
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
	assert.Equal(t, map[string]int{"203.0.113.7": 3}, limiter.seen)
}

func TestRateLimitHonoursForwardedForFromTrustedProxy(t *testing.T) {
	limiter := &keyedLimiter{limit: 1}
	cfg := &config.Config{AppPort: "0", AppMode: TestMode, TrustedProxies: []string{"10.0.0.0/8"}}
	srv := newTestServerWithConfig(t, cfg, limiter, nil)

	assert.Equal(t, http.StatusOK, getFrom(srv, "10.1.2.3:40000", "1.1.1.1"))
	assert.Equal(t, http.StatusOK, getFrom(srv, "10.1.2.3:40000", "2.2.2.2"))
	assert.Equal(t, http.StatusTooManyRequests, getFrom(srv, "10.1.2.3:40000", "1.1.1.1"))
	assert.Equal(t, map[string]int{"1.1.1.1": 2, "2.2.2.2": 1}, limiter.seen)
}

func TestNewRejectsInvalidTrustedProxy(t *testing.T) {
	_, err := New(&config.Config{AppMode: TestMode, TrustedProxies: []string{"not-an-ip"}}, logger.NewNop())
	assert.Error(t, err)
}

func TestWrongMethodOnKnownPath(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	rec := get(srv, http.MethodPost, "/v1/games/valorant/teams", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t,
		`{"success":false,"data":{"error-message":"The valorant API does not support POST /v1/games/valorant/teams. Please refer to the documentation for a list of available endpoints."}}`,
		rec.Body.String())

	rec = get(srv, http.MethodPost, "/v1/games/valorant/brackets", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handler

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"esports-api/internal/domain/esports"
	"esports-api/internal/transport/apimsg"
	"esports-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency checked by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type SystemHandler struct {
	deps   map[string]Pinger
	logger *logger.Logger
}

func NewSystemHandler(deps map[string]Pinger, l *logger.Logger) *SystemHandler {
	return &SystemHandler{deps: deps, logger: l}
}

func (h *SystemHandler) Ping(c *gin.Context) {
	respondSuccess(c, gin.H{"message": "pong"})
}

func (h *SystemHandler) Health(c *gin.Context) {
	var failed []string
	for name, dep := range h.deps {
		if err := dep.Ping(c.Request.Context()); err != nil {
			if h.logger != nil {
				h.logger.WithContext(c.Request.Context()).Warnf("health check %s: %v", name, err)
			}
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)
	healthy := len(failed) == 0
	message := ""
	if !healthy {
		message = "Unhealthy dependencies: " + strings.Join(failed, ", ")
	}
	respondConditional(c, healthy, gin.H{"status": "healthy"}, http.StatusServiceUnavailable, message)
}

// NotFound answers any unrouted request. A path under a known game is
// reported against that game's API.
func (h *SystemHandler) NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, apimsg.EndpointNotSupported(c.Request.URL.Path, gameFromPath(c.Request.URL.Path)))
}

// MethodNotAllowed answers a known path requested with a method it does not
// serve.
func (h *SystemHandler) MethodNotAllowed(c *gin.Context) {
	endpoint := c.Request.Method + " " + c.Request.URL.Path
	respondError(c, http.StatusMethodNotAllowed, apimsg.EndpointNotSupported(endpoint, gameFromPath(c.Request.URL.Path)))
}

func gameFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == "games" {
			if g, ok := esports.ParseGame(parts[i+1]); ok {
				return g.String()
			}
			return ""
		}
	}
	return ""
}

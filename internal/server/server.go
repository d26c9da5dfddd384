package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"esports-api/config"
	"esports-api/internal/handler"
	"esports-api/internal/middleware"
	"esports-api/internal/services"
	"esports-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	System  *handler.SystemHandler
	Esports *handler.EsportsHandler
	Logo    *handler.LogoHandler
	Admin   *handler.AdminHandler
}

// Middlewares are optional; a nil limiter disables rate limiting.
type Middlewares struct {
	Limiter middleware.Limiter
	Auth    *services.AuthService
}

// New builds the engine. Forwarding headers are honoured only from
// cfg.TrustedProxies; with none configured the socket address is the client.
func New(cfg *config.Config, l *logger.Logger) (*Server, error) {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	engine.HandleMethodNotAllowed = true
	engine.Use(middleware.Recovery(l))

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.AppPort),
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}, nil
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) SetupRoutes(handlers *Handlers, mw Middlewares) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.NoRoute(handlers.System.NotFound)
	s.engine.NoMethod(handlers.System.MethodNotAllowed)

	s.engine.GET("/ping", handlers.System.Ping)
	s.engine.GET("/health", handlers.System.Health)

	v1 := s.engine.Group("/v1")
	if mw.Limiter != nil {
		v1.Use(middleware.RateLimitMiddleware(mw.Limiter, s.logger))
	}

	v1.GET("/games", handlers.Esports.Games)

	game := v1.Group("/games/:game")
	{
		game.GET("/teams", handlers.Esports.ListTeams)
		game.GET("/teams/:team_id", handlers.Esports.GetTeam)
		game.GET("/teams/:team_id/players", handlers.Esports.ListTeamPlayers)
		game.GET("/teams/:team_id/matches", handlers.Esports.ListTeamMatches)
		game.GET("/teams/:team_id/logo", handlers.Logo.TeamLogo)
		game.GET("/players/:player_id", handlers.Esports.GetPlayer)
		game.GET("/matches/:match_id", handlers.Esports.GetMatch)
	}

	if mw.Auth != nil {
		admin := v1.Group("/admin", middleware.AdminAuthMiddleware(mw.Auth))
		admin.DELETE("/cache/:game/teams/:team_id", handlers.Admin.InvalidateTeam)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}

package main

import (
	"context"
	"log"

	"esports-api/config"
	"esports-api/internal/handler"
	"esports-api/internal/redis"
	"esports-api/internal/repository"
	"esports-api/internal/server"
	"esports-api/internal/services"
	"esports-api/internal/storage"
	"esports-api/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	defer l.Sync()
	logger.SetGlobalLogger(l)

	ctx := context.Background()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := repository.InitSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redisClient := redis.NewClient(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	cache := redis.NewCacheStore(redisClient, cfg.CacheTTL)
	limiter := redis.NewRateLimiter(redisClient, redis.RateLimitConfig{
		Limit:  cfg.RateLimitPerMinute,
		Window: redis.DefaultRateLimitConfig().Window,
	})

	esportsService := services.NewEsportsService(
		repository.NewTeamRepository(pool),
		repository.NewPlayerRepository(pool),
		repository.NewMatchRepository(pool),
		cache,
		l,
	)

	var logoStore services.LogoStore
	if cfg.S3.Enabled() {
		s3Client, err := storage.NewClient(ctx, storage.S3Config{
			Region:     cfg.S3.Region,
			Bucket:     cfg.S3.Bucket,
			AccessKey:  cfg.S3.AccessKey,
			SecretKey:  cfg.S3.SecretKey,
			Endpoint:   cfg.S3.Endpoint,
			PublicBase: cfg.S3.PublicBase,
			PresignTTL: cfg.S3.PresignTTL,
		})
		if err != nil {
			log.Fatalf("Failed to init s3 client: %v", err)
		}
		logoStore = s3Client
	} else {
		l.Warnf("S3 not configured; team logo endpoint disabled")
	}

	handlers := &server.Handlers{
		System: handler.NewSystemHandler(map[string]handler.Pinger{
			"postgres": handler.PingFunc(pool.Ping),
			"redis":    cache,
		}, l),
		Esports: handler.NewEsportsHandler(esportsService, l),
		Logo:    handler.NewLogoHandler(services.NewLogoService(esportsService, logoStore), l),
		Admin:   handler.NewAdminHandler(esportsService, l),
	}

	var auth *services.AuthService
	if cfg.AdminEnabled() {
		auth = services.NewAuthService(cfg.JWTSecret)
	} else {
		l.Warnf("JWT_SECRET unset or default in release mode; admin routes disabled")
	}

	srv, err := server.New(cfg, l)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}
	srv.SetupRoutes(handlers, server.Middlewares{
		Limiter: limiter,
		Auth:    auth,
	})

	if err := srv.Start(); err != nil {
		l.Errorf("server exited: %v", err)
	}
}

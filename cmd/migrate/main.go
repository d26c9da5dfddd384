package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"esports-api/config"
	"esports-api/internal/repository"
	"esports-api/internal/services"
)

const usage = `
Esports API - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Create all tables
  status      Show database connection and table status
  seed-dev    Seed with development data
  token       Print an admin token for the /v1/admin endpoints

Flags:
  -subject string   Subject of the admin token (default "ops")
  -ttl duration     Lifetime of the admin token (default 24h)

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed-dev
  go run cmd/migrate/main.go -subject alice token
`

func main() {
	subject := flag.String("subject", "ops", "Subject of the admin token")
	ttl := flag.Duration("ttl", 24*time.Hour, "Lifetime of the admin token")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	cfg := config.LoadConfig()

	if command == "token" {
		runToken(cfg, *subject, *ttl)
		return
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	switch command {
	case "up":
		if err := repository.InitSchema(ctx, pool); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed successfully")
	case "status":
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("Database connection failed: %v", err)
		}
		log.Println("Database connection: OK")
		for _, table := range []string{"teams", "players", "matches"} {
			exists, err := repository.TableExists(ctx, pool, table)
			if err != nil {
				log.Printf("Error checking table %s: %v", table, err)
				continue
			}
			log.Printf("Table %-10s exists: %t", table, exists)
		}
	case "seed-dev":
		if err := repository.InitSchema(ctx, pool); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		res, err := repository.SeedDevelopment(ctx, pool)
		if err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Printf("Seeded %d teams, %d players, %d matches", res.Teams, res.Players, res.Matches)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runToken(cfg *config.Config, subject string, ttl time.Duration) {
	if !cfg.AdminEnabled() {
		log.Fatalf("Refusing to sign a token: set JWT_SECRET to a non-default value")
	}
	token, err := services.NewAuthService(cfg.JWTSecret).IssueToken(subject, services.RoleAdmin, ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}

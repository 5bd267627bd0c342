package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"vaketracker-api/internal/auth"
	"vaketracker-api/internal/config"
	"vaketracker-api/internal/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// token issues a signed bearer token for a user, for operators and local testing.
func main() {
	userID := flag.String("user", "", "User ID the token is issued for")
	username := flag.String("username", "", "Display name")
	role := flag.String("role", string(models.RoleFieldAgent), "admin, supervisor or field_agent")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *userID == "" {
		log.Fatal().Msg("--user flag is required")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	token, err := authService.GenerateToken(models.Claims{
		UserID:   *userID,
		Username: *username,
		Role:     models.Role(*role),
	})
	if err != nil {
		log.Fatal().Err(err).Str("role", *role).Msg("cannot issue token")
	}

	fmt.Println(token)
}

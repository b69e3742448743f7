package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/app"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	"github.com/gokatarajesh/trivia-api/internal/trivia/external"
)

func main() {
	var (
		amount     = flag.Int("amount", 20, "Number of questions to fetch (1-50)")
		difficulty = flag.String("difficulty", "", "Optional difficulty filter: easy, medium or hard")
		qType      = flag.String("type", "", "Optional question type: multiple or boolean")
		timeout    = flag.Duration("timeout", time.Minute, "Overall import timeout")
	)
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Warn().Err(err).Msg("could not load .env file")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.New(cfg.Name+"-importer", cfg.Env)

	pool, redisClient, err := app.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect")
	}
	defer pool.Close()
	defer redisClient.Close()

	svc := app.NewTriviaService(pool, redisClient, cfg, logger)
	source := external.NewOpenTDBClient(cfg.OpenTDB.BaseURL, &http.Client{Timeout: cfg.OpenTDB.Timeout})

	result, err := trivia.NewImporter(svc, source, logger).Import(ctx, external.FetchParams{
		Amount:     *amount,
		Difficulty: *difficulty,
		Type:       *qType,
	})
	if err != nil {
		logger.Fatal().Err(err).
			Int("imported", result.Imported).
			Msg("import failed")
	}

	logger.Info().
		Int("fetched", result.Fetched).
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("import complete")
}

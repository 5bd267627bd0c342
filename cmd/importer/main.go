package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"vaketracker-api/internal/config"
	"vaketracker-api/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	kindLocations = "locations"
	kindPlaces    = "places"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	kind := flag.String("kind", kindLocations, "What the file holds: locations or places")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}
	if *kind != kindLocations && *kind != kindPlaces {
		log.Fatal().Str("kind", *kind).Msg("--kind must be locations or places")
	}

	log.Info().Str("file", *file).Str("kind", *kind).Msg("starting import")

	result, err := parseFile(*file, *kind)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing CSV")
	}

	log.Info().
		Int("locations", len(result.Locations)).
		Int("places", len(result.Places)).
		Int("skipped", result.Skipped).
		Msg("parsed records")

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	if cfg.LocationStore != config.StorePostgres {
		log.Fatal().Str("store", cfg.LocationStore).Msg("the importer only writes to the postgres store")
	}

	ctx := context.Background()

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer conn.Close(ctx)

	// Ensure tables exist
	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		log.Fatal().Err(err).Msg("error creating tables")
	}

	var inserted int64
	switch *kind {
	case kindPlaces:
		inserted, err = insertPlaces(ctx, conn, result)
	default:
		inserted, err = insertLocations(ctx, conn, result)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error inserting records")
	}

	log.Info().Int64("inserted", inserted).Msg("import finished")
}

func parseFile(path, kind string) (parseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return parseResult{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if kind == kindPlaces {
		return parsePlaces(f)
	}
	return parseLocations(f, time.Now())
}

func insertLocations(ctx context.Context, conn *pgx.Conn, result parseResult) (int64, error) {
	// Use CopyFrom for bulk insert
	return conn.CopyFrom(
		ctx,
		pgx.Identifier{"locations"},
		[]string{"id", "user_id", "latitude", "longitude", "country", "region", "notes", "captured_at"},
		pgx.CopyFromSlice(len(result.Locations), func(i int) ([]interface{}, error) {
			l := result.Locations[i]
			return []interface{}{uuid.MustParse(l.ID), l.UserID, l.Latitude, l.Longitude, nullable(l.Country), nullable(l.Region), nullable(l.Notes), l.CapturedAt}, nil
		}),
	)
}

func insertPlaces(ctx context.Context, conn *pgx.Conn, result parseResult) (int64, error) {
	return conn.CopyFrom(
		ctx,
		pgx.Identifier{"places"},
		[]string{"name", "locality", "region", "country", "geom"},
		pgx.CopyFromSlice(len(result.Places), func(i int) ([]interface{}, error) {
			p := result.Places[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", p.Longitude, p.Latitude) // PostGIS format: lon lat
			return []interface{}{p.Name, p.Locality, p.Region, p.Country, geom}, nil
		}),
	)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

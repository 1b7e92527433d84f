package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yah600/okey-core/internal/config"
	"github.com/yah600/okey-core/internal/domain"
	"github.com/yah600/okey-core/internal/portfolio"
	"github.com/yah600/okey-core/internal/prefs"
	"github.com/yah600/okey-core/internal/search"
	"github.com/yah600/okey-core/internal/seed"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	// A local .env is optional; real environment variables win.
	_ = godotenv.Load()

	// Initialize structured logging from environment.
	level, parseErr := zerolog.ParseLevel(os.Getenv("OKEY_LOG_LEVEL"))
	if parseErr != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if os.Getenv("OKEY_LOG_FORMAT") == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Preference snapshot store: embedded SQLite when a path is configured,
	// in-memory otherwise.
	var prefStore prefs.Store = prefs.NewMemory()
	if cfg.PrefsPath != "" {
		db, err := prefs.NewSQLite(cfg.PrefsPath)
		if err != nil {
			return err
		}
		defer db.Close()
		prefStore = db
	}

	// Collections are always re-seeded from the fixed sample data; only the
	// search preferences survive between sessions.
	listings, err := seed.Listings()
	if err != nil {
		return err
	}
	properties, err := seed.Properties()
	if err != nil {
		return err
	}
	units, err := seed.Units()
	if err != nil {
		return err
	}

	engine := search.New(listings, cfg.ItemsPerPage)

	p, err := prefStore.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.Info().Msg("no saved search preferences, using defaults")
	case err != nil:
		return err
	default:
		engine.Hydrate(p.Filters, p.SortBy)
	}

	store := portfolio.New(properties, units, log.Logger)

	log.Info().
		Int("listings", len(listings)).
		Int("pages", engine.TotalPages()).
		Int("page_size", engine.ItemsPerPage()).
		Msg("marketplace ready")

	if len(properties) > 0 {
		sum := store.OwnerSummary(properties[0].OwnerID)
		log.Info().
			Int("properties", sum.Properties).
			Int("units", sum.TotalUnits).
			Float64("occupancy", sum.OccupancyRate).
			Float64("net_income", sum.NetIncome).
			Msg("portfolio ready")
	}

	// Persist the current search state for the next session.
	snapshot := &prefs.Preferences{Filters: engine.Filters(), SortBy: engine.SortBy()}
	if err := prefStore.Save(ctx, snapshot); err != nil {
		return err
	}

	return nil
}

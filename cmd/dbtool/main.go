package main

import (
	"context"
	"database/sql"
	"fmt"
	"parcel-costing-service/internal/adapters/currency"
	"parcel-costing-service/internal/adapters/repositories"
	"parcel-costing-service/internal/config"
	"parcel-costing-service/internal/platform/db"
	"strings"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	config.LoadEnv()

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	sqlDB, err := db.Open(ctx, databaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer sqlDB.Close()

	locationsPath := config.Get("LOCATIONS_SEED_PATH", "data/seeds/locations.json")
	ratesPath := config.Get("RATES_SEED_PATH", "data/seeds/rates.json")
	if err := initAndSeed(ctx, sqlDB, locationsPath, ratesPath); err != nil {
		logger.Fatal("dbtool failed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, sqlDB *sql.DB, locationsPath, ratesPath string) error {
	log := zap.L()

	log.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, sqlDB); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info("schema ready")

	log.Info("seeding locations", zap.String("path", locationsPath))
	if err := repositories.SeedLocationsFromJSON(ctx, sqlDB, locationsPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	log.Info("seeding currency rates", zap.String("path", ratesPath))
	if err := repositories.SeedRatesFromJSON(ctx, currency.NewSQLRateConverter(sqlDB), ratesPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info("seeding complete")

	return nil
}

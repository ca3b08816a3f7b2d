package main

import (
	"context"
	"net/http"
	"parcel-costing-service/internal/adapters/carrier"
	"parcel-costing-service/internal/adapters/currency"
	"parcel-costing-service/internal/adapters/repositories"
	"parcel-costing-service/internal/adapters/store"
	"parcel-costing-service/internal/api"
	"parcel-costing-service/internal/config"
	"parcel-costing-service/internal/platform/db"
	"parcel-costing-service/internal/services"
	"strings"
	"time"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, carrier HTTP API, Redis) behind ports
// and starts the HTTP server.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	config.LoadEnv()

	settings, err := config.Load()
	if err != nil {
		logger.Fatal("load settings", zap.Error(err))
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		logger.Fatal("DATABASE_URL is required")
	}
	carrierURL := config.Get("CARRIER_URL", "")
	if strings.TrimSpace(carrierURL) == "" {
		logger.Fatal("CARRIER_URL is required")
	}
	port := config.Get("PORT", "8080")

	ctx := context.Background()

	sqlDB, err := db.Open(ctx, databaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer sqlDB.Close()

	provider, err := carrier.NewHTTPTariffProvider(carrierURL, config.Get("CARRIER_KEY", ""), 15*time.Second)
	if err != nil {
		logger.Fatal("carrier provider", zap.Error(err))
	}

	// The memo is opt-in: RESULT_STORE=memory|redis|none, Redis when only
	// REDIS_ADDR is set.
	resultStore, closeStore, err := store.Open(
		ctx,
		config.Get("RESULT_STORE", ""),
		config.Get("REDIS_ADDR", ""),
		24*time.Hour,
	)
	if err != nil {
		logger.Fatal("result store", zap.Error(err))
	}
	defer func() { _ = closeStore() }()

	calc := services.NewTariffCalculator(
		provider,
		currency.NewSQLRateConverter(sqlDB),
		resultStore,
		settings,
	)
	locations := repositories.NewSQLLocationRepository(sqlDB)
	router := api.NewRouter(calc, locations, resultStore, settings)

	// Timeouts cover one synchronous carrier lookup per request.
	logger.Info("server listening", zap.String("addr", ":"+port))
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

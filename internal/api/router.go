package api

import (
	"net/http"
	"parcel-costing-service/internal/api/handlers"
	"parcel-costing-service/internal/config"
	"parcel-costing-service/internal/platform/obs"
	"parcel-costing-service/internal/ports"
	"parcel-costing-service/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// store may be nil when the last-result memo is disabled.
func NewRouter(
	calc *services.TariffCalculator,
	locations ports.LocationRepository,
	store ports.ResultStore,
	settings config.Settings,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	tariffHandler := &handlers.TariffHandler{Catalog: calc.Catalog}
	calcHandler := &handlers.CalculationHandler{
		Calculator: calc,
		Locations:  locations,
		Store:      store,
		Settings:   settings,
	}

	r.Get("/health", handlers.Health)
	r.Method(http.MethodGet, "/metrics", obs.Handler())
	r.Get("/tariffs", tariffHandler.List)
	r.Post("/calculations", calcHandler.Calculate)
	r.Get("/calculations/last", calcHandler.Last)

	return r
}

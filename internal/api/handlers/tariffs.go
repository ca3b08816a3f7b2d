package handlers

import (
	"net/http"
	"parcel-costing-service/internal/api/dto"
	"parcel-costing-service/internal/services"
)

// TariffHandler exposes the tariff catalog.
type TariffHandler struct {
	Catalog services.TariffCatalog
}

// List returns the tariffs this deployment is allowed to quote.
func (h *TariffHandler) List(w http.ResponseWriter, r *http.Request) {
	allowed := h.Catalog.Allowed()

	res := dto.ListTariffsResponse{Tariffs: make([]dto.TariffResponse, 0, len(allowed))}
	for _, t := range allowed {
		res.Tariffs = append(res.Tariffs, dto.TariffResponse{Code: string(t.Code), Name: t.Name})
	}

	writeJSON(w, r, http.StatusOK, res)
}

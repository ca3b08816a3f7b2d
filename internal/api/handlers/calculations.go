package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"parcel-costing-service/internal/api/dto"
	"parcel-costing-service/internal/config"
	"parcel-costing-service/internal/domain"
	"parcel-costing-service/internal/ports"
	"parcel-costing-service/internal/services"
	"strings"

	"go.uber.org/zap"
)

type CalculationHandler struct {
	Calculator *services.TariffCalculator
	Locations  ports.LocationRepository
	Store      ports.ResultStore
	Settings   config.Settings
}

// Calculate builds a shipment from the request, aggregates its items and
// prices it with either the best or the requested tariff.
func (h *CalculationHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	ctx := r.Context()

	sender, err := h.Locations.GetLocation(ctx, req.SenderLocationID)
	if err != nil {
		zap.L().Error("resolve sender location failed", zap.Int64("location_id", req.SenderLocationID), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	receiver, err := h.Locations.GetLocation(ctx, req.ReceiverLocationID)
	if err != nil {
		zap.L().Error("resolve receiver location failed", zap.Int64("location_id", req.ReceiverLocationID), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	shipment := &domain.Shipment{
		Sender:        sender,
		Receiver:      receiver,
		SelfPickup:    boolOr(req.SelfPickup, h.Settings.SelfPickup),
		SelfDelivery:  boolOr(req.SelfDelivery, h.Settings.SelfDelivery),
		DeclaredValue: boolOr(req.DeclaredValue, h.Settings.DeclaredValue),
		Payment: domain.PaymentMethod{
			PayerType: strings.TrimSpace(req.Payment.PayerType),
			PaySystem: strings.TrimSpace(req.Payment.PaySystem),
		},
	}

	items := make([]domain.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.Item{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			VATRate:  it.VATRate,
			Weight:   it.Weight,
			Dimensions: domain.ItemDimensions{
				Length: it.Dimensions.Length,
				Width:  it.Dimensions.Width,
				Height: it.Dimensions.Height,
			},
		})
	}

	if err := shipment.SetItems(items, req.Price, services.Aggregator(h.Settings.DefaultDimensions)); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	code := domain.TariffCode(strings.ToUpper(strings.TrimSpace(req.TariffCode)))

	var res domain.CalculationResult
	if code == "" {
		res, err = h.Calculator.Calculate(ctx, shipment, currency)
	} else {
		res, err = h.Calculator.CalculateWithTariff(ctx, shipment, code, currency)
	}
	if err != nil {
		status, msg := statusFor(err)
		if status >= http.StatusInternalServerError {
			zap.L().Error("calculation failed", zap.Error(err))
		}
		writeError(w, r, status, msg)
		return
	}

	out := toCalculationResponse(res)
	out.Package = &dto.PackageProfileResponse{
		Width:  shipment.Profile.Width,
		Height: shipment.Profile.Height,
		Length: shipment.Profile.Length,
		Weight: shipment.Profile.Weight,
		Volume: shipment.Profile.Volume(),
	}
	writeJSON(w, r, http.StatusOK, out)
}

// Last returns the most recent calculation recorded by the result store.
func (h *CalculationHandler) Last(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, r, http.StatusNotFound, "result store is disabled")
		return
	}

	res, ok, err := h.Store.Last(r.Context())
	if err != nil {
		zap.L().Error("load last result failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "no calculation recorded")
		return
	}

	writeJSON(w, r, http.StatusOK, toCalculationResponse(res))
}

func toCalculationResponse(res domain.CalculationResult) dto.CalculationResponse {
	return dto.CalculationResponse{
		TariffCode:         string(res.TariffCode),
		TariffName:         res.TariffName,
		Cost:               res.Cost,
		Currency:           res.Currency,
		CommissionApplied:  res.CommissionApplied,
		CommissionCurrency: res.CommissionCurrency,
	}
}

func statusFor(err error) (int, string) {
	var pe *domain.ProviderError
	switch {
	case errors.Is(err, domain.ErrInfeasibleShipment):
		return http.StatusUnprocessableEntity, domain.ErrInfeasibleShipment.Error()
	case errors.Is(err, domain.ErrNoTariffAvailable):
		return http.StatusUnprocessableEntity, domain.ErrNoTariffAvailable.Error()
	case errors.Is(err, domain.ErrTariffNotFound):
		return http.StatusNotFound, domain.ErrTariffNotFound.Error()
	case errors.As(err, &pe):
		return http.StatusBadGateway, "tariff cost provider failed"
	}
	return http.StatusInternalServerError, "internal server error"
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

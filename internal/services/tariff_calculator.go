package services

import (
	"context"
	"errors"
	"fmt"
	"parcel-costing-service/internal/config"
	"parcel-costing-service/internal/domain"
	"parcel-costing-service/internal/platform/obs"
	"parcel-costing-service/internal/ports"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TariffCalculator prices shipments against the carrier cost table.
//
// Converter and Store are optional. The calculator keeps no state
// between calls; every call returns its own result.
type TariffCalculator struct {
	Provider  ports.TariffCostProvider
	Converter ports.CurrencyConverter
	Store     ports.ResultStore
	Settings  config.Settings
	Catalog   TariffCatalog
}

func NewTariffCalculator(
	provider ports.TariffCostProvider,
	converter ports.CurrencyConverter,
	store ports.ResultStore,
	settings config.Settings,
) *TariffCalculator {
	return &TariffCalculator{
		Provider:  provider,
		Converter: converter,
		Store:     store,
		Settings:  settings,
		Catalog:   NewTariffCatalog(settings.DisabledTariffs),
	}
}

// Calculate returns the cheapest allowed tariff for shipment, replaced by
// the configured default tariff when the cheapest cost is below the
// default-tariff threshold. An empty targetCurrency keeps the source currency.
func (c *TariffCalculator) Calculate(
	ctx context.Context,
	shipment *domain.Shipment,
	targetCurrency string,
) (_ domain.CalculationResult, err error) {
	defer obs.Time(ctx, "calculator.Calculate")(&err)

	tariffs, err := c.allowedTariffs(ctx, shipment)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("calculate: %w", err)
	}

	tariff := SelectTariff(tariffs, c.Settings.DefaultTariffCode, c.Settings.DefaultTariffThreshold)

	res, err := c.finish(ctx, shipment, tariff, targetCurrency)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("calculate: %w", err)
	}
	return res, nil
}

// CalculateWithTariff prices shipment with the given tariff code.
func (c *TariffCalculator) CalculateWithTariff(
	ctx context.Context,
	shipment *domain.Shipment,
	code domain.TariffCode,
	targetCurrency string,
) (_ domain.CalculationResult, err error) {
	defer obs.Time(ctx, "calculator.CalculateWithTariff")(&err)

	tariffs, err := c.allowedTariffs(ctx, shipment)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("calculate with tariff %q: %w", code, err)
	}

	idx := slices.IndexFunc(tariffs, func(t domain.Tariff) bool { return t.Code == code })
	if idx < 0 {
		return domain.CalculationResult{}, fmt.Errorf("calculate with tariff %q: %w", code, domain.ErrTariffNotFound)
	}

	res, err := c.finish(ctx, shipment, tariffs[idx], targetCurrency)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("calculate with tariff %q: %w", code, err)
	}
	return res, nil
}

// BuildCostRequest maps a shipment onto the carrier cost lookup.
// The declared value is the shipment price rounded to cents, or zero
// when declared-value mode is off.
func BuildCostRequest(shipment *domain.Shipment) ports.CostRequest {
	declared := decimal.Zero
	if shipment.DeclaredValue {
		declared = shipment.Price.Round(2)
	}

	return ports.CostRequest{
		PickupLocationID:   shipment.Sender.ID,
		DeliveryLocationID: shipment.Receiver.ID,
		Weight:             shipment.Profile.Weight,
		Volume:             shipment.Profile.Volume(),
		SelfPickup:         shipment.SelfPickup,
		SelfDelivery:       shipment.SelfDelivery,
		DeclaredValue:      declared,
	}
}

// SelectTariff picks the minimum-cost tariff (first one on equal cost).
// When defaultCode is present in tariffs and the minimum cost is strictly
// below threshold, the default tariff is returned instead.
// tariffs must not be empty.
func SelectTariff(
	tariffs []domain.Tariff,
	defaultCode domain.TariffCode,
	threshold decimal.Decimal,
) domain.Tariff {
	actual := tariffs[0]
	var preferred *domain.Tariff

	for i := range tariffs {
		t := tariffs[i]
		if defaultCode != "" && t.Code == defaultCode {
			preferred = &tariffs[i]
		}
		if t.Cost.LessThan(actual.Cost) {
			actual = t
		}
	}

	if preferred != nil && actual.Cost.LessThan(threshold) {
		return *preferred
	}
	return actual
}

// allowedTariffs checks feasibility, queries the provider once and
// filters the answer through the catalog.
func (c *TariffCalculator) allowedTariffs(ctx context.Context, shipment *domain.Shipment) ([]domain.Tariff, error) {
	if !shipment.IsFeasible() {
		return nil, domain.ErrInfeasibleShipment
	}

	raw, err := c.Provider.GetServiceCost(ctx, BuildCostRequest(shipment))
	if err != nil {
		var pe *domain.ProviderError
		if errors.As(err, &pe) {
			return nil, err
		}
		return nil, &domain.ProviderError{Err: err}
	}

	tariffs := c.Catalog.Filter(raw)
	if len(tariffs) == 0 {
		return nil, domain.ErrNoTariffAvailable
	}
	return tariffs, nil
}

// finish applies the COD commission and the currency conversion, then
// records the result in the opt-in store.
func (c *TariffCalculator) finish(
	ctx context.Context,
	shipment *domain.Shipment,
	tariff domain.Tariff,
	targetCurrency string,
) (domain.CalculationResult, error) {
	commission := decimal.Zero
	if IsPaymentOnDelivery(shipment, c.Settings) {
		rule := c.Settings.CODRuleFor(shipment.Payment.PayerType)
		if rule.CommissionEnabled {
			commission = Commission(shipment.Price, rule)
		}
	}

	source := c.sourceCurrency(tariff)
	res := domain.CalculationResult{
		TariffCode:         tariff.Code,
		TariffName:         tariff.Name,
		Cost:               tariff.Cost.Add(commission),
		Currency:           source,
		CommissionApplied:  commission,
		CommissionCurrency: source,
	}

	// Without a converter the cost stays in the source currency.
	if c.Converter != nil {
		to := targetCurrency
		if to == "" {
			to = res.Currency
		}

		cost, err := c.Converter.Convert(ctx, res.Cost, res.Currency, to, time.Time{})
		if err != nil {
			return domain.CalculationResult{}, fmt.Errorf("convert %s -> %s: %w", res.Currency, to, err)
		}
		res.Cost = cost
		res.Currency = to
	}

	obs.CountQuote(string(res.TariffCode), commission.IsPositive())

	if c.Store != nil {
		if err := c.Store.Save(ctx, res); err != nil {
			zap.L().Warn("result store write failed", zap.Error(err))
		}
	}

	return res, nil
}

func (c *TariffCalculator) sourceCurrency(t domain.Tariff) string {
	if t.Currency != "" {
		return t.Currency
	}
	return c.Settings.ClientCurrency
}

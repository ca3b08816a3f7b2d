package services

import (
	"parcel-costing-service/internal/config"
	"parcel-costing-service/internal/domain"
	"slices"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// IsPaymentOnDelivery reports whether the carrier collects payment
// for shipment.
//
// The receiver's country needs an active carrier account. Without a pay
// system the payer type's "COD by default" flag decides; otherwise the
// pay system must be listed for the payer type.
func IsPaymentOnDelivery(shipment *domain.Shipment, settings config.Settings) bool {
	if shipment == nil || shipment.Receiver == nil {
		return false
	}
	if !settings.HasActiveAccount(shipment.Receiver.CountryCode) {
		return false
	}

	pm := shipment.Payment
	if pm.Empty() {
		return false
	}

	rule := settings.CODRuleFor(pm.PayerType)
	if pm.PaySystem == "" {
		return rule.DefaultOnDelivery
	}
	return slices.Contains(rule.PaySystems, pm.PaySystem)
}

// Commission returns max(price * percent / 100, minimum).
func Commission(price decimal.Decimal, rule config.CODRule) decimal.Decimal {
	sum := price.Mul(rule.CommissionPercent).Div(hundred)
	if sum.LessThan(rule.CommissionMin) {
		return rule.CommissionMin
	}
	return sum
}

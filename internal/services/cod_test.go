package services

import (
	"parcel-costing-service/internal/config"
	"parcel-costing-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommission(t *testing.T) {
	tests := []struct {
		name  string
		price string
		pct   string
		min   string
		want  string
	}{
		{"minimum wins", "1000", "2", "50", "50"},
		{"percent wins", "10000", "2", "50", "200"},
		{"no minimum", "1000", "2", "0", "20"},
		{"fractional", "333.33", "1.5", "0", "4.99995"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := config.CODRule{CommissionPercent: dec(tt.pct), CommissionMin: dec(tt.min)}
			got := Commission(dec(tt.price), rule)
			assert.True(t, got.Equal(dec(tt.want)), "got %s", got)
		})
	}
}

func TestIsPaymentOnDelivery(t *testing.T) {
	settings := config.Settings{
		AccountCountries: []string{"RU", "KZ"},
		COD: map[string]config.CODRule{
			"person":  {DefaultOnDelivery: true, PaySystems: []string{"cash", "card-on-delivery"}},
			"company": {PaySystems: []string{"invoice"}},
		},
	}

	shipmentTo := func(country string, pm domain.PaymentMethod) *domain.Shipment {
		return &domain.Shipment{
			Receiver: &domain.Location{ID: 2, CountryCode: country},
			Payment:  pm,
		}
	}

	tests := []struct {
		name     string
		shipment *domain.Shipment
		want     bool
	}{
		{"listed pay system", shipmentTo("RU", domain.PaymentMethod{PayerType: "person", PaySystem: "cash"}), true},
		{"unlisted pay system", shipmentTo("RU", domain.PaymentMethod{PayerType: "person", PaySystem: "online"}), false},
		{"no pay system, default on", shipmentTo("KZ", domain.PaymentMethod{PayerType: "person"}), true},
		{"no pay system, default off", shipmentTo("RU", domain.PaymentMethod{PayerType: "company"}), false},
		{"no payment method", shipmentTo("RU", domain.PaymentMethod{}), false},
		{"country without account", shipmentTo("BY", domain.PaymentMethod{PayerType: "person", PaySystem: "cash"}), false},
		{"no receiver", &domain.Shipment{Payment: domain.PaymentMethod{PayerType: "person"}}, false},
		{"unknown payer type", shipmentTo("RU", domain.PaymentMethod{PayerType: "robot", PaySystem: "cash"}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPaymentOnDelivery(tt.shipment, settings))
		})
	}
}

func TestIsPaymentOnDeliveryAllCountriesWhenUnset(t *testing.T) {
	settings := config.Settings{
		COD: map[string]config.CODRule{"person": {PaySystems: []string{"cash"}}},
	}
	s := &domain.Shipment{
		Receiver: &domain.Location{CountryCode: "DE"},
		Payment:  domain.PaymentMethod{PayerType: "person", PaySystem: "cash"},
	}
	assert.True(t, IsPaymentOnDelivery(s, settings))
}

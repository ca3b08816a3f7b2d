package dto

import "github.com/shopspring/decimal"

type ItemDimensionsRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ItemRequest struct {
	Name       string                `json:"name"`
	Quantity   int                   `json:"quantity"`
	Price      decimal.Decimal       `json:"price"`
	VATRate    string                `json:"vat_rate"`
	Weight     float64               `json:"weight"`
	Dimensions ItemDimensionsRequest `json:"dimensions"`
}

type PaymentRequest struct {
	PayerType string `json:"payer_type"`
	PaySystem string `json:"pay_system"`
}

type CalculationRequest struct {
	SenderLocationID   int64           `json:"sender_location_id"`
	ReceiverLocationID int64           `json:"receiver_location_id"`
	Items              []ItemRequest   `json:"items"`
	Price              decimal.Decimal `json:"price"`
	SelfPickup         *bool           `json:"self_pickup"`
	SelfDelivery       *bool           `json:"self_delivery"`
	DeclaredValue      *bool           `json:"declared_value"`
	Payment            PaymentRequest  `json:"payment"`
	TariffCode         string          `json:"tariff_code"`
	Currency           string          `json:"currency"`
}

type PackageProfileResponse struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
	Volume float64 `json:"volume"`
}

type CalculationResponse struct {
	TariffCode         string                  `json:"tariff_code"`
	TariffName         string                  `json:"tariff_name"`
	Cost               decimal.Decimal         `json:"cost"`
	Currency           string                  `json:"currency"`
	CommissionApplied  decimal.Decimal         `json:"commission_applied"`
	CommissionCurrency string                  `json:"commission_currency"`
	Package            *PackageProfileResponse `json:"package,omitempty"`
}

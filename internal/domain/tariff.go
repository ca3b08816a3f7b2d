package domain

import "github.com/shopspring/decimal"

// Carrier service code, e.g. "PCL".
type TariffCode string

const (
	TariffOnlineClassic TariffCode = "PCL"
	TariffOnlineExpress TariffCode = "CSM"
	TariffEconomy       TariffCode = "ECN"
	TariffEconomyCU     TariffCode = "ECU"
)

// Entry of the fixed tariff universe.
type TariffInfo struct {
	Code TariffCode
	Name string
}

// Tariffs the integration is willing to quote, in display order.
var SupportedTariffs = []TariffInfo{
	{Code: TariffOnlineClassic, Name: "DPD Online Classic"},
	{Code: TariffOnlineExpress, Name: "DPD Online Express"},
	{Code: TariffEconomy, Name: "DPD ECONOMY"},
	{Code: TariffEconomyCU, Name: "DPD ECONOMY CU"},
}

// TariffName returns the catalog display name for code.
func TariffName(code TariffCode) (string, bool) {
	for _, t := range SupportedTariffs {
		if t.Code == code {
			return t.Name, true
		}
	}
	return "", false
}

// Represents one priced service option returned by the carrier.
// Tariffs are transient and re-fetched for every calculation.
type Tariff struct {
	Code     TariffCode
	Name     string
	Cost     decimal.Decimal
	Currency string
}

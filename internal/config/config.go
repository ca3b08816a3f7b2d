package config

import (
	"fmt"
	"os"
	"parcel-costing-service/internal/domain"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// COD rules for one payer type.
type CODRule struct {
	// Commission surcharge
	CommissionEnabled bool
	CommissionPercent decimal.Decimal
	CommissionMin     decimal.Decimal

	// COD eligibility
	DefaultOnDelivery bool
	PaySystems        []string
}

// Settings is the typed configuration surface of the costing engine.
type Settings struct {
	DisabledTariffs        []domain.TariffCode
	DefaultTariffCode      domain.TariffCode
	DefaultTariffThreshold decimal.Decimal

	COD map[string]CODRule

	DefaultDimensions domain.Dimensions

	DeclaredValue bool
	SelfPickup    bool
	SelfDelivery  bool

	ClientCurrency   string
	AccountCountries []string
}

// CODRuleFor returns the rule of payerType, falling back to the
// commission defaults (disabled, 2%, no minimum).
func (s Settings) CODRuleFor(payerType string) CODRule {
	if r, ok := s.COD[payerType]; ok {
		return r
	}
	return CODRule{CommissionPercent: decimal.NewFromInt(2)}
}

// HasActiveAccount reports whether the carrier account serves country.
// An empty list means every country is served.
func (s Settings) HasActiveAccount(country string) bool {
	if len(s.AccountCountries) == 0 {
		return true
	}
	for _, c := range s.AccountCountries {
		if strings.EqualFold(c, country) {
			return true
		}
	}
	return false
}

// Get returns the environment value of key or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads a .env file when present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		zap.L().Info("no .env file found (using environment variables)")
	}
}

// Load builds Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	var err error

	for _, code := range list(Get("TARIFF_OFF", "")) {
		s.DisabledTariffs = append(s.DisabledTariffs, domain.TariffCode(strings.ToUpper(code)))
	}
	s.DefaultTariffCode = domain.TariffCode(strings.ToUpper(Get("DEFAULT_TARIFF_CODE", "")))
	if s.DefaultTariffThreshold, err = getDecimal("DEFAULT_TARIFF_THRESHOLD", "0"); err != nil {
		return Settings{}, err
	}

	s.COD = make(map[string]CODRule)
	for _, payer := range list(Get("COD_PAYER_TYPES", "")) {
		rule, err := loadCODRule(payer)
		if err != nil {
			return Settings{}, err
		}
		s.COD[payer] = rule
	}

	dims := []struct {
		key string
		dst *float64
	}{
		{"WIDTH", &s.DefaultDimensions.Width},
		{"HEIGHT", &s.DefaultDimensions.Height},
		{"LENGTH", &s.DefaultDimensions.Length},
		{"WEIGHT", &s.DefaultDimensions.Weight},
	}
	for _, d := range dims {
		if *d.dst, err = getFloat(d.key, "0"); err != nil {
			return Settings{}, err
		}
	}

	if s.DeclaredValue, err = getBool("DECLARED_VALUE", "true"); err != nil {
		return Settings{}, err
	}
	if s.SelfPickup, err = getBool("SELF_PICKUP", "true"); err != nil {
		return Settings{}, err
	}
	if s.SelfDelivery, err = getBool("SELF_DELIVERY", "true"); err != nil {
		return Settings{}, err
	}

	s.ClientCurrency = strings.ToUpper(Get("CLIENT_CURRENCY", "RUB"))
	s.AccountCountries = list(Get("ACCOUNT_COUNTRIES", ""))

	return s, nil
}

func loadCODRule(payer string) (CODRule, error) {
	var r CODRule
	var err error

	suffix := "_" + strings.ToUpper(payer)
	if r.CommissionEnabled, err = getBool("COMMISSION_NPP_CHECK"+suffix, "false"); err != nil {
		return CODRule{}, err
	}
	if r.CommissionPercent, err = getDecimal("COMMISSION_NPP_PERCENT"+suffix, "2"); err != nil {
		return CODRule{}, err
	}
	if r.CommissionMin, err = getDecimal("COMMISSION_NPP_MINSUM"+suffix, "0"); err != nil {
		return CODRule{}, err
	}
	if r.DefaultOnDelivery, err = getBool("COMMISSION_NPP_DEFAULT"+suffix, "false"); err != nil {
		return CODRule{}, err
	}
	r.PaySystems = list(Get("COMMISSION_NPP_PAYMENT"+suffix, ""))

	return r, nil
}

func list(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getBool(key, fallback string) (bool, error) {
	v, err := strconv.ParseBool(Get(key, fallback))
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

func getFloat(key, fallback string) (float64, error) {
	v, err := strconv.ParseFloat(Get(key, fallback), 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

func getDecimal(key, fallback string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(Get(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

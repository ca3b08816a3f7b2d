package services

import (
	"parcel-costing-service/internal/domain"
	"slices"
)

// TariffCatalog is the fixed tariff universe minus the codes a
// deployment has switched off.
type TariffCatalog struct {
	disabled map[domain.TariffCode]struct{}
}

func NewTariffCatalog(disabled []domain.TariffCode) TariffCatalog {
	m := make(map[domain.TariffCode]struct{}, len(disabled))
	for _, c := range disabled {
		m[c] = struct{}{}
	}
	return TariffCatalog{disabled: m}
}

// All returns every supported tariff.
func (c TariffCatalog) All() []domain.TariffInfo {
	return slices.Clone(domain.SupportedTariffs)
}

// Allowed returns the supported tariffs that are not disabled.
func (c TariffCatalog) Allowed() []domain.TariffInfo {
	out := make([]domain.TariffInfo, 0, len(domain.SupportedTariffs))
	for _, t := range domain.SupportedTariffs {
		if c.IsAllowed(t.Code) {
			out = append(out, t)
		}
	}
	return out
}

func (c TariffCatalog) IsAllowed(code domain.TariffCode) bool {
	if _, ok := domain.TariffName(code); !ok {
		return false
	}
	_, off := c.disabled[code]
	return !off
}

// Filter keeps the allowed tariffs of a provider response in provider
// order and stamps their catalog names. A code repeated by the provider
// is kept once, at its first position.
func (c TariffCatalog) Filter(tariffs []domain.Tariff) []domain.Tariff {
	seen := make(map[domain.TariffCode]struct{}, len(tariffs))
	out := make([]domain.Tariff, 0, len(tariffs))
	for _, t := range tariffs {
		if !c.IsAllowed(t.Code) {
			continue
		}
		if _, ok := seen[t.Code]; ok {
			continue
		}
		seen[t.Code] = struct{}{}

		t.Name, _ = domain.TariffName(t.Code)
		out = append(out, t)
	}
	return out
}

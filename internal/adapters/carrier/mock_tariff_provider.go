package carrier

import (
	"context"
	"parcel-costing-service/internal/domain"
	"parcel-costing-service/internal/ports"
	"slices"
)

// MockTariffProvider answers every lookup with a fixed tariff list and
// remembers the requests it received.
type MockTariffProvider struct {
	Tariffs  []domain.Tariff
	Err      error
	Requests []ports.CostRequest
}

func NewMockTariffProvider(tariffs []domain.Tariff) *MockTariffProvider {
	return &MockTariffProvider{Tariffs: tariffs}
}

func (p *MockTariffProvider) GetServiceCost(ctx context.Context, req ports.CostRequest) ([]domain.Tariff, error) {
	p.Requests = append(p.Requests, req)
	if p.Err != nil {
		return nil, p.Err
	}
	return slices.Clone(p.Tariffs), nil
}

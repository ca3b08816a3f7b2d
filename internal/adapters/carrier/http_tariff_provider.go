package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"parcel-costing-service/internal/domain"
	"parcel-costing-service/internal/platform/obs"
	"parcel-costing-service/internal/ports"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

type serviceCostRequest struct {
	Pickup        int64           `json:"pickup"`
	Delivery      int64           `json:"delivery"`
	Weight        float64         `json:"weight"`
	Volume        float64         `json:"volume"`
	SelfPickup    bool            `json:"self_pickup"`
	SelfDelivery  bool            `json:"self_delivery"`
	DeclaredValue decimal.Decimal `json:"declared_value"`
}

type serviceCostResponse struct {
	Services []struct {
		ServiceCode string          `json:"service_code"`
		Cost        decimal.Decimal `json:"cost"`
		Currency    string          `json:"currency"`
	} `json:"services"`
}

// HTTPTariffProvider implements TariffCostProvider over a JSON carrier
// gateway. Each lookup is a single request; the client timeout is the
// only deadline besides the caller's context. After repeated failures the
// breaker rejects lookups without contacting the gateway.
type HTTPTariffProvider struct {
	session *http.Client
	breaker *gobreaker.CircuitBreaker
	apiKey  string
	baseURL string
}

func NewHTTPTariffProvider(baseURL, apiKey string, timeout time.Duration) (*HTTPTariffProvider, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("carrier base url is empty")
	}

	return &HTTPTariffProvider{
		session: &http.Client{Timeout: timeout},
		breaker: newBreaker("carrier-service-cost"),
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (p *HTTPTariffProvider) GetServiceCost(
	ctx context.Context,
	req ports.CostRequest,
) (_ []domain.Tariff, err error) {
	defer obs.Time(ctx, "carrier.GetServiceCost")(&err)

	payload, err := json.Marshal(serviceCostRequest{
		Pickup:        req.PickupLocationID,
		Delivery:      req.DeliveryLocationID,
		Weight:        req.Weight,
		Volume:        req.Volume,
		SelfPickup:    req.SelfPickup,
		SelfDelivery:  req.SelfDelivery,
		DeclaredValue: req.DeclaredValue,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal service cost request: %w", err)
	}

	httpReq, err := p.newRequest(ctx, http.MethodPost, p.baseURL+"/v1/service-cost", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	out, err := p.breaker.Execute(func() (interface{}, error) {
		return p.do(httpReq)
	})
	if err != nil {
		return nil, &domain.ProviderError{Err: fmt.Errorf("service cost request: %w", err)}
	}
	resp := out.(*http.Response)
	defer resp.Body.Close()

	var decoded serviceCostResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.ProviderError{Err: fmt.Errorf("decode service cost response: %w", err)}
	}

	tariffs := make([]domain.Tariff, 0, len(decoded.Services))
	for _, s := range decoded.Services {
		tariffs = append(tariffs, domain.Tariff{
			Code:     domain.TariffCode(strings.ToUpper(strings.TrimSpace(s.ServiceCode))),
			Cost:     s.Cost,
			Currency: strings.ToUpper(s.Currency),
		})
	}

	return tariffs, nil
}

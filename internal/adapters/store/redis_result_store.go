package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"parcel-costing-service/internal/domain"
	"parcel-costing-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const DefaultResultKey = "parcel-costing:last-result"

type storedResult struct {
	TariffCode         string          `json:"tariff_code"`
	TariffName         string          `json:"tariff_name"`
	Cost               decimal.Decimal `json:"cost"`
	Currency           string          `json:"currency"`
	CommissionApplied  decimal.Decimal `json:"commission_applied"`
	CommissionCurrency string          `json:"commission_currency"`
}

// RedisResultStore shares the last calculation between service replicas.
// A zero TTL keeps the entry until it is overwritten.
type RedisResultStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisResultStore(client *redis.Client, key string, ttl time.Duration) *RedisResultStore {
	if key == "" {
		key = DefaultResultKey
	}
	return &RedisResultStore{client: client, key: key, ttl: ttl}
}

func (s *RedisResultStore) Save(ctx context.Context, result domain.CalculationResult) (err error) {
	defer obs.Time(ctx, "store.redis.Save")(&err)

	payload, err := json.Marshal(storedResult{
		TariffCode:         string(result.TariffCode),
		TariffName:         result.TariffName,
		Cost:               result.Cost,
		Currency:           result.Currency,
		CommissionApplied:  result.CommissionApplied,
		CommissionCurrency: result.CommissionCurrency,
	})
	if err != nil {
		return fmt.Errorf("save last result: marshal: %w", err)
	}

	if err := s.client.Set(ctx, s.key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save last result: redis set %q: %w", s.key, err)
	}
	return nil
}

func (s *RedisResultStore) Last(ctx context.Context) (domain.CalculationResult, bool, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.CalculationResult{}, false, nil
	}
	if err != nil {
		return domain.CalculationResult{}, false, fmt.Errorf("load last result: redis get %q: %w", s.key, err)
	}

	var r storedResult
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.CalculationResult{}, false, fmt.Errorf("load last result: unmarshal: %w", err)
	}

	return domain.CalculationResult{
		TariffCode:         domain.TariffCode(r.TariffCode),
		TariffName:         r.TariffName,
		Cost:               r.Cost,
		Currency:           r.Currency,
		CommissionApplied:  r.CommissionApplied,
		CommissionCurrency: r.CommissionCurrency,
	}, true, nil
}

package adapters

import (
	"context"

	"inrwatch/internal/domain"
)

type RateClient interface {
	GetExchangeRates(ctx context.Context, base string) (map[string]float64, error)
}

type ObservationRepository interface {
	Insert(ctx context.Context, date string, rate float64) (int64, error)
	GetLatest(ctx context.Context) (*domain.RateObservation, error)
	GetAll(ctx context.Context) ([]domain.RateObservation, error)
	Count(ctx context.Context) (int64, error)
}

type Journal interface {
	Append(msg string) error
	Tail(n int) ([]string, error)
}

type LatestCache interface {
	Get() (*domain.RateObservation, bool)
	Set(obs *domain.RateObservation)
}

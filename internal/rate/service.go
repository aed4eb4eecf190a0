package rate

import (
	"context"

	"inrwatch/internal/adapters"
	"inrwatch/internal/domain"
)

type Service struct {
	repo  adapters.ObservationRepository
	cache adapters.LatestCache
}

// Latest returns the observation with the highest id. The cached copy is
// served when present; the ingestion job refreshes it after every insert.
func (s *Service) Latest(ctx context.Context) (*domain.RateObservation, error) {
	if obs, ok := s.cache.Get(); ok {
		return obs, nil
	}

	obs, err := s.repo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(obs)
	return obs, nil
}

func (s *Service) History(ctx context.Context) ([]domain.RateObservation, error) {
	return s.repo.GetAll(ctx)
}

func NewService(repo adapters.ObservationRepository, cache adapters.LatestCache) *Service {
	return &Service{repo: repo, cache: cache}
}

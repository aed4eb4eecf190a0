package rate

import (
	"context"
	"errors"
	"testing"

	"inrwatch/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Latest_CacheHitSkipsStore(t *testing.T) {
	repo := new(MockObservationRepository)
	cache := new(MockLatestCache)
	s := NewService(repo, cache)

	cached := &domain.RateObservation{ID: 3, Date: "2024-01-15", Rate: 83.12}
	cache.On("Get").Return(cached, true).Once()

	got, err := s.Latest(context.Background())
	require.NoError(t, err)
	require.Equal(t, cached, got)

	repo.AssertNotCalled(t, "GetLatest", mock.Anything)
}

func TestService_Latest_CacheMissReadsStoreAndFillsCache(t *testing.T) {
	repo := new(MockObservationRepository)
	cache := new(MockLatestCache)
	s := NewService(repo, cache)

	stored := &domain.RateObservation{ID: 9, Date: "2024-01-16", Rate: 83.20}
	cache.On("Get").Return(nil, false).Once()
	repo.On("GetLatest", mock.Anything).Return(stored, nil).Once()
	cache.On("Set", stored).Once()

	got, err := s.Latest(context.Background())
	require.NoError(t, err)
	require.Equal(t, stored, got)

	cache.AssertExpectations(t)
}

func TestService_Latest_EmptyStorePassesSentinelThrough(t *testing.T) {
	repo := new(MockObservationRepository)
	cache := new(MockLatestCache)
	s := NewService(repo, cache)

	cache.On("Get").Return(nil, false).Once()
	repo.On("GetLatest", mock.Anything).Return(nil, domain.ErrNoObservations).Once()

	_, err := s.Latest(context.Background())
	require.ErrorIs(t, err, domain.ErrNoObservations)

	cache.AssertNotCalled(t, "Set", mock.Anything)
}

func TestService_History_DelegatesToRepo(t *testing.T) {
	repo := new(MockObservationRepository)
	cache := new(MockLatestCache)
	s := NewService(repo, cache)

	history := []domain.RateObservation{
		{ID: 2, Date: "2024-01-16", Rate: 83.20},
		{ID: 1, Date: "2024-01-15", Rate: 83.12},
	}
	repo.On("GetAll", mock.Anything).Return(history, nil).Once()

	got, err := s.History(context.Background())
	require.NoError(t, err)
	require.Equal(t, history, got)
}

func TestService_History_PropagatesStorageError(t *testing.T) {
	repo := new(MockObservationRepository)
	cache := new(MockLatestCache)
	s := NewService(repo, cache)

	repo.On("GetAll", mock.Anything).Return(nil, errors.New("connection reset")).Once()

	_, err := s.History(context.Background())
	require.Error(t, err)
}

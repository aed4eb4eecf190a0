package postgres

import (
	"context"
	"errors"
	"fmt"

	"inrwatch/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ObservationRepository struct {
	pool *pgxpool.Pool
}

func (r *ObservationRepository) Insert(ctx context.Context, date string, rate float64) (int64, error) {
	const q = `insert into exchange_rates(date, rate) values ($1, $2) returning id;`

	var id int64
	if err := r.pool.QueryRow(ctx, q, date, rate).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert observation for date %q: %w", date, err)
	}
	return id, nil
}

func (r *ObservationRepository) GetLatest(ctx context.Context) (*domain.RateObservation, error) {
	const q = `select id, date, rate from exchange_rates order by id desc limit 1;`

	var obs domain.RateObservation
	if err := r.pool.QueryRow(ctx, q).Scan(&obs.ID, &obs.Date, &obs.Rate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoObservations
		}
		return nil, fmt.Errorf("failed to select latest observation: %w", err)
	}
	return &obs, nil
}

// GetAll returns the full history ordered by calendar date descending.
// Same-date rows have no defined relative order.
func (r *ObservationRepository) GetAll(ctx context.Context) ([]domain.RateObservation, error) {
	const q = `select id, date, rate from exchange_rates order by date desc;`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to select observations: %w", err)
	}
	defer rows.Close()

	var observations []domain.RateObservation
	for rows.Next() {
		var obs domain.RateObservation
		if err = rows.Scan(&obs.ID, &obs.Date, &obs.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		observations = append(observations, obs)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read observations: %w", err)
	}
	return observations, nil
}

func (r *ObservationRepository) Count(ctx context.Context) (int64, error) {
	const q = `select count(*) from exchange_rates;`

	var n int64
	if err := r.pool.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count observations: %w", err)
	}
	return n, nil
}

func NewObservationRepository(pool *pgxpool.Pool) *ObservationRepository {
	return &ObservationRepository{pool: pool}
}

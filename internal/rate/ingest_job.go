package rate

import (
	"context"
	"fmt"
	"time"

	"inrwatch/internal/adapters"
	"inrwatch/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	baseCurrency  = "USD"
	quoteCurrency = "INR"
)

// IngestOnce produces exactly one new observation: fetch the current rates for
// the base currency, extract the INR value and append it to the store tagged
// with today's UTC date. Every outcome is journaled; the returned error is for
// the caller's log only and must never crash the process.
func IngestOnce(ctx context.Context, execID string, client adapters.RateClient, repo adapters.ObservationRepository, journal adapters.Journal, cache adapters.LatestCache) error {
	// STEP 1: single fetch, no retry. A failed attempt is picked up by the
	// next scheduled firing.
	ratesMap, err := client.GetExchangeRates(ctx, baseCurrency)
	if err != nil {
		journalEvent(journal, fmt.Sprintf("rate fetch failed: %v", err))
		return fmt.Errorf("failed to fetch rates: %w", err)
	}

	value, ok := ratesMap[quoteCurrency]
	if !ok {
		journalEvent(journal, fmt.Sprintf("rate fetch failed: response has no %s rate", quoteCurrency))
		return fmt.Errorf("response has no %s rate", quoteCurrency)
	}

	// STEP 2: append the observation. The store assigns the id.
	date := time.Now().UTC().Format("2006-01-02")
	id, err := repo.Insert(ctx, date, value)
	if err != nil {
		journalEvent(journal, fmt.Sprintf("rate insert failed: %v", err))
		return fmt.Errorf("failed to insert observation: %w", err)
	}

	// STEP 3: refresh the latest-observation cache so reads see the new row
	// without hitting the store.
	cache.Set(&domain.RateObservation{ID: id, Date: date, Rate: value})

	journalEvent(journal, fmt.Sprintf("rate fetched successfully: 1 USD = %g INR", value))
	logrus.Infof("Observation %d stored for %s; execID: %s", id, date, execID)
	return nil
}

// journalEvent appends best-effort: a broken journal must not turn a
// recoverable ingestion outcome into a crash.
func journalEvent(journal adapters.Journal, msg string) {
	if err := journal.Append(msg); err != nil {
		logrus.WithError(err).Warn("Failed to append journal entry")
	}
}

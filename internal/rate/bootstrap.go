package rate

import (
	"context"
	"fmt"

	"inrwatch/internal/adapters"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BootstrapIfEmpty seeds one observation when the store starts out empty, so
// the read API has history before the first scheduled firing. A store that
// already holds rows suppresses the seed entirely: a restart never produces a
// second bootstrap insert. A failed seed is logged and journaled but not
// fatal, the next scheduled firing tries again.
func BootstrapIfEmpty(ctx context.Context, repo adapters.ObservationRepository, client adapters.RateClient, journal adapters.Journal, cache adapters.LatestCache) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count stored observations: %w", err)
	}
	if count > 0 {
		return nil
	}

	execID := "bootstrap-" + uuid.NewString()
	if ingErr := IngestOnce(ctx, execID, client, repo, journal, cache); ingErr != nil {
		logrus.Errorf("Bootstrap ingestion %s failed: %v", execID, ingErr)
		return nil
	}
	logrus.Info("✅ Bootstrap observation stored")
	return nil
}

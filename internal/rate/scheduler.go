package rate

import (
	"context"
	"sync"

	"inrwatch/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Scheduler fires the ingestion job once a day at local midnight. A firing
// missed while the process is down is simply skipped, no catch-up.
type Scheduler struct {
	repo    adapters.ObservationRepository
	client  adapters.RateClient
	journal adapters.Journal
	cache   adapters.LatestCache
	// -----
	mu    sync.Mutex // guards sched: ctx-cancel goroutine and app defer both shut down
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if ingErr := IngestOnce(jobCtx, execID, s.client, s.repo, s.journal, s.cache); ingErr != nil {
			logrus.Errorf("Ingestion job %s failed: %v", execID, ingErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(repo adapters.ObservationRepository, client adapters.RateClient, journal adapters.Journal, cache adapters.LatestCache) *Scheduler {
	return &Scheduler{repo: repo, client: client, journal: journal, cache: cache}
}

package rates

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Scheduler periodically refreshes the rate cache so user requests rarely
// wait on the network. Failed refreshes leave the cache untouched.
type Scheduler struct {
	provider *Provider
	interval time.Duration
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if _, refreshErr := s.provider.Refresh(jobCtx); refreshErr != nil {
			logrus.Warnf("Rate refresh job %s failed, cache left as is: %v", execID, refreshErr)
			return
		}
		logrus.Infof("Rate refresh job %s stored a fresh table", execID)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
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
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(provider *Provider, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 300 * time.Second
	}
	return &Scheduler{provider: provider, interval: interval}
}

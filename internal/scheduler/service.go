package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"postpilot/internal/config"
)

// Service owns the cron runner that drives the publish and analytics
// cycles on their configured specs, in the canonical timezone.
type Service struct {
	cron    *cron.Cron
	scanner *Scanner
	poller  *Poller
	cfg     config.SchedulerConfig
	log     zerolog.Logger
}

// Location resolves the canonical scheduler timezone. Due checks and
// cron firing both use this location so a post never fires early or
// late across DST boundaries.
func Location(cfg *config.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler timezone %q: %w", cfg.Scheduler.Timezone, err)
	}
	return loc, nil
}

func NewService(cfg *config.Config, loc *time.Location, scanner *Scanner, poller *Poller, log zerolog.Logger) *Service {
	return &Service{
		cron:    cron.New(cron.WithLocation(loc)),
		scanner: scanner,
		poller:  poller,
		cfg:     cfg.Scheduler,
		log:     log.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers both cycles and starts the cron runner.
func (s *Service) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.PublishSpec, func() {
		s.scanner.RunCycle(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid publish cron spec %q: %w", s.cfg.PublishSpec, err)
	}
	if _, err := s.cron.AddFunc(s.cfg.AnalyticsSpec, func() {
		s.poller.RunCycle(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid analytics cron spec %q: %w", s.cfg.AnalyticsSpec, err)
	}

	s.cron.Start()
	s.log.Info().
		Str("publish_spec", s.cfg.PublishSpec).
		Str("analytics_spec", s.cfg.AnalyticsSpec).
		Str("timezone", s.cfg.Timezone).
		Msg("scheduler started")
	return nil
}

// Stop halts the trigger and waits for in-flight cycles to drain, or
// for the context to expire.
func (s *Service) Stop(ctx context.Context) error {
	drained := s.cron.Stop()
	select {
	case <-drained.Done():
		s.log.Info().Msg("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"postpilot/internal/runlock"
)

// Scanner runs one publish cycle per trigger: find posts whose scheduled
// time has passed and hand each to the coordinator under a bounded
// worker fan-out.
type Scanner struct {
	posts       PostStore
	coordinator *Coordinator
	lock        *runlock.RunLock
	workers     int
	maxWait     time.Duration
	loc         *time.Location
	log         zerolog.Logger

	inFlight atomic.Bool
}

func NewScanner(posts PostStore, coordinator *Coordinator, lock *runlock.RunLock, workers int, maxWait time.Duration, loc *time.Location, log zerolog.Logger) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		posts:       posts,
		coordinator: coordinator,
		lock:        lock,
		workers:     workers,
		maxWait:     maxWait,
		loc:         loc,
		log:         log.With().Str("component", "scanner").Logger(),
	}
}

// RunCycle executes one due-post scan. A trigger that fires while the
// previous scan is still in flight is skipped outright; contention with
// the analytics poll waits for the shared run lock up to maxWait.
func (s *Scanner) RunCycle(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Info().Msg("previous publish cycle still running, skipping trigger")
		return
	}
	defer s.inFlight.Store(false)

	if !s.lock.AcquireWithin(ctx, s.maxWait) {
		s.log.Error().Dur("max_wait", s.maxWait).Msg("run lock not acquired within bound, skipping cycle")
		return
	}
	defer s.lock.Release()

	now := time.Now().In(s.loc)
	posts, err := s.posts.DuePosts(ctx, now)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to scan due posts")
		return
	}
	if len(posts) == 0 {
		return
	}
	s.log.Info().Int("count", len(posts)).Time("now", now).Msg("processing due posts")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, post := range posts {
		post := post
		g.Go(func() error {
			// One post failing must not abort the cycle, so errors are
			// logged here rather than returned into the group.
			if err := s.coordinator.ProcessPost(gctx, post); err != nil {
				s.log.Error().Err(err).Str("post_id", post.ID.Hex()).Msg("post processing failed")
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Package runlock provides the exclusive lock serializing the publish
// scan and the analytics poll. Both jobs drive the same rate-limited
// platform clients, and the poll reads post fields the scan writes.
package runlock

import (
	"context"
	"time"
)

// RunLock is a single-token semaphore. A job re-firing while its previous
// cycle is still in flight uses TryAcquire and skips outright; cross-job
// ordering uses AcquireWithin with a bounded wait instead of blocking
// indefinitely.
type RunLock struct {
	ch chan struct{}
}

func New() *RunLock {
	l := &RunLock{ch: make(chan struct{}, 1)}
	l.ch <- struct{}{}
	return l
}

// TryAcquire takes the token without waiting.
func (l *RunLock) TryAcquire() bool {
	select {
	case <-l.ch:
		return true
	default:
		return false
	}
}

// AcquireWithin waits up to maxWait for the token. Returns false when the
// deadline or the context expires first; callers must treat that as a
// skipped cycle and surface it.
func (l *RunLock) AcquireWithin(ctx context.Context, maxWait time.Duration) bool {
	timer := time.NewTimer(maxWait)
	defer timer.Stop()

	select {
	case <-l.ch:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

// Release returns the token. Never blocks, so a double release cannot
// deadlock the scheduler.
func (l *RunLock) Release() {
	select {
	case l.ch <- struct{}{}:
	default:
	}
}

// Package notif delivers publish-outcome notifications to post owners.
// Core components depend on the common.Notifier interface; this package
// is the in-process implementation behind it.
package notif

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"postpilot/internal/common"
)

// NotificationManager fans events out to registered observers through a
// buffered channel drained by a worker pool.
type NotificationManager struct {
	observers    map[string]common.Observer
	eventChannel chan common.NotificationEvent
	ctx          context.Context
	cancel       context.CancelFunc
	log          zerolog.Logger
	mu           sync.RWMutex
	wg           sync.WaitGroup
	closeOnce    sync.Once
}

func NewNotificationManager(workerPoolSize int, log zerolog.Logger) *NotificationManager {
	if workerPoolSize <= 0 {
		workerPoolSize = 2
	}
	ctx, cancel := context.WithCancel(context.Background())

	nm := &NotificationManager{
		observers:    make(map[string]common.Observer),
		eventChannel: make(chan common.NotificationEvent, 1000),
		ctx:          ctx,
		cancel:       cancel,
		log:          log.With().Str("component", "notif").Logger(),
	}

	for i := 0; i < workerPoolSize; i++ {
		nm.wg.Add(1)
		go nm.processEvents()
	}

	return nm
}

func (nm *NotificationManager) Subscribe(observer common.Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	nm.observers[observer.Name()] = observer
	nm.log.Debug().Str("observer", observer.Name()).Msg("observer subscribed")
}

func (nm *NotificationManager) Unsubscribe(observer common.Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	delete(nm.observers, observer.Name())
	nm.log.Debug().Str("observer", observer.Name()).Msg("observer unsubscribed")
}

// Notify delivers the event to every observer synchronously. Observer
// failures are logged and do not affect the other observers.
func (nm *NotificationManager) Notify(event common.NotificationEvent) {
	nm.mu.RLock()
	observers := make([]common.Observer, 0, len(nm.observers))
	for _, obs := range nm.observers {
		observers = append(observers, obs)
	}
	nm.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			nm.log.Warn().Err(err).Str("observer", observer.Name()).Msg("observer update failed")
		}
	}
}

// NotifyAsync queues the event for the worker pool. A full channel drops
// the event rather than blocking the publish path.
func (nm *NotificationManager) NotifyAsync(event common.NotificationEvent) {
	select {
	case nm.eventChannel <- event:
	case <-nm.ctx.Done():
	default:
		nm.log.Warn().Str("type", string(event.Type)).Msg("notification channel full, dropping event")
	}
}

func (nm *NotificationManager) processEvents() {
	defer nm.wg.Done()

	for {
		select {
		case event, ok := <-nm.eventChannel:
			if !ok {
				return
			}
			nm.Notify(event)
		case <-nm.ctx.Done():
			return
		}
	}
}

// Shutdown stops the worker pool. The event channel is never closed so
// a NotifyAsync racing the shutdown drops its event instead of sending
// on a closed channel; workers exit via the context.
func (nm *NotificationManager) Shutdown() {
	nm.closeOnce.Do(func() {
		nm.cancel()
	})
	nm.wg.Wait()
	nm.log.Info().Msg("notification manager shutdown complete")
}

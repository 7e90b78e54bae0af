package notif

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"postpilot/internal/common"
	"postpilot/internal/dbmongo"
)

// EventStore persists emitted notification events so clients can fetch
// them later; the push channel itself is fire-and-forget.
type EventStore interface {
	SaveEvent(ctx context.Context, doc *dbmongo.NotificationEventDoc) error
}

type StoreObserver struct {
	store EventStore
}

func NewStoreObserver(store EventStore) *StoreObserver {
	return &StoreObserver{store: store}
}

func (s *StoreObserver) Name() string {
	return "store_observer"
}

func (s *StoreObserver) Update(event common.NotificationEvent) error {
	doc := &dbmongo.NotificationEventDoc{
		EventID:    event.ID,
		ReceiverID: event.ReceiverID,
		Type:       string(event.Type),
		Message:    event.Message,
		Platform:   event.Platform.String(),
		PostID:     event.PostID,
		CreatedAt:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.store.SaveEvent(ctx, doc); err != nil {
		return fmt.Errorf("failed to store notification event: %w", err)
	}
	return nil
}

// LogObserver mirrors every event into the structured log.
type LogObserver struct {
	log zerolog.Logger
}

func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log.With().Str("component", "notif").Logger()}
}

func (l *LogObserver) Name() string {
	return "log_observer"
}

func (l *LogObserver) Update(event common.NotificationEvent) error {
	l.log.Info().
		Str("receiver_id", event.ReceiverID).
		Str("type", string(event.Type)).
		Str("platform", event.Platform.String()).
		Str("post_id", event.PostID).
		Msg(event.Message)
	return nil
}

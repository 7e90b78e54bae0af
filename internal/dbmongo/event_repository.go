package dbmongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type EventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(mc *MongoClient) *EventRepository {
	return &EventRepository{collection: mc.Database.Collection(CollectionEvents)}
}

func (r *EventRepository) SaveEvent(ctx context.Context, doc *NotificationEventDoc) error {
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to save notification event: %w", err)
	}
	return nil
}

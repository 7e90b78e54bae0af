package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"postpilot/internal/common"
)

type AnalyticsRepository struct {
	collection *mongo.Collection
}

func NewAnalyticsRepository(mc *MongoClient) *AnalyticsRepository {
	return &AnalyticsRepository{collection: mc.Database.Collection(CollectionAnalytics)}
}

// CreateShell inserts the zero-valued record for a freshly published
// (post, platform) pair. The upsert keyed on (postId, platform) makes a
// repeated call after a partial failure a no-op instead of a duplicate.
func (r *AnalyticsRepository) CreateShell(ctx context.Context, rec *AnalyticsRecord) error {
	filter := bson.M{"postId": rec.PostID, "platform": rec.Platform}
	update := bson.M{"$setOnInsert": bson.M{
		"postId":                 rec.PostID,
		"socialMediaId":          rec.AccountID,
		"userId":                 rec.UserID,
		"platform":               rec.Platform,
		"platformSpecificPostId": rec.ExternalPostID,
		"like":                   int64(0),
		"comment":                int64(0),
		"share":                  int64(0),
		"impressions":            int64(0),
		"engagements":            int64(0),
		"createdAt":              time.Now(),
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to create analytics shell: %w", err)
	}
	return nil
}

// UpsertMetrics writes the latest counters for a (post, platform) pair.
// Repeated poll cycles update the same record in place.
func (r *AnalyticsRepository) UpsertMetrics(ctx context.Context, postID primitive.ObjectID, platform common.Platform, item common.ActivityItem) error {
	filter := bson.M{"postId": postID, "platform": platform}
	update := bson.M{
		"$set": bson.M{
			"like":        item.Likes,
			"comment":     item.Comments,
			"share":       item.Shares,
			"impressions": item.Impressions,
			"engagements": item.TotalEngagements(),
			"updatedAt":   time.Now(),
		},
		"$setOnInsert": bson.M{
			"platformSpecificPostId": item.ExternalID,
			"createdAt":              time.Now(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert analytics metrics: %w", err)
	}
	return nil
}

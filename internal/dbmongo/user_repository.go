package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"postpilot/internal/common"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(mc *MongoClient) *UserRepository {
	return &UserRepository{collection: mc.Database.Collection(CollectionUsers)}
}

// UpdateProfileSnapshot writes the latest account-level metrics block
// onto the owning user document.
func (r *UserRepository) UpdateProfileSnapshot(ctx context.Context, userID primitive.ObjectID, platform common.Platform, snap *ProfileSnapshot) error {
	snap.FetchedAt = time.Now()
	update := bson.M{"$set": bson.M{
		fmt.Sprintf("profiles.%s", platform): snap,
	}}
	if _, err := r.collection.UpdateByID(ctx, userID, update); err != nil {
		return fmt.Errorf("failed to update profile snapshot: %w", err)
	}
	return nil
}

package dbmongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAccountNotFound is returned when a post references a social account
// that no longer exists.
var ErrAccountNotFound = errors.New("social account not found")

type AccountRepository struct {
	collection *mongo.Collection
}

func NewAccountRepository(mc *MongoClient) *AccountRepository {
	return &AccountRepository{collection: mc.Database.Collection(CollectionAccounts)}
}

func (r *AccountRepository) ByID(ctx context.Context, id primitive.ObjectID) (*SocialAccount, error) {
	var account SocialAccount
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load social account: %w", err)
	}
	return &account, nil
}

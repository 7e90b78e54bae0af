// Package dbmongo holds the content store: connection handling, document
// models and repositories for posts, social accounts, users and analytics.
package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"postpilot/internal/config"
)

const (
	CollectionPosts     = "posts"
	CollectionAccounts  = "social_accounts"
	CollectionUsers     = "users"
	CollectionAnalytics = "analytics"
	CollectionEvents    = "notification_events"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoConnection(c *config.Config) (*MongoClient, error) {
	uri := c.GetMongoURI()
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(c.MongoDB.Database)

	return &MongoClient{
		Client:   client,
		Database: database,
	}, nil
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the publish and analytics paths rely
// on: the due-post scan and the one-record-per-(post, platform) guard.
func (mc *MongoClient) EnsureIndexes(ctx context.Context) error {
	posts := mc.Database.Collection(CollectionPosts)
	_, err := posts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "scheduledTime", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create posts index: %w", err)
	}

	analytics := mc.Database.Collection(CollectionAnalytics)
	_, err = analytics.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "postId", Value: 1}, {Key: "platform", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create analytics index: %w", err)
	}
	return nil
}

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

type PostRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(mc *MongoClient) *PostRepository {
	return &PostRepository{collection: mc.Database.Collection(CollectionPosts)}
}

func platformField(platform common.Platform, field string) string {
	return fmt.Sprintf("platformSpecific.%s.%s", platform, field)
}

// DuePosts selects every post that is still scheduled and whose
// scheduled time is at or before now.
func (r *PostRepository) DuePosts(ctx context.Context, now time.Time) ([]*Post, error) {
	filter := bson.M{
		"status":        common.StatusScheduled,
		"scheduledTime": bson.M{"$lte": now},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query due posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode due posts: %w", err)
	}
	return posts, nil
}

// PostedWithExternalID selects posted items that carry a platform post id
// for the given platform, i.e. the set the analytics poll reconciles.
func (r *PostRepository) PostedWithExternalID(ctx context.Context, platform common.Platform) ([]*Post, error) {
	filter := bson.M{
		"status":                           common.StatusPosted,
		platformField(platform, "postId"): bson.M{"$exists": true, "$ne": ""},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query posted posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posted posts: %w", err)
	}
	return posts, nil
}

// SetExternalID records the platform-assigned post id. This is the first
// half of the two-phase publish persist: once the id is stored, the
// scanner will not publish this (post, platform) pair again even if the
// status flip below fails.
func (r *PostRepository) SetExternalID(ctx context.Context, postID primitive.ObjectID, platform common.Platform, externalID string) error {
	update := bson.M{"$set": bson.M{
		platformField(platform, "postId"): externalID,
		"updatedAt":                       time.Now(),
	}}
	res, err := r.collection.UpdateByID(ctx, postID, update)
	if err != nil {
		return fmt.Errorf("failed to set external id: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("post %s not found", postID.Hex())
	}
	return nil
}

// MarkPosted completes the publish persist: durable media URLs replace
// the local paths and the status advances to posted.
func (r *PostRepository) MarkPosted(ctx context.Context, postID primitive.ObjectID, platform common.Platform, mediaURLs []string, modifiedBy string) error {
	set := bson.M{
		"status":         common.StatusPosted,
		"lastModifiedBy": modifiedBy,
		"updatedAt":      time.Now(),
	}
	if mediaURLs != nil {
		set[platformField(platform, "mediaUrls")] = mediaURLs
	}
	res, err := r.collection.UpdateByID(ctx, postID, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to mark post posted: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("post %s not found", postID.Hex())
	}
	return nil
}

// failFlipFilter matches the post only while its status can still
// advance to failed. A post another platform already published stays
// posted, so the analytics poll keeps selecting it.
func failFlipFilter(postID primitive.ObjectID) bson.M {
	return bson.M{
		"_id":    postID,
		"status": bson.M{"$in": []common.PostStatus{common.StatusDraft, common.StatusScheduled}},
	}
}

// MarkFailed records a permanent rejection. The error text always lands
// on the platform sub-document; the status flip to failed is conditional
// on the post not having advanced to posted already.
func (r *PostRepository) MarkFailed(ctx context.Context, postID primitive.ObjectID, platform common.Platform, errText string) error {
	record := bson.M{"$set": bson.M{
		platformField(platform, "error"): errText,
		"updatedAt":                      time.Now(),
	}}
	if _, err := r.collection.UpdateByID(ctx, postID, record); err != nil {
		return fmt.Errorf("failed to record rejection: %w", err)
	}

	flip := bson.M{"$set": bson.M{
		"status":    common.StatusFailed,
		"error":     errText,
		"updatedAt": time.Now(),
	}}
	if _, err := r.collection.UpdateOne(ctx, failFlipFilter(postID), flip); err != nil {
		return fmt.Errorf("failed to mark post failed: %w", err)
	}
	return nil
}

// RecordError stores the error text on the platform sub-document without
// advancing the status, so the next cycle retries.
func (r *PostRepository) RecordError(ctx context.Context, postID primitive.ObjectID, platform common.Platform, errText string) error {
	update := bson.M{"$set": bson.M{
		platformField(platform, "error"): errText,
		"updatedAt":                      time.Now(),
	}}
	if _, err := r.collection.UpdateByID(ctx, postID, update); err != nil {
		return fmt.Errorf("failed to record post error: %w", err)
	}
	return nil
}

// CountActiveMediaRefs counts non-terminal-success posts that still
// reference a staged media path on any platform. The reclaim step deletes
// the local file only when this reaches zero.
func (r *PostRepository) CountActiveMediaRefs(ctx context.Context, localPath string) (int64, error) {
	or := make([]bson.M, 0, len(common.Platforms))
	for _, p := range common.Platforms {
		or = append(or, bson.M{platformField(p, "mediaUrls"): localPath})
	}
	filter := bson.M{
		"status": bson.M{"$in": []common.PostStatus{common.StatusDraft, common.StatusScheduled, common.StatusFailed}},
		"$or":    or,
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count media references: %w", err)
	}
	return count, nil
}

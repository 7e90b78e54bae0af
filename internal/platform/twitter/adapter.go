// Package twitter implements the publish and metrics capabilities for the
// X/Twitter-like platform.
package twitter

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"postpilot/internal/common"
	"postpilot/internal/dbmongo"
)

// MediaPipeline is the slice of the media pipeline the adapter needs:
// durable staging plus raw bytes for the platform-native upload.
type MediaPipeline interface {
	Stage(ctx context.Context, mediaPath string) (string, error)
	ReadFile(mediaPath string) ([]byte, error)
}

type Adapter struct {
	client   *Client
	pipeline MediaPipeline
	log      zerolog.Logger
}

func NewAdapter(client *Client, pipeline MediaPipeline, log zerolog.Logger) *Adapter {
	return &Adapter{
		client:   client,
		pipeline: pipeline,
		log:      log.With().Str("adapter", common.PlatformTwitter.String()).Logger(),
	}
}

func (a *Adapter) Platform() common.Platform {
	return common.PlatformTwitter
}

// Publish uploads each staged media file (durable storage first, then the
// platform ingestion endpoint), composes the final text and creates the
// tweet. A configured first comment becomes a threaded reply; its failure
// does not invalidate the primary publish. Media identifiers are fully
// captured before the caller persists the posted status.
func (a *Adapter) Publish(ctx context.Context, post *dbmongo.Post, sub *dbmongo.PlatformContent, account *dbmongo.SocialAccount) (*common.PublishResult, error) {
	var mediaIDs []string
	var durableURLs []string

	for _, mediaPath := range sub.MediaPaths {
		durable, err := a.pipeline.Stage(ctx, mediaPath)
		if err != nil {
			return nil, common.NewMediaError(common.PlatformTwitter, err)
		}

		data, err := a.pipeline.ReadFile(mediaPath)
		if err != nil {
			return nil, common.NewMediaError(common.PlatformTwitter, err)
		}

		mediaID, err := a.client.UploadMedia(ctx, account, data, common.DetectMimeType(mediaPath))
		if err != nil {
			return nil, err
		}

		durableURLs = append(durableURLs, durable)
		mediaIDs = append(mediaIDs, mediaID)
	}

	text := ComposeText(sub.BaseText(), sub.Hashtags, sub.Mentions)

	tweetID, err := a.client.CreateTweet(ctx, account, text, mediaIDs, "")
	if err != nil {
		return nil, err
	}

	if sub.FirstComment != "" {
		if _, err := a.client.CreateTweet(ctx, account, sub.FirstComment, nil, tweetID); err != nil {
			a.log.Warn().Err(err).Str("tweet_id", tweetID).Msg("first comment reply failed")
		}
	}

	return &common.PublishResult{ExternalID: tweetID, MediaURLs: durableURLs}, nil
}

// ComposeText appends the hashtag and mention lists to the base text.
func ComposeText(base string, hashtags, mentions []string) string {
	parts := []string{base}
	for _, tag := range hashtags {
		parts = append(parts, "#"+tag)
	}
	for _, mention := range mentions {
		parts = append(parts, "@"+mention)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// FetchAccountMetrics returns the account-level profile snapshot.
func (a *Adapter) FetchAccountMetrics(ctx context.Context, account *dbmongo.SocialAccount) (*common.AccountMetrics, error) {
	return a.client.UserMetrics(ctx, account)
}

// FetchRecentItems returns one bounded page of recent tweets with
// engagement counters.
func (a *Adapter) FetchRecentItems(ctx context.Context, account *dbmongo.SocialAccount, limit int) ([]common.ActivityItem, error) {
	return a.client.UserTimeline(ctx, account, limit)
}

// Package linkedin implements the publish capability for the
// LinkedIn-like platform. LinkedIn exposes no per-post engagement
// endpoint compatible with the analytics poll, so the adapter carries
// only the Publisher capability.
package linkedin

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"postpilot/internal/common"
	"postpilot/internal/dbmongo"
)

// MediaPipeline is the slice of the media pipeline the adapter needs.
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
		log:      log.With().Str("adapter", common.PlatformLinkedin.String()).Logger(),
	}
}

func (a *Adapter) Platform() common.Platform {
	return common.PlatformLinkedin
}

// Publish resolves the member identity, runs the single-media two-step
// upload when media is configured, and creates the UGC share. All upload
// identifiers are captured before the caller persists the posted status.
func (a *Adapter) Publish(ctx context.Context, post *dbmongo.Post, sub *dbmongo.PlatformContent, account *dbmongo.SocialAccount) (*common.PublishResult, error) {
	personID, err := a.client.UserInfo(ctx, account)
	if err != nil {
		return nil, err
	}
	authorURN := fmt.Sprintf("urn:li:person:%s", personID)

	mediaCategory := "NONE"
	assetURN := ""
	var durableURLs []string

	// LinkedIn shares carry at most one media item; extra paths are ignored.
	if len(sub.MediaPaths) > 0 {
		mediaPath := sub.MediaPaths[0]

		durable, err := a.pipeline.Stage(ctx, mediaPath)
		if err != nil {
			return nil, common.NewMediaError(common.PlatformLinkedin, err)
		}

		category := common.DetectFileType(mediaPath)
		asset, uploadURL, err := a.client.RegisterUpload(ctx, account, authorURN, category)
		if err != nil {
			return nil, err
		}

		data, err := a.pipeline.ReadFile(mediaPath)
		if err != nil {
			return nil, common.NewMediaError(common.PlatformLinkedin, err)
		}
		if err := a.client.UploadAsset(ctx, account, uploadURL, data); err != nil {
			return nil, err
		}

		assetURN = asset
		durableURLs = append(durableURLs, durable)
		if category == common.MediaFileTypeVideo {
			mediaCategory = "VIDEO"
		} else {
			mediaCategory = "IMAGE"
		}
	}

	shareID, err := a.client.CreateShare(ctx, account, authorURN, sub.BaseText(), mediaCategory, assetURN, sub.AltText)
	if err != nil {
		return nil, err
	}

	return &common.PublishResult{ExternalID: shareID, MediaURLs: durableURLs}, nil
}

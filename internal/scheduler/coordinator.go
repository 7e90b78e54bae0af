// Package scheduler contains the publishing core: the due-post scanner,
// the per-post publish coordinator, the analytics poller and the cron
// service driving both cycles.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"postpilot/internal/common"
	"postpilot/internal/dbmongo"
	"postpilot/internal/platform"
)

// PostStore is the slice of the post repository the publish core uses.
type PostStore interface {
	DuePosts(ctx context.Context, now time.Time) ([]*dbmongo.Post, error)
	PostedWithExternalID(ctx context.Context, platform common.Platform) ([]*dbmongo.Post, error)
	SetExternalID(ctx context.Context, postID primitive.ObjectID, platform common.Platform, externalID string) error
	MarkPosted(ctx context.Context, postID primitive.ObjectID, platform common.Platform, mediaURLs []string, modifiedBy string) error
	MarkFailed(ctx context.Context, postID primitive.ObjectID, platform common.Platform, errText string) error
	RecordError(ctx context.Context, postID primitive.ObjectID, platform common.Platform, errText string) error
}

type AccountStore interface {
	ByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.SocialAccount, error)
}

type UserStore interface {
	UpdateProfileSnapshot(ctx context.Context, userID primitive.ObjectID, platform common.Platform, snap *dbmongo.ProfileSnapshot) error
}

type AnalyticsStore interface {
	CreateShell(ctx context.Context, rec *dbmongo.AnalyticsRecord) error
	UpsertMetrics(ctx context.Context, postID primitive.ObjectID, platform common.Platform, item common.ActivityItem) error
}

// MediaReclaimer frees staged local files once a publish has persisted.
type MediaReclaimer interface {
	Reclaim(ctx context.Context, mediaPath string) error
}

var platformLabels = map[common.Platform]string{
	common.PlatformTwitter:   "X (formerly Twitter)",
	common.PlatformLinkedin:  "LinkedIn",
	common.PlatformInstagram: "Instagram",
	common.PlatformPinterest: "Pinterest",
}

func platformLabel(p common.Platform) string {
	if label, ok := platformLabels[p]; ok {
		return label
	}
	return p.String()
}

// Coordinator resolves a due post's linked accounts, fans the publish out
// across its configured platforms, persists the outcomes and emits one
// notification per attempt.
type Coordinator struct {
	posts     PostStore
	accounts  AccountStore
	analytics AnalyticsStore
	registry  *platform.Registry
	media     MediaReclaimer
	notifier  common.Notifier
	log       zerolog.Logger
}

func NewCoordinator(
	posts PostStore,
	accounts AccountStore,
	analytics AnalyticsStore,
	registry *platform.Registry,
	media MediaReclaimer,
	notifier common.Notifier,
	log zerolog.Logger,
) *Coordinator {
	return &Coordinator{
		posts:     posts,
		accounts:  accounts,
		analytics: analytics,
		registry:  registry,
		media:     media,
		notifier:  notifier,
		log:       log.With().Str("component", "coordinator").Logger(),
	}
}

// ProcessPost publishes one due post. Platforms are handled sequentially
// so a single post never has concurrent writers; per-platform failures
// are isolated from each other and classified per the retry policy.
func (c *Coordinator) ProcessPost(ctx context.Context, post *dbmongo.Post) error {
	log := c.log.With().Str("post_id", post.ID.Hex()).Logger()

	// Reclaim runs once per distinct path after every platform has been
	// attempted: a shared staged file must survive until the last leg
	// that needs it has read and uploaded it.
	reclaim := make(map[string]struct{})

	resolved := 0
	for _, pl := range common.Platforms {
		sub := post.Content(pl)
		if sub == nil {
			continue
		}

		pub, ok := c.registry.PublisherFor(pl)
		if !ok {
			// No adapter for this platform yet; the sub-document stays
			// scheduled until one is registered.
			log.Debug().Str("platform", pl.String()).Msg("no publisher registered, skipping platform")
			continue
		}

		// Duplicate-publish guard: an external id means a previous cycle
		// already published this pair but failed before the status flip.
		if sub.ExternalID != "" {
			log.Warn().Str("platform", pl.String()).Str("external_id", sub.ExternalID).
				Msg("external id already present, finishing persist instead of republishing")
			if c.finishPersist(ctx, post, pl, sub) {
				markReclaim(reclaim, sub)
			}
			resolved++
			continue
		}

		if sub.AccountID.IsZero() {
			log.Warn().Str("platform", pl.String()).Msg("platform sub-document has no linked account")
			continue
		}

		account, err := c.accounts.ByID(ctx, sub.AccountID)
		if err != nil {
			if err == dbmongo.ErrAccountNotFound {
				// Resolution failure: skip with no state change.
				log.Warn().Str("platform", pl.String()).Str("account_id", sub.AccountID.Hex()).
					Msg("linked account not found, skipping platform")
				continue
			}
			return fmt.Errorf("failed to resolve account for %s: %w", pl, err)
		}
		resolved++

		if c.publishOne(ctx, post, pl, sub, account, pub) {
			markReclaim(reclaim, sub)
		}
	}

	for mediaPath := range reclaim {
		if err := c.media.Reclaim(ctx, mediaPath); err != nil {
			log.Warn().Err(err).Str("path", mediaPath).Msg("media reclaim failed")
		}
	}

	if resolved == 0 {
		log.Warn().Msg("no social accounts resolved for due post")
	}
	return nil
}

func markReclaim(reclaim map[string]struct{}, sub *dbmongo.PlatformContent) {
	for _, mediaPath := range sub.MediaPaths {
		reclaim[mediaPath] = struct{}{}
	}
}

// publishOne runs a single platform leg. It reports whether the external
// content is live, which is when the leg's staged media becomes
// reclaimable.
func (c *Coordinator) publishOne(ctx context.Context, post *dbmongo.Post, pl common.Platform, sub *dbmongo.PlatformContent, account *dbmongo.SocialAccount, pub platform.Publisher) bool {
	log := c.log.With().Str("post_id", post.ID.Hex()).Str("platform", pl.String()).Logger()
	userID := post.UserID.Hex()

	result, err := pub.Publish(ctx, post, sub, account)
	if err != nil {
		errText := err.Error()
		switch common.Classify(err) {
		case common.KindRejected:
			log.Error().Err(err).Msg("platform rejected post")
			if perr := c.posts.MarkFailed(ctx, post.ID, pl, errText); perr != nil {
				log.Error().Err(perr).Msg("failed to persist rejected status")
			}
		default:
			// Media and transient failures leave the post scheduled so
			// the next cycle retries.
			log.Warn().Err(err).Msg("publish attempt failed, will retry next cycle")
			if perr := c.posts.RecordError(ctx, post.ID, pl, errText); perr != nil {
				log.Error().Err(perr).Msg("failed to record publish error")
			}
		}
		c.notifier.NotifyPublish(userID, fmt.Sprintf("Failed to publish post to %s: %s", platformLabel(pl), errText), pl, post.ID.Hex(), false)
		return false
	}

	// Two-phase persist: the external id lands first so a crash between
	// the writes cannot cause a duplicate publish on the next cycle.
	if err := c.posts.SetExternalID(ctx, post.ID, pl, result.ExternalID); err != nil {
		log.Error().Err(err).Str("external_id", result.ExternalID).
			Msg("CRITICAL: external content live but id not persisted, duplicate publish possible")
		// The next cycle republishes this leg, so its staged media must
		// stay on disk.
		c.notifier.NotifyPublish(userID, fmt.Sprintf("Failed to publish post to %s: %s", platformLabel(pl), err), pl, post.ID.Hex(), false)
		return false
	}
	sub.ExternalID = result.ExternalID

	if err := c.posts.MarkPosted(ctx, post.ID, pl, result.MediaURLs, post.CreatedBy); err != nil {
		// The external id is persisted, so the next cycle resumes here
		// instead of republishing.
		log.Error().Err(err).Msg("failed to persist posted status, will resume next cycle")
		return true
	}

	if err := c.analytics.CreateShell(ctx, &dbmongo.AnalyticsRecord{
		PostID:         post.ID,
		AccountID:      account.ID,
		UserID:         post.UserID,
		Platform:       pl,
		ExternalPostID: result.ExternalID,
	}); err != nil {
		log.Error().Err(err).Msg("failed to create analytics shell")
	}

	log.Info().Str("external_id", result.ExternalID).Msg("post published")
	c.notifier.NotifyPublish(userID, fmt.Sprintf("Post successfully uploaded to %s: %s", platformLabel(pl), sub.BaseText()), pl, post.ID.Hex(), true)
	return true
}

// finishPersist resumes the second phase for a pair whose external id was
// stored but whose status flip or shell insert did not complete. It
// reports whether the leg's staged media is reclaimable; the content is
// already live, so that is always true.
func (c *Coordinator) finishPersist(ctx context.Context, post *dbmongo.Post, pl common.Platform, sub *dbmongo.PlatformContent) bool {
	log := c.log.With().Str("post_id", post.ID.Hex()).Str("platform", pl.String()).Logger()

	if err := c.posts.MarkPosted(ctx, post.ID, pl, nil, post.CreatedBy); err != nil {
		log.Error().Err(err).Msg("failed to persist posted status on resume")
		return true
	}
	if err := c.analytics.CreateShell(ctx, &dbmongo.AnalyticsRecord{
		PostID:         post.ID,
		AccountID:      sub.AccountID,
		UserID:         post.UserID,
		Platform:       pl,
		ExternalPostID: sub.ExternalID,
	}); err != nil {
		log.Error().Err(err).Msg("failed to create analytics shell on resume")
	}
	return true
}

package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"postpilot/internal/common"
	"postpilot/internal/dbmongo"
	"postpilot/internal/platform"
	"postpilot/internal/runlock"
)

// activityPageSize is the recent-activity page requested per account.
// One page per account per cycle, never per post.
const activityPageSize = 100

// Poller reconciles engagement counters for published posts. Each cycle
// it groups posted content by linked account, fetches one activity page
// and one profile snapshot per account, and upserts matched counters.
type Poller struct {
	posts     PostStore
	accounts  AccountStore
	users     UserStore
	analytics AnalyticsStore
	registry  *platform.Registry
	lock      *runlock.RunLock
	workers   int
	maxWait   time.Duration
	log       zerolog.Logger

	inFlight atomic.Bool
}

func NewPoller(
	posts PostStore,
	accounts AccountStore,
	users UserStore,
	analytics AnalyticsStore,
	registry *platform.Registry,
	lock *runlock.RunLock,
	workers int,
	maxWait time.Duration,
	log zerolog.Logger,
) *Poller {
	if workers < 1 {
		workers = 1
	}
	return &Poller{
		posts:     posts,
		accounts:  accounts,
		users:     users,
		analytics: analytics,
		registry:  registry,
		lock:      lock,
		workers:   workers,
		maxWait:   maxWait,
		log:       log.With().Str("component", "analytics_poller").Logger(),
	}
}

// RunCycle executes one analytics reconciliation pass. It shares the run
// lock with the publish cycle so the two never mutate post state
// concurrently.
func (p *Poller) RunCycle(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.log.Info().Msg("previous analytics cycle still running, skipping trigger")
		return
	}
	defer p.inFlight.Store(false)

	if !p.lock.AcquireWithin(ctx, p.maxWait) {
		p.log.Error().Dur("max_wait", p.maxWait).Msg("run lock not acquired within bound, skipping cycle")
		return
	}
	defer p.lock.Release()

	for _, pl := range p.registry.MetricsPlatforms() {
		p.pollPlatform(ctx, pl)
	}
}

func (p *Poller) pollPlatform(ctx context.Context, pl common.Platform) {
	log := p.log.With().Str("platform", pl.String()).Logger()

	fetcher, ok := p.registry.FetcherFor(pl)
	if !ok {
		return
	}

	posts, err := p.posts.PostedWithExternalID(ctx, pl)
	if err != nil {
		log.Error().Err(err).Msg("failed to load posted content")
		return
	}
	if len(posts) == 0 {
		// Nothing published on this platform, so no API traffic either.
		return
	}

	groups := groupByAccount(posts, pl)
	log.Info().Int("posts", len(posts)).Int("accounts", len(groups)).Msg("reconciling analytics")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for accountID, group := range groups {
		accountID, group := accountID, group
		g.Go(func() error {
			p.pollAccount(gctx, fetcher, accountID, group)
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Poller) pollAccount(ctx context.Context, fetcher platform.MetricsFetcher, accountID primitive.ObjectID, posts []*dbmongo.Post) {
	pl := fetcher.Platform()
	log := p.log.With().Str("platform", pl.String()).Str("account_id", accountID.Hex()).Logger()

	account, err := p.accounts.ByID(ctx, accountID)
	if err != nil {
		log.Warn().Err(err).Msg("linked account not resolvable, skipping group")
		return
	}

	if metrics, err := fetcher.FetchAccountMetrics(ctx, account); err != nil {
		log.Warn().Err(err).Msg("failed to fetch profile metrics")
	} else if err := p.users.UpdateProfileSnapshot(ctx, account.UserID, pl, &dbmongo.ProfileSnapshot{
		Followers:    metrics.Followers,
		Following:    metrics.Following,
		Posts:        metrics.PostCount,
		Listed:       metrics.ListedCount,
		ProfileImage: metrics.ProfileImage,
		Location:     metrics.Location,
		FetchedAt:    time.Now(),
	}); err != nil {
		log.Error().Err(err).Msg("failed to persist profile snapshot")
	}

	items, err := fetcher.FetchRecentItems(ctx, account, activityPageSize)
	if err != nil {
		log.Warn().Err(err).Msg("failed to fetch recent activity, keeping previous counters")
		return
	}

	index := make(map[string]common.ActivityItem, len(items))
	for _, item := range items {
		index[item.ExternalID] = item
	}

	for _, post := range posts {
		sub := post.Content(pl)
		if sub == nil || sub.ExternalID == "" {
			continue
		}
		item, ok := index[sub.ExternalID]
		if !ok {
			// Older than the page window; its last stored counters stand.
			continue
		}
		if err := p.analytics.UpsertMetrics(ctx, post.ID, pl, item); err != nil {
			log.Error().Err(err).Str("post_id", post.ID.Hex()).Msg("failed to upsert analytics")
		}
	}
}

func groupByAccount(posts []*dbmongo.Post, pl common.Platform) map[primitive.ObjectID][]*dbmongo.Post {
	groups := make(map[primitive.ObjectID][]*dbmongo.Post)
	for _, post := range posts {
		sub := post.Content(pl)
		if sub == nil || sub.AccountID.IsZero() {
			continue
		}
		groups[sub.AccountID] = append(groups[sub.AccountID], post)
	}
	return groups
}

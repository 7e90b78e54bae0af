// Package platform defines the per-network publish and metrics
// capabilities and the registry that selects an adapter by platform tag.
// Adding a platform means registering a new adapter, not editing
// conditional chains.
package platform

import (
	"context"

	"postpilot/internal/common"
	"postpilot/internal/dbmongo"
)

// Publisher publishes one platform sub-document using the linked account.
type Publisher interface {
	Platform() common.Platform
	Publish(ctx context.Context, post *dbmongo.Post, sub *dbmongo.PlatformContent, account *dbmongo.SocialAccount) (*common.PublishResult, error)
}

// MetricsFetcher retrieves account-level metrics and recent activity for
// platforms that expose them.
type MetricsFetcher interface {
	Platform() common.Platform
	FetchAccountMetrics(ctx context.Context, account *dbmongo.SocialAccount) (*common.AccountMetrics, error)
	FetchRecentItems(ctx context.Context, account *dbmongo.SocialAccount, limit int) ([]common.ActivityItem, error)
}

type Registry struct {
	publishers map[common.Platform]Publisher
	fetchers   map[common.Platform]MetricsFetcher
}

func NewRegistry() *Registry {
	return &Registry{
		publishers: make(map[common.Platform]Publisher),
		fetchers:   make(map[common.Platform]MetricsFetcher),
	}
}

func (r *Registry) RegisterPublisher(p Publisher) {
	r.publishers[p.Platform()] = p
}

func (r *Registry) RegisterFetcher(f MetricsFetcher) {
	r.fetchers[f.Platform()] = f
}

// PublisherFor returns the adapter for a platform. A miss means the
// platform is unsupported and the caller leaves the sub-document alone.
func (r *Registry) PublisherFor(p common.Platform) (Publisher, bool) {
	pub, ok := r.publishers[p]
	return pub, ok
}

func (r *Registry) FetcherFor(p common.Platform) (MetricsFetcher, bool) {
	f, ok := r.fetchers[p]
	return f, ok
}

// MetricsPlatforms lists the platforms with a registered metrics
// capability, in no particular order.
func (r *Registry) MetricsPlatforms() []common.Platform {
	out := make([]common.Platform, 0, len(r.fetchers))
	for p := range r.fetchers {
		out = append(out, p)
	}
	return out
}

package common

import (
	"time"
)

type NotificationType string

const (
	PublishSuccessType NotificationType = "publish_success"
	PublishFailureType NotificationType = "publish_failure"
	SystemType         NotificationType = "system"
)

type NotificationMetadata map[string]interface{}

// NotificationEvent is the payload pushed to the owning user when a
// publish attempt completes. ReceiverID is the user document id.
type NotificationEvent struct {
	ID         string
	Type       NotificationType
	ReceiverID string
	Message    string
	Platform   Platform
	PostID     string
	Metadata   NotificationMetadata
	CreatedAt  time.Time
}

// PublishResult is what a platform adapter returns after a successful
// publish: the platform-assigned post id and the durable media URLs that
// replaced the local staging paths.
type PublishResult struct {
	ExternalID string
	MediaURLs  []string
}

// AccountMetrics is the account-level profile snapshot returned by a
// platform's profile-metrics endpoint.
type AccountMetrics struct {
	Followers    int64
	Following    int64
	PostCount    int64
	ListedCount  int64
	ProfileImage string
	Location     string
}

// ActivityItem is one item from a platform's recent-activity page with
// its per-item engagement counters.
type ActivityItem struct {
	ExternalID  string
	Likes       int64
	Comments    int64
	Shares      int64
	Quotes      int64
	Impressions int64
	CreatedAt   time.Time
}

// TotalEngagements computes the engagement total persisted onto an
// analytics record. Impressions are reach, not engagement, so they are
// stored separately and excluded here.
func (a ActivityItem) TotalEngagements() int64 {
	return a.Likes + a.Comments + a.Shares + a.Quotes
}

package dbmongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"postpilot/internal/common"
)

// PlatformContent is one platform's sub-document inside a post. Field
// names mirror what the authoring flow writes; not every field applies
// to every platform.
type PlatformContent struct {
	AccountID    primitive.ObjectID `bson:"socialMediaId,omitempty" json:"socialMediaId,omitempty"`
	Text         string             `bson:"text,omitempty" json:"text,omitempty"`
	Content      string             `bson:"content,omitempty" json:"content,omitempty"`
	Hashtags     []string           `bson:"hashtags,omitempty" json:"hashtags,omitempty"`
	Mentions     []string           `bson:"mentions,omitempty" json:"mentions,omitempty"`
	MediaPaths   []string           `bson:"mediaUrls,omitempty" json:"mediaUrls,omitempty"`
	IsThread     bool               `bson:"isThread,omitempty" json:"isThread,omitempty"`
	FirstComment string             `bson:"firstComment,omitempty" json:"firstComment,omitempty"`
	AltText      string             `bson:"altText,omitempty" json:"altText,omitempty"`
	ExternalID   string             `bson:"postId,omitempty" json:"postId,omitempty"`
	Error        string             `bson:"error,omitempty" json:"error,omitempty"`
}

// BaseText returns whichever text field the platform uses.
func (pc *PlatformContent) BaseText() string {
	if pc.Text != "" {
		return pc.Text
	}
	return pc.Content
}

type Post struct {
	ID               primitive.ObjectID                   `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID                   `bson:"userId" json:"userId"`
	PlatformSpecific map[common.Platform]*PlatformContent `bson:"platformSpecific" json:"platformSpecific"`
	Status           common.PostStatus                    `bson:"status" json:"status"`
	ScheduledTime    time.Time                            `bson:"scheduledTime" json:"scheduledTime"`
	Error            string                               `bson:"error,omitempty" json:"error,omitempty"`
	CreatedBy        string                               `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	LastModifiedBy   string                               `bson:"lastModifiedBy,omitempty" json:"lastModifiedBy,omitempty"`
	CreatedAt        time.Time                            `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        time.Time                            `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Content returns the sub-document for a platform, nil when the post is
// not configured for it.
func (p *Post) Content(platform common.Platform) *PlatformContent {
	if p.PlatformSpecific == nil {
		return nil
	}
	return p.PlatformSpecific[platform]
}

type SocialAccount struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	PlatformName      common.Platform    `bson:"platformName" json:"platformName"`
	ExternalAccountID string             `bson:"socialMediaID" json:"socialMediaID"`
	PlatformUserName  string             `bson:"platformUserName,omitempty" json:"platformUserName,omitempty"`
	AccessToken       string             `bson:"accessToken" json:"-"`
	AccessSecret      string             `bson:"accessSecret,omitempty" json:"-"`
	CreatedBy         string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}

// ProfileSnapshot is the account-level metrics block the analytics poll
// writes onto the owning user document.
type ProfileSnapshot struct {
	Followers    int64     `bson:"followers" json:"followers"`
	Following    int64     `bson:"following" json:"following"`
	Posts        int64     `bson:"posts" json:"posts"`
	Listed       int64     `bson:"listed" json:"listed"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	FetchedAt    time.Time `bson:"fetchedAt" json:"fetchedAt"`
}

type User struct {
	ID       primitive.ObjectID                   `bson:"_id,omitempty" json:"id"`
	Name     string                               `bson:"name" json:"name"`
	Email    string                               `bson:"email" json:"email"`
	Profiles map[common.Platform]*ProfileSnapshot `bson:"profiles,omitempty" json:"profiles,omitempty"`
}

// AnalyticsRecord holds the engagement counters for one (post, platform)
// pair. Created once as a zero-valued shell at publish time, updated by
// the analytics poll thereafter.
type AnalyticsRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID         primitive.ObjectID `bson:"postId" json:"postId"`
	AccountID      primitive.ObjectID `bson:"socialMediaId" json:"socialMediaId"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Platform       common.Platform    `bson:"platform" json:"platform"`
	ExternalPostID string             `bson:"platformSpecificPostId" json:"platformSpecificPostId"`
	Likes          int64              `bson:"like" json:"like"`
	Comments       int64              `bson:"comment" json:"comment"`
	Shares         int64              `bson:"share" json:"share"`
	Impressions    int64              `bson:"impressions" json:"impressions"`
	Engagements    int64              `bson:"engagements" json:"engagements"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// NotificationEventDoc is the persisted form of an emitted notification.
type NotificationEventDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID    string             `bson:"eventId" json:"eventId"`
	ReceiverID string             `bson:"receiverId" json:"receiverId"`
	Type       string             `bson:"type" json:"type"`
	Message    string             `bson:"message" json:"message"`
	Platform   string             `bson:"platform,omitempty" json:"platform,omitempty"`
	PostID     string             `bson:"postId,omitempty" json:"postId,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

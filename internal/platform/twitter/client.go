package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/dghubble/oauth1"
	"golang.org/x/time/rate"

	"postpilot/internal/common"
	"postpilot/internal/config"
	"postpilot/internal/dbmongo"
)

// Client wraps the v2 tweet endpoints and the v1.1 media upload endpoint.
// Requests are signed with the app credentials plus the per-account user
// token, and throttled by a shared limiter.
type Client struct {
	oauthCfg  *oauth1.Config
	baseURL   string
	uploadURL string
	limiter   *rate.Limiter
}

func NewClient(cfg config.TwitterConfig, ratePerSecond int) *Client {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	return &Client{
		oauthCfg:  oauth1.NewConfig(cfg.APIKey, cfg.APISecret),
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		uploadURL: strings.TrimSuffix(cfg.UploadURL, "/"),
		limiter:   rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
	}
}

func (c *Client) httpFor(ctx context.Context, account *dbmongo.SocialAccount) *http.Client {
	token := oauth1.NewToken(account.AccessToken, account.AccessSecret)
	return c.oauthCfg.Client(ctx, token)
}

func (c *Client) do(ctx context.Context, account *dbmongo.SocialAccount, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, common.NewTransientError(common.PlatformTwitter, err)
	}
	resp, err := c.httpFor(ctx, account).Do(req)
	if err != nil {
		return nil, common.NewTransientError(common.PlatformTwitter, err)
	}
	return resp, nil
}

func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	err := fmt.Errorf("twitter api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	if common.ClassifyStatus(resp.StatusCode) == common.KindTransient {
		return common.NewTransientError(common.PlatformTwitter, err)
	}
	return common.NewRejectedError(common.PlatformTwitter, err)
}

type mediaUploadResponse struct {
	MediaIDString string `json:"media_id_string"`
}

// UploadMedia pushes raw media bytes through the v1.1 multipart upload
// endpoint and returns the media handle to attach to a tweet.
func (c *Client) UploadMedia(ctx context.Context, account *dbmongo.SocialAccount, data []byte, mimeType string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("media", "media")
	if err != nil {
		return "", common.NewMediaError(common.PlatformTwitter, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", common.NewMediaError(common.PlatformTwitter, err)
	}
	if err := writer.WriteField("media_category", mediaCategory(mimeType)); err != nil {
		return "", common.NewMediaError(common.PlatformTwitter, err)
	}
	if err := writer.Close(); err != nil {
		return "", common.NewMediaError(common.PlatformTwitter, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL+"/1.1/media/upload.json", &buf)
	if err != nil {
		return "", common.NewMediaError(common.PlatformTwitter, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.do(ctx, account, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", common.NewMediaError(common.PlatformTwitter, apiError(resp))
	}

	var out mediaUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", common.NewMediaError(common.PlatformTwitter, err)
	}
	if out.MediaIDString == "" {
		return "", common.NewMediaError(common.PlatformTwitter, fmt.Errorf("upload response missing media id"))
	}
	return out.MediaIDString, nil
}

func mediaCategory(mimeType string) string {
	if strings.HasPrefix(mimeType, "video/") {
		return "tweet_video"
	}
	return "tweet_image"
}

type tweetRequest struct {
	Text  string      `json:"text"`
	Media *tweetMedia `json:"media,omitempty"`
	Reply *tweetReply `json:"reply,omitempty"`
}

type tweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

type tweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// CreateTweet posts a tweet through the v2 endpoint, optionally with
// media handles or as a threaded reply.
func (c *Client) CreateTweet(ctx context.Context, account *dbmongo.SocialAccount, text string, mediaIDs []string, inReplyTo string) (string, error) {
	payload := tweetRequest{Text: text}
	if len(mediaIDs) > 0 {
		payload.Media = &tweetMedia{MediaIDs: mediaIDs}
	}
	if inReplyTo != "" {
		payload.Reply = &tweetReply{InReplyToTweetID: inReplyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", common.NewRejectedError(common.PlatformTwitter, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return "", common.NewTransientError(common.PlatformTwitter, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, account, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apiError(resp)
	}

	var out tweetResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", common.NewTransientError(common.PlatformTwitter, err)
	}
	if out.Data.ID == "" {
		return "", common.NewRejectedError(common.PlatformTwitter, fmt.Errorf("tweet response missing id"))
	}
	return out.Data.ID, nil
}

type userResponse struct {
	Data struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		Location      string `json:"location"`
		ProfileImage  string `json:"profile_image_url"`
		PublicMetrics struct {
			Followers int64 `json:"followers_count"`
			Following int64 `json:"following_count"`
			Tweets    int64 `json:"tweet_count"`
			Listed    int64 `json:"listed_count"`
		} `json:"public_metrics"`
	} `json:"data"`
}

// UserMetrics fetches the account-level profile metrics.
func (c *Client) UserMetrics(ctx context.Context, account *dbmongo.SocialAccount) (*common.AccountMetrics, error) {
	endpoint := fmt.Sprintf("%s/2/users/%s?user.fields=%s", c.baseURL, url.PathEscape(account.ExternalAccountID),
		url.QueryEscape("public_metrics,profile_image_url,location"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, common.NewTransientError(common.PlatformTwitter, err)
	}

	resp, err := c.do(ctx, account, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(resp)
	}

	var out userResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, common.NewTransientError(common.PlatformTwitter, err)
	}

	return &common.AccountMetrics{
		Followers:    out.Data.PublicMetrics.Followers,
		Following:    out.Data.PublicMetrics.Following,
		PostCount:    out.Data.PublicMetrics.Tweets,
		ListedCount:  out.Data.PublicMetrics.Listed,
		ProfileImage: out.Data.ProfileImage,
		Location:     out.Data.Location,
	}, nil
}

type timelineResponse struct {
	Data []struct {
		ID            string `json:"id"`
		CreatedAt     string `json:"created_at"`
		PublicMetrics struct {
			Likes       int64 `json:"like_count"`
			Replies     int64 `json:"reply_count"`
			Retweets    int64 `json:"retweet_count"`
			Quotes      int64 `json:"quote_count"`
			Impressions int64 `json:"impression_count"`
		} `json:"public_metrics"`
	} `json:"data"`
}

// UserTimeline fetches one bounded page of the account's recent tweets
// with their engagement counters.
func (c *Client) UserTimeline(ctx context.Context, account *dbmongo.SocialAccount, limit int) ([]common.ActivityItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	endpoint := fmt.Sprintf("%s/2/users/%s/tweets?max_results=%d&tweet.fields=%s", c.baseURL,
		url.PathEscape(account.ExternalAccountID), limit, url.QueryEscape("public_metrics,created_at"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, common.NewTransientError(common.PlatformTwitter, err)
	}

	resp, err := c.do(ctx, account, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(resp)
	}

	var out timelineResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, common.NewTransientError(common.PlatformTwitter, err)
	}

	items := make([]common.ActivityItem, 0, len(out.Data))
	for _, tw := range out.Data {
		items = append(items, common.ActivityItem{
			ExternalID:  tw.ID,
			Likes:       tw.PublicMetrics.Likes,
			Comments:    tw.PublicMetrics.Replies,
			Shares:      tw.PublicMetrics.Retweets,
			Quotes:      tw.PublicMetrics.Quotes,
			Impressions: tw.PublicMetrics.Impressions,
		})
	}
	return items, nil
}

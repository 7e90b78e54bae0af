package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"postpilot/internal/common"
	"postpilot/internal/config"
	"postpilot/internal/dbmongo"
)

const restliProtocolVersion = "2.0.0"

// Client wraps the LinkedIn REST endpoints the publish path needs:
// userinfo, the two-step asset upload and UGC share creation. Calls are
// authenticated with the account's bearer token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg config.LinkedinConfig, ratePerSecond int) *Client {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
	}
}

func (c *Client) do(ctx context.Context, account *dbmongo.SocialAccount, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, common.NewTransientError(common.PlatformLinkedin, err)
	}
	req.Header.Set("Authorization", "Bearer "+account.AccessToken)
	req.Header.Set("X-Restli-Protocol-Version", restliProtocolVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.NewTransientError(common.PlatformLinkedin, err)
	}
	return resp, nil
}

func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	err := fmt.Errorf("linkedin api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	if common.ClassifyStatus(resp.StatusCode) == common.KindTransient {
		return common.NewTransientError(common.PlatformLinkedin, err)
	}
	return common.NewRejectedError(common.PlatformLinkedin, err)
}

type userInfoResponse struct {
	Sub string `json:"sub"`
}

// UserInfo resolves the member identity the author URN is built from.
func (c *Client) UserInfo(ctx context.Context, account *dbmongo.SocialAccount) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/userinfo", nil)
	if err != nil {
		return "", common.NewTransientError(common.PlatformLinkedin, err)
	}

	resp, err := c.do(ctx, account, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apiError(resp)
	}

	var out userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", common.NewTransientError(common.PlatformLinkedin, err)
	}
	if out.Sub == "" {
		return "", common.NewRejectedError(common.PlatformLinkedin, fmt.Errorf("userinfo response missing sub"))
	}
	return out.Sub, nil
}

type registerUploadRequest struct {
	RegisterUploadRequest struct {
		Recipes              []string `json:"recipes"`
		Owner                string   `json:"owner"`
		ServiceRelationships []struct {
			RelationshipType string `json:"relationshipType"`
			Identifier       string `json:"identifier"`
		} `json:"serviceRelationships"`
	} `json:"registerUploadRequest"`
}

type registerUploadResponse struct {
	Value struct {
		Asset           string `json:"asset"`
		UploadMechanism map[string]struct {
			UploadURL string `json:"uploadUrl"`
		} `json:"uploadMechanism"`
	} `json:"value"`
}

const uploadMechanismKey = "com.linkedin.digitalmedia.uploading.MediaUploadHttpRequest"

// RegisterUpload reserves an asset handle and returns the URL the media
// bytes must be PUT to. First half of the two-step ingestion protocol.
func (c *Client) RegisterUpload(ctx context.Context, account *dbmongo.SocialAccount, ownerURN string, category common.MediaFileType) (asset, uploadURL string, err error) {
	recipe := "urn:li:digitalmediaRecipe:feedshare-image"
	if category == common.MediaFileTypeVideo {
		recipe = "urn:li:digitalmediaRecipe:feedshare-video"
	}

	var payload registerUploadRequest
	payload.RegisterUploadRequest.Recipes = []string{recipe}
	payload.RegisterUploadRequest.Owner = ownerURN
	payload.RegisterUploadRequest.ServiceRelationships = []struct {
		RelationshipType string `json:"relationshipType"`
		Identifier       string `json:"identifier"`
	}{{RelationshipType: "OWNER", Identifier: "urn:li:userGeneratedContent"}}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", common.NewMediaError(common.PlatformLinkedin, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assets?action=registerUpload", bytes.NewReader(body))
	if err != nil {
		return "", "", common.NewMediaError(common.PlatformLinkedin, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, account, req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", common.NewMediaError(common.PlatformLinkedin, apiError(resp))
	}

	var out registerUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "", common.NewMediaError(common.PlatformLinkedin, err)
	}

	uploadURL = out.Value.UploadMechanism[uploadMechanismKey].UploadURL
	if out.Value.Asset == "" || uploadURL == "" {
		return "", "", common.NewMediaError(common.PlatformLinkedin, fmt.Errorf("register upload response missing asset or upload url"))
	}
	return out.Value.Asset, uploadURL, nil
}

// UploadAsset PUTs the raw media bytes to the registered upload URL.
// Second half of the two-step ingestion protocol.
func (c *Client) UploadAsset(ctx context.Context, account *dbmongo.SocialAccount, uploadURL string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return common.NewMediaError(common.PlatformLinkedin, err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.do(ctx, account, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return common.NewMediaError(common.PlatformLinkedin, apiError(resp))
	}
	return nil
}

type shareMedia struct {
	Status      string            `json:"status"`
	Media       string            `json:"media"`
	Description map[string]string `json:"description,omitempty"`
	Title       map[string]string `json:"title,omitempty"`
}

type sharePayload struct {
	Author          string `json:"author"`
	LifecycleState  string `json:"lifecycleState"`
	SpecificContent map[string]struct {
		ShareCommentary    map[string]string `json:"shareCommentary"`
		ShareMediaCategory string            `json:"shareMediaCategory"`
		Media              []shareMedia      `json:"media"`
	} `json:"specificContent"`
	Visibility map[string]string `json:"visibility"`
}

type shareResponse struct {
	ID string `json:"id"`
}

const shareContentKey = "com.linkedin.ugc.ShareContent"

// CreateShare posts the UGC share and returns the platform post id.
func (c *Client) CreateShare(ctx context.Context, account *dbmongo.SocialAccount, authorURN, text, mediaCategory, assetURN, altText string) (string, error) {
	var payload sharePayload
	payload.Author = authorURN
	payload.LifecycleState = "PUBLISHED"
	payload.Visibility = map[string]string{"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC"}

	content := struct {
		ShareCommentary    map[string]string `json:"shareCommentary"`
		ShareMediaCategory string            `json:"shareMediaCategory"`
		Media              []shareMedia      `json:"media"`
	}{
		ShareCommentary:    map[string]string{"text": text},
		ShareMediaCategory: mediaCategory,
		Media:              []shareMedia{},
	}
	if assetURN != "" {
		media := shareMedia{Status: "READY", Media: assetURN}
		if altText != "" {
			media.Description = map[string]string{"text": altText}
		}
		content.Media = append(content.Media, media)
	}
	payload.SpecificContent = map[string]struct {
		ShareCommentary    map[string]string `json:"shareCommentary"`
		ShareMediaCategory string            `json:"shareMediaCategory"`
		Media              []shareMedia      `json:"media"`
	}{shareContentKey: content}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", common.NewRejectedError(common.PlatformLinkedin, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ugcPosts", bytes.NewReader(body))
	if err != nil {
		return "", common.NewTransientError(common.PlatformLinkedin, err)
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

	var out shareResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", common.NewTransientError(common.PlatformLinkedin, err)
	}
	if out.ID == "" {
		return "", common.NewRejectedError(common.PlatformLinkedin, fmt.Errorf("share response missing id"))
	}
	return out.ID, nil
}

package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postpilot/internal/common"
	"postpilot/internal/config"
	"postpilot/internal/dbmongo"
)

type fakePipeline struct {
	staged map[string]string
	reads  map[string][]byte
}

func (f *fakePipeline) Stage(ctx context.Context, mediaPath string) (string, error) {
	return f.staged[mediaPath], nil
}

func (f *fakePipeline) ReadFile(mediaPath string) ([]byte, error) {
	return f.reads[mediaPath], nil
}

func testAccount() *dbmongo.SocialAccount {
	return &dbmongo.SocialAccount{
		PlatformName:      common.PlatformLinkedin,
		ExternalAccountID: "li-123",
		AccessToken:       "bearer-tok",
	}
}

func TestAdapter_Publish_TextOnly(t *testing.T) {
	var sharePayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer bearer-tok", r.Header.Get("Authorization"))
		assert.Equal(t, "2.0.0", r.Header.Get("X-Restli-Protocol-Version"))

		switch r.URL.Path {
		case "/userinfo":
			fmt.Fprint(w, `{"sub":"abc"}`)
		case "/ugcPosts":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sharePayload))
			fmt.Fprint(w, `{"id":"urn:li:share:42"}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	adapter := NewAdapter(NewClient(config.LinkedinConfig{BaseURL: server.URL}, 100), &fakePipeline{}, zerolog.Nop())

	sub := &dbmongo.PlatformContent{Content: "professional update"}
	result, err := adapter.Publish(context.Background(), &dbmongo.Post{}, sub, testAccount())
	require.NoError(t, err)

	assert.Equal(t, "urn:li:share:42", result.ExternalID)
	assert.Empty(t, result.MediaURLs)

	assert.Equal(t, "urn:li:person:abc", sharePayload["author"])
	assert.Equal(t, "PUBLISHED", sharePayload["lifecycleState"])

	content := sharePayload["specificContent"].(map[string]interface{})["com.linkedin.ugc.ShareContent"].(map[string]interface{})
	assert.Equal(t, "NONE", content["shareMediaCategory"])
}

func TestAdapter_Publish_WithImage(t *testing.T) {
	var uploadedBody []byte
	var registerOwner string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/userinfo":
			fmt.Fprint(w, `{"sub":"abc"}`)
		case r.URL.Path == "/assets" && r.URL.Query().Get("action") == "registerUpload":
			var req map[string]map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			registerOwner = req["registerUploadRequest"]["owner"].(string)
			fmt.Fprintf(w, `{"value":{"asset":"urn:li:digitalmediaAsset:99","uploadMechanism":{
				"com.linkedin.digitalmedia.uploading.MediaUploadHttpRequest":{"uploadUrl":"http://%s/upload-here"}}}}`, r.Host)
		case r.URL.Path == "/upload-here":
			assert.Equal(t, http.MethodPut, r.Method)
			uploadedBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
		case r.URL.Path == "/ugcPosts":
			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			content := payload["specificContent"].(map[string]interface{})["com.linkedin.ugc.ShareContent"].(map[string]interface{})
			assert.Equal(t, "IMAGE", content["shareMediaCategory"])
			media := content["media"].([]interface{})
			require.Len(t, media, 1)
			assert.Equal(t, "urn:li:digitalmediaAsset:99", media[0].(map[string]interface{})["media"])
			fmt.Fprint(w, `{"id":"urn:li:share:77"}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	pipeline := &fakePipeline{
		staged: map[string]string{"uploads/pic.jpg": "https://cdn.example.com/pic.jpg"},
		reads:  map[string][]byte{"uploads/pic.jpg": []byte("image-bytes")},
	}
	adapter := NewAdapter(NewClient(config.LinkedinConfig{BaseURL: server.URL}, 100), pipeline, zerolog.Nop())

	// Only the first media item is uploaded; the second path is ignored.
	sub := &dbmongo.PlatformContent{
		Content:    "with media",
		MediaPaths: []string{"uploads/pic.jpg", "uploads/ignored.jpg"},
	}

	result, err := adapter.Publish(context.Background(), &dbmongo.Post{}, sub, testAccount())
	require.NoError(t, err)

	assert.Equal(t, "urn:li:share:77", result.ExternalID)
	assert.Equal(t, []string{"https://cdn.example.com/pic.jpg"}, result.MediaURLs)
	assert.Equal(t, "urn:li:person:abc", registerOwner)
	assert.Equal(t, []byte("image-bytes"), uploadedBody)
}

func TestAdapter_Publish_RejectedShare(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/userinfo" {
			fmt.Fprint(w, `{"sub":"abc"}`)
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	adapter := NewAdapter(NewClient(config.LinkedinConfig{BaseURL: server.URL}, 100), &fakePipeline{}, zerolog.Nop())
	sub := &dbmongo.PlatformContent{Content: "bad"}

	_, err := adapter.Publish(context.Background(), &dbmongo.Post{}, sub, testAccount())
	require.Error(t, err)
	assert.Equal(t, common.KindRejected, common.Classify(err))
}

func TestAdapter_Publish_TransientUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := NewAdapter(NewClient(config.LinkedinConfig{BaseURL: server.URL}, 100), &fakePipeline{}, zerolog.Nop())
	sub := &dbmongo.PlatformContent{Content: "later"}

	_, err := adapter.Publish(context.Background(), &dbmongo.Post{}, sub, testAccount())
	require.Error(t, err)
	assert.Equal(t, common.KindTransient, common.Classify(err))
}

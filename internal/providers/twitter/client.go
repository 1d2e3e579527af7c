package twitter

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"time"

	"github.com/dghubble/oauth1"
	"go.uber.org/zap"

	"github.com/josephtaylor/tensorians-sales/internal/adapter"
	"github.com/josephtaylor/tensorians-sales/internal/logger"
)

const (
	PROVIDER_NAME = "twitter"

	MEDIA_UPLOAD_URL = "https://upload.twitter.com/1.1/media/upload.json"
	TWEET_URL        = "https://api.twitter.com/2/tweets"
)

// Config holds the OAuth1 user-context credentials
type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// mediaUploadResponse is the v1.1 media upload response
type mediaUploadResponse struct {
	MediaIDString string `json:"media_id_string"`
}

// tweetRequest is the v2 create-tweet request body
type tweetRequest struct {
	Text  string      `json:"text"`
	Media *tweetMedia `json:"media,omitempty"`
}

type tweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

// tweetResponse is the v2 create-tweet response body
type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// Client posts tweets with optional media attachments
type Client struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
}

// NewSignedHTTPClient returns an HTTP client whose requests carry OAuth1
// user-context signatures for the configured account
func NewSignedHTTPClient(cfg Config, timeout time.Duration) adapter.HTTPClient {
	oauthConfig := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)

	signed := oauthConfig.Client(oauth1.NoContext, token)
	signed.Timeout = timeout

	return adapter.NewHTTPClientWithClient(signed)
}

// NewClient creates a new client posting through the given HTTP client.
// The client is expected to sign requests (see NewSignedHTTPClient).
func NewClient(httpClient adapter.HTTPClient, json adapter.JSON) *Client {
	return &Client{
		httpClient: httpClient,
		json:       json,
	}
}

// UploadMedia uploads image bytes to the v1.1 media endpoint and returns
// the media id to reference from a tweet
func (c *Client) UploadMedia(ctx context.Context, data []byte, mimeType string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="media"; filename="media"`)
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write media bytes: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx, MEDIA_UPLOAD_URL, writer.FormDataContentType(), nil, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to upload media: %w", err)
	}

	var response mediaUploadResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal media upload response: %w", err)
	}

	if response.MediaIDString == "" {
		return "", fmt.Errorf("media upload returned no media id")
	}

	logger.DebugCtx(ctx, "Media uploaded", zap.String("media_id", response.MediaIDString))
	return response.MediaIDString, nil
}

// Post creates a tweet via the v2 endpoint, attaching any uploaded media ids
func (c *Client) Post(ctx context.Context, text string, mediaIDs []string) error {
	request := tweetRequest{Text: text}
	if len(mediaIDs) > 0 {
		request.Media = &tweetMedia{MediaIDs: mediaIDs}
	}

	body, err := c.json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal tweet request: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx, TWEET_URL, "application/json", nil, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to post tweet: %w", err)
	}

	var response tweetResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to unmarshal tweet response: %w", err)
	}

	logger.InfoCtx(ctx, "Tweet posted",
		zap.String("provider", PROVIDER_NAME),
		zap.String("tweet_id", response.Data.ID))
	return nil
}

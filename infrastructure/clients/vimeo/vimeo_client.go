package vimeo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wesion-bff/domain/dto"
	"wesion-bff/infrastructure/logger"

	"golang.org/x/oauth2"
)

const acceptHeader = "application/vnd.vimeo.*+json;version=3.4"

// Config represents the Vimeo service-account configuration.
type Config struct {
	Host        string
	AccessToken string
	ChunkSize   int64
}

// Client talks to the Vimeo API with the platform's service account. Videos
// are created as placeholders with the tus upload approach, then streamed to
// the returned upload link.
type Client struct {
	host       string
	httpClient *http.Client
	chunkSize  int64
}

// NewClient builds a Vimeo client authenticated via a static OAuth2 token.
func NewClient(ctx context.Context, config *Config) (*Client, error) {
	if config.AccessToken == "" {
		return nil, fmt.Errorf("vimeo access token is required")
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.AccessToken, TokenType: "Bearer"})
	host := config.Host
	if host == "" {
		host = "https://api.vimeo.com"
	}
	chunkSize := config.ChunkSize
	if chunkSize == 0 {
		chunkSize = 32 * 1024 * 1024
	}
	return &Client{
		host:       host,
		httpClient: oauth2.NewClient(ctx, src),
		chunkSize:  chunkSize,
	}, nil
}

type createRequest struct {
	Upload struct {
		Approach string `json:"approach"`
		Size     int64  `json:"size"`
	} `json:"upload"`
	Name string `json:"name"`
}

type createResponse struct {
	Upload struct {
		UploadLink string `json:"upload_link"`
	} `json:"upload"`
	Link  string `json:"link"`
	Error string `json:"error"`
}

// CreateUpload requests an upload handle: POST /me/videos with the tus
// approach. A failure here aborts before any bytes move; there is no retry.
func (c *Client) CreateUpload(ctx context.Context, name string, size int64) (*dto.VimeoCreateResponse, error) {
	var body createRequest
	body.Upload.Approach = "tus"
	body.Upload.Size = size
	body.Name = name

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode create request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/me/videos", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vimeo create request failed: %w", err)
	}
	defer resp.Body.Close()

	var out createResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("vimeo returned a malformed response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := out.Error
		if msg == "" {
			msg = fmt.Sprintf("vimeo returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("failed to create video on Vimeo: %s", msg)
	}
	if out.Upload.UploadLink == "" {
		return nil, fmt.Errorf("vimeo response carried no upload link")
	}

	logger.GetLogger().WithField("link", out.Link).Info("Vimeo placeholder created")
	return &dto.VimeoCreateResponse{UploadLink: out.Upload.UploadLink, Link: out.Link}, nil
}

// retryDelays is the backoff schedule between upload retry attempts.
var retryDelays = []time.Duration{0, 3 * time.Second, 5 * time.Second, 10 * time.Second, 20 * time.Second}

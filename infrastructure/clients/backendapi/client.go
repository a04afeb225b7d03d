package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/model"
	"wesion-bff/domain/repository"
	"wesion-bff/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

// Client talks to the upstream REST backend. Every endpoint answers with the
// uniform envelope { success, data?, message? }; a non-success envelope is
// surfaced as an error carrying the backend message verbatim.
type Client struct {
	host       string
	httpClient *http.Client
}

func NewClient(host string) *Client {
	return &Client{
		host:       host,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

var _ repository.IBackend = (*Client)(nil)
var _ repository.IVimeoAuth = (*Client)(nil)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do issues the request and decodes the envelope. A transport failure or a
// malformed body is reported as-is; an unsuccessful envelope becomes an error
// with the backend's message.
func (c *Client) do(ctx context.Context, method, path, accessToken string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("backend returned a malformed response: %w", err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("backend returned status %d", resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode backend data: %w", err)
		}
	}
	return nil
}

// Error is an unsuccessful backend envelope, keeping the upstream status so
// proxy routes can pass it through.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// Login authenticates against the backend.
func (c *Client) Login(ctx context.Context, req dto.ReqLogin) (*dto.LoginData, error) {
	var data dto.LoginData
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// FindUserIDByEmail resolves an applicant email to a user id.
func (c *Client) FindUserIDByEmail(ctx context.Context, email string) (int, error) {
	var data dto.FindByEmailData
	path := "/users/findByEmailOnlyId/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &data); err != nil {
		return 0, err
	}
	return data.UserID, nil
}

// ListCategories fetches the video category reference data.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/videoCategories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListVideos returns all submissions with embedded relations.
func (c *Client) ListVideos(ctx context.Context, accessToken string) ([]model.VideoDetail, error) {
	var videos []model.VideoDetail
	if err := c.do(ctx, http.MethodGet, "/videos", accessToken, nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetVideo fetches one submission.
func (c *Client) GetVideo(ctx context.Context, accessToken string, videoID int) (*model.VideoDetail, error) {
	var video model.VideoDetail
	path := fmt.Sprintf("/videos/%d", videoID)
	if err := c.do(ctx, http.MethodGet, path, accessToken, nil, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// SubmitVideoDetails posts a new submission.
func (c *Client) SubmitVideoDetails(ctx context.Context, payload map[string]interface{}) (*model.VideoDetail, error) {
	var video model.VideoDetail
	if err := c.do(ctx, http.MethodPost, "/videoDetails", "", payload, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// UpdateVideo sends an allow-listed partial update.
func (c *Client) UpdateVideo(ctx context.Context, videoID int, updates map[string]interface{}) (*model.VideoDetail, error) {
	var video model.VideoDetail
	path := fmt.Sprintf("/videos/%d", videoID)
	if err := c.do(ctx, http.MethodPut, path, "", updates, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// SetVideoVerified toggles the moderation flag.
func (c *Client) SetVideoVerified(ctx context.Context, accessToken string, videoID int, isVerified bool) (*model.VideoDetail, error) {
	var video model.VideoDetail
	path := fmt.Sprintf("/videos/%d/admin", videoID)
	body := dto.SetVerifiedRequest{IsVerified: isVerified}
	if err := c.do(ctx, http.MethodPatch, path, accessToken, body, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// DeleteVideo permanently removes a submission.
func (c *Client) DeleteVideo(ctx context.Context, accessToken string, videoID int) error {
	path := fmt.Sprintf("/videos/%d", videoID)
	return c.do(ctx, http.MethodDelete, path, accessToken, nil, nil)
}

// IssueSignedURL asks the backend for a one-time write URL.
func (c *Client) IssueSignedURL(ctx context.Context, req dto.SignedURLRequest) (string, error) {
	var signedURL string
	if err := c.do(ctx, http.MethodPost, "/files/signed-url/public", "", req, &signedURL); err != nil {
		return "", err
	}
	return signedURL, nil
}

// AuthURL is the backend-constructed Vimeo authorization redirect target.
func (c *Client) AuthURL() string {
	return c.host + "/vimeoAuth"
}

type callbackQuery struct {
	Code        string `url:"code"`
	State       string `url:"state"`
	RedirectURI string `url:"redirectUri,omitempty"`
}

// ExchangeCallback forwards the authorization code and state token to the
// backend for a linkage confirmation.
func (c *Client) ExchangeCallback(ctx context.Context, code, state, redirectURI string) error {
	q, err := query.Values(callbackQuery{Code: code, State: state, RedirectURI: redirectURI})
	if err != nil {
		return fmt.Errorf("failed to encode callback query: %w", err)
	}
	return c.do(ctx, http.MethodGet, "/vimeoAuth/callback?"+q.Encode(), "", nil, nil)
}

type statusQuery struct {
	UserID int `url:"userId"`
}

// Status reports whether the user's Vimeo account is linked.
func (c *Client) Status(ctx context.Context, userID int) (bool, error) {
	q, err := query.Values(statusQuery{UserID: userID})
	if err != nil {
		return false, fmt.Errorf("failed to encode status query: %w", err)
	}
	var data dto.LinkageStatusData
	if err := c.do(ctx, http.MethodGet, "/vimeoAuth/status?"+q.Encode(), "", nil, &data); err != nil {
		logger.GetLogger().WithField("error", err).Debug("Vimeo auth status lookup failed")
		return false, err
	}
	return data.Linked, nil
}

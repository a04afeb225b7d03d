package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/model"
	"wesion-bff/domain/repository"
	"wesion-bff/infrastructure/logger"
	"wesion-bff/infrastructure/uploads"
)

// ErrFileTooLarge is a local rejection: the ceiling is checked before any
// network call is made.
type ErrFileTooLarge struct {
	Label model.UploadLabel
	Max   int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("the file size should not exceed %dMB", e.Max/(1024*1024))
}

// IUploadUsecase defines the file-transfer operations: the signed-URL relay
// for thumbnails and supplemental material, and the resumable Vimeo upload for
// video files.
type IUploadUsecase interface {
	IssueSignedURL(ctx context.Context, req dto.SignedURLRequest) (string, error)
	RelayToSignedURL(ctx context.Context, scope, signedURL string, label model.UploadLabel, contentType string, size int64, r io.Reader) (string, error)
	CreateVimeoUpload(ctx context.Context, name string, size int64) (*dto.VimeoCreateResponse, error)
	UploadVideoToVimeo(ctx context.Context, scope, fileName string, size int64, r io.Reader) (string, error)
	Progress(scope string) []model.UploadSession
}

type UploadUsecase struct {
	backend    repository.IBackend
	host       repository.IVideoHost // nil when Vimeo is not configured
	tracker    *uploads.Tracker
	httpClient *http.Client
}

func NewUploadUsecase(backend repository.IBackend, host repository.IVideoHost, tracker *uploads.Tracker) IUploadUsecase {
	return &UploadUsecase{
		backend:    backend,
		host:       host,
		tracker:    tracker,
		httpClient: &http.Client{Timeout: 10 * time.Minute},
	}
}

// IssueSignedURL proxies the signed-URL request to the backend.
func (u *UploadUsecase) IssueSignedURL(ctx context.Context, req dto.SignedURLRequest) (string, error) {
	if req.FileName == "" || req.FileType == "" {
		return "", fmt.Errorf("fileName and fileType are required")
	}
	signedURL, err := u.backend.IssueSignedURL(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to get signed URL: %w", err)
	}
	return signedURL, nil
}

// RelayToSignedURL issues a single PUT of the raw file bytes to the signed
// URL. No chunking, no retry: a failed PUT is reported once and the session is
// discarded. The returned file URL is the signed URL with its query stripped.
func (u *UploadUsecase) RelayToSignedURL(ctx context.Context, scope, signedURL string, label model.UploadLabel, contentType string, size int64, r io.Reader) (string, error) {
	max := model.MaxFileSize(label)
	if size > max {
		return "", &ErrFileTooLarge{Label: label, Max: max}
	}
	target, err := url.Parse(signedURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return "", fmt.Errorf("invalid signed URL")
	}

	u.tracker.Begin(scope, label, target.Path, size)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, r)
	if err != nil {
		u.tracker.Fail(scope, label, err)
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.ContentLength = size
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		u.tracker.Fail(scope, label, err)
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("failed to upload file: storage returned status %d", resp.StatusCode)
		u.tracker.Fail(scope, label, err)
		return "", err
	}

	fileURL := fmt.Sprintf("%s://%s%s", target.Scheme, target.Host, target.Path)
	u.tracker.Succeed(scope, label, fileURL)
	return fileURL, nil
}

// CreateVimeoUpload requests an upload handle from the host.
func (u *UploadUsecase) CreateVimeoUpload(ctx context.Context, name string, size int64) (*dto.VimeoCreateResponse, error) {
	if u.host == nil {
		return nil, fmt.Errorf("vimeo is not configured")
	}
	if name == "" || size <= 0 {
		return nil, fmt.Errorf("name and size are required")
	}
	return u.host.CreateUpload(ctx, name, size)
}

// UploadVideoToVimeo drives the full resumable upload: placeholder creation,
// then the chunked transfer with progress tracking. On success the permanent
// playback link is returned and published into the session; on terminal
// failure progress resets to zero and the caller must restart.
func (u *UploadUsecase) UploadVideoToVimeo(ctx context.Context, scope, fileName string, size int64, r io.Reader) (string, error) {
	if u.host == nil {
		return "", fmt.Errorf("vimeo is not configured")
	}
	if size > model.MaxVideoFileSize {
		return "", &ErrFileTooLarge{Label: model.LabelVideo, Max: model.MaxVideoFileSize}
	}

	// Placeholder creation failure aborts before the upload starts; only the
	// chunked transfer itself is retried.
	ticket, err := u.host.CreateUpload(ctx, fileName, size)
	if err != nil {
		return "", err
	}

	u.tracker.Begin(scope, model.LabelVideo, fileName, size)
	err = u.host.Upload(ctx, ticket.UploadLink, r, size, fileName, func(bytesUploaded, bytesTotal int64) {
		u.tracker.SetProgress(scope, model.LabelVideo, bytesUploaded, bytesTotal)
	})
	if err != nil {
		u.tracker.Fail(scope, model.LabelVideo, err)
		return "", fmt.Errorf("failed to upload video: %w", err)
	}

	u.tracker.Succeed(scope, model.LabelVideo, ticket.Link)
	logger.GetLogger().WithField("link", ticket.Link).Info("Video uploaded to Vimeo")
	return ticket.Link, nil
}

// Progress returns a snapshot of the submitter's own upload sessions.
func (u *UploadUsecase) Progress(scope string) []model.UploadSession {
	return u.tracker.Snapshot(scope)
}

package usecase_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/model"
	"wesion-bff/infrastructure/uploads"
	"wesion-bff/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayRejectsOversizeBeforeNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	uc := usecase.NewUploadUsecase(&stubBackend{}, nil, uploads.NewTracker())
	_, err := uc.RelayToSignedURL(context.Background(), "scope-1", srv.URL+"/f.png?sig=x", model.LabelThumbnail,
		"image/png", model.MaxOtherFileSize+1, strings.NewReader("x"))

	var tooLarge *usecase.ErrFileTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Contains(t, err.Error(), "20MB")
	assert.Zero(t, hits, "the ceiling is checked before any bytes move")
}

func TestRelayStripsQueryFromFileURL(t *testing.T) {
	var gotMethod, gotBody, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
	}))
	defer srv.Close()

	tracker := uploads.NewTracker()
	uc := usecase.NewUploadUsecase(&stubBackend{}, nil, tracker)

	body := "fake image bytes"
	fileURL, err := uc.RelayToSignedURL(context.Background(), "scope-1",
		srv.URL+"/bucket/cover.png?X-Signature=abc&X-Expires=60",
		model.LabelThumbnail, "image/png", int64(len(body)), strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/bucket/cover.png", fileURL, "the signature query never leaks into the stored URL")
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, body, gotBody)

	snap := tracker.Snapshot("scope-1")
	require.Len(t, snap, 1)
	assert.Equal(t, model.UploadSucceeded, snap[0].State)
}

func TestRelayFailureMarksSessionFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	tracker := uploads.NewTracker()
	uc := usecase.NewUploadUsecase(&stubBackend{}, nil, tracker)

	_, err := uc.RelayToSignedURL(context.Background(), "scope-1", srv.URL+"/f.pdf", model.LabelSupplementalMaterial,
		"application/pdf", 4, strings.NewReader("data"))

	require.Error(t, err)
	snap := tracker.Snapshot("scope-1")
	require.Len(t, snap, 1)
	assert.Equal(t, model.UploadFailed, snap[0].State)
	assert.Equal(t, int64(0), snap[0].BytesUploaded)
}

func TestRelayRejectsMalformedSignedURL(t *testing.T) {
	uc := usecase.NewUploadUsecase(&stubBackend{}, nil, uploads.NewTracker())
	_, err := uc.RelayToSignedURL(context.Background(), "scope-1", "not-a-url", model.LabelThumbnail,
		"image/png", 4, strings.NewReader("data"))
	assert.Error(t, err)
}

func TestVimeoUploadCeilingCheckedBeforeCreate(t *testing.T) {
	host := &stubVideoHost{}
	uc := usecase.NewUploadUsecase(&stubBackend{}, host, uploads.NewTracker())

	_, err := uc.UploadVideoToVimeo(context.Background(), "scope-1", "talk.mp4", model.MaxVideoFileSize+1, strings.NewReader("x"))

	var tooLarge *usecase.ErrFileTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Contains(t, err.Error(), "500MB")
	assert.Zero(t, host.createCalls)
}

func TestVimeoUploadPublishesLink(t *testing.T) {
	host := &stubVideoHost{}
	tracker := uploads.NewTracker()
	uc := usecase.NewUploadUsecase(&stubBackend{}, host, tracker)

	link, err := uc.UploadVideoToVimeo(context.Background(), "scope-1", "talk.mp4", 8, strings.NewReader("somebody"))

	require.NoError(t, err)
	assert.Equal(t, "https://vimeo.com/1", link)
	snap := tracker.Snapshot("scope-1")
	require.Len(t, snap, 1)
	assert.Equal(t, model.UploadSucceeded, snap[0].State)
	assert.Equal(t, link, snap[0].FileURL)
	assert.Empty(t, uc.Progress("scope-2"), "another submitter sees none of this transfer")
}

func TestVimeoCreateFailureAborts(t *testing.T) {
	host := &stubVideoHost{
		createFn: func(name string, size int64) (*dto.VimeoCreateResponse, error) {
			return nil, errors.New("quota exceeded")
		},
	}
	uc := usecase.NewUploadUsecase(&stubBackend{}, host, uploads.NewTracker())

	_, err := uc.UploadVideoToVimeo(context.Background(), "scope-1", "talk.mp4", 8, strings.NewReader("somebody"))

	require.Error(t, err)
	assert.Zero(t, host.uploadCalls, "placeholder failure means no transfer attempt")
}

func TestVimeoUploadFailureResetsProgress(t *testing.T) {
	host := &stubVideoHost{uploadErr: errors.New("stream cut")}
	tracker := uploads.NewTracker()
	uc := usecase.NewUploadUsecase(&stubBackend{}, host, tracker)

	_, err := uc.UploadVideoToVimeo(context.Background(), "scope-1", "talk.mp4", 8, strings.NewReader("somebody"))

	require.Error(t, err)
	snap := tracker.Snapshot("scope-1")
	require.Len(t, snap, 1)
	assert.Equal(t, model.UploadFailed, snap[0].State)
	assert.Equal(t, int64(0), snap[0].BytesUploaded)
}

func TestVimeoOperationsRequireConfiguredHost(t *testing.T) {
	uc := usecase.NewUploadUsecase(&stubBackend{}, nil, uploads.NewTracker())

	_, err := uc.CreateVimeoUpload(context.Background(), "talk.mp4", 8)
	assert.Error(t, err)

	_, err = uc.UploadVideoToVimeo(context.Background(), "scope-1", "talk.mp4", 8, strings.NewReader("somebody"))
	assert.Error(t, err)
}

func TestIssueSignedURLValidatesInput(t *testing.T) {
	backend := &stubBackend{
		signedURLFn: func(req dto.SignedURLRequest) (string, error) {
			return "https://storage.example.com/f.png?sig=abc", nil
		},
	}
	uc := usecase.NewUploadUsecase(backend, nil, uploads.NewTracker())

	_, err := uc.IssueSignedURL(context.Background(), dto.SignedURLRequest{FileName: "f.png"})
	assert.Error(t, err, "fileType is required")

	signedURL, err := uc.IssueSignedURL(context.Background(), dto.SignedURLRequest{
		FileName: "f.png", FileType: "image/png", Label: model.LabelThumbnail,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/f.png?sig=abc", signedURL)
}

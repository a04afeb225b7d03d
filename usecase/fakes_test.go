package usecase_test

import (
	"context"
	"errors"
	"io"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/model"
)

// stubBackend implements repository.IBackend with overridable functions and
// call counters, so tests can assert which upstream calls were (not) made.
type stubBackend struct {
	loginFn       func(req dto.ReqLogin) (*dto.LoginData, error)
	findByEmailFn func(email string) (int, error)
	categoriesFn  func() ([]model.Category, error)
	submitFn      func(payload map[string]interface{}) (*model.VideoDetail, error)
	updateFn      func(videoID int, updates map[string]interface{}) (*model.VideoDetail, error)
	signedURLFn   func(req dto.SignedURLRequest) (string, error)

	submitCalls int
}

func (s *stubBackend) Login(ctx context.Context, req dto.ReqLogin) (*dto.LoginData, error) {
	if s.loginFn != nil {
		return s.loginFn(req)
	}
	return nil, errors.New("not stubbed")
}

func (s *stubBackend) FindUserIDByEmail(ctx context.Context, email string) (int, error) {
	if s.findByEmailFn != nil {
		return s.findByEmailFn(email)
	}
	return 0, errors.New("not stubbed")
}

func (s *stubBackend) ListCategories(ctx context.Context) ([]model.Category, error) {
	if s.categoriesFn != nil {
		return s.categoriesFn()
	}
	return nil, errors.New("not stubbed")
}

func (s *stubBackend) ListVideos(ctx context.Context, accessToken string) ([]model.VideoDetail, error) {
	return []model.VideoDetail{}, nil
}

func (s *stubBackend) GetVideo(ctx context.Context, accessToken string, videoID int) (*model.VideoDetail, error) {
	return &model.VideoDetail{ID: videoID}, nil
}

func (s *stubBackend) SubmitVideoDetails(ctx context.Context, payload map[string]interface{}) (*model.VideoDetail, error) {
	s.submitCalls++
	if s.submitFn != nil {
		return s.submitFn(payload)
	}
	return &model.VideoDetail{ID: 1}, nil
}

func (s *stubBackend) UpdateVideo(ctx context.Context, videoID int, updates map[string]interface{}) (*model.VideoDetail, error) {
	if s.updateFn != nil {
		return s.updateFn(videoID, updates)
	}
	return &model.VideoDetail{ID: videoID}, nil
}

func (s *stubBackend) SetVideoVerified(ctx context.Context, accessToken string, videoID int, isVerified bool) (*model.VideoDetail, error) {
	return &model.VideoDetail{ID: videoID, IsVerified: isVerified}, nil
}

func (s *stubBackend) DeleteVideo(ctx context.Context, accessToken string, videoID int) error {
	return nil
}

func (s *stubBackend) IssueSignedURL(ctx context.Context, req dto.SignedURLRequest) (string, error) {
	if s.signedURLFn != nil {
		return s.signedURLFn(req)
	}
	return "", errors.New("not stubbed")
}

// stubVimeoAuth implements repository.IVimeoAuth.
type stubVimeoAuth struct {
	authURL       string
	exchangeErr   error
	linked        bool
	statusErr     error
	exchangeCalls int
	statusCalls   int
}

func (s *stubVimeoAuth) AuthURL() string { return s.authURL }

func (s *stubVimeoAuth) ExchangeCallback(ctx context.Context, code, state, redirectURI string) error {
	s.exchangeCalls++
	return s.exchangeErr
}

func (s *stubVimeoAuth) Status(ctx context.Context, userID int) (bool, error) {
	s.statusCalls++
	return s.linked, s.statusErr
}

// stubVideoHost implements repository.IVideoHost.
type stubVideoHost struct {
	createFn    func(name string, size int64) (*dto.VimeoCreateResponse, error)
	uploadErr   error
	createCalls int
	uploadCalls int
}

func (s *stubVideoHost) CreateUpload(ctx context.Context, name string, size int64) (*dto.VimeoCreateResponse, error) {
	s.createCalls++
	if s.createFn != nil {
		return s.createFn(name, size)
	}
	return &dto.VimeoCreateResponse{UploadLink: "https://upload.vimeo.com/u/1", Link: "https://vimeo.com/1"}, nil
}

func (s *stubVideoHost) Upload(ctx context.Context, uploadLink string, r io.Reader, size int64, fileName string, onProgress func(bytesUploaded, bytesTotal int64)) error {
	s.uploadCalls++
	if s.uploadErr != nil {
		return s.uploadErr
	}
	if onProgress != nil {
		onProgress(size, size)
	}
	return nil
}

func validDraft() model.Draft {
	return model.Draft{
		Email:          "applicant@example.com",
		CategoryIDs:    []int{3, 7},
		Title:          "My submission",
		Description:    "A description long enough to pass",
		VideoHostedOn:  model.HostedYouTube,
		URL:            "https://youtube.com/watch?v=abc",
		UnlockCriteria: []model.UnlockCriterion{model.UnlockPublic},
	}
}

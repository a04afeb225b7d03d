package repository

import (
	"context"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/model"
)

// IBackend defines the interface to the upstream REST backend that owns all
// persistence: users, categories, video submissions and signed URLs.
type IBackend interface {
	// Auth operations
	Login(ctx context.Context, req dto.ReqLogin) (*dto.LoginData, error)

	// User operations
	FindUserIDByEmail(ctx context.Context, email string) (int, error)

	// Reference data
	ListCategories(ctx context.Context) ([]model.Category, error)

	// Video operations (bearer token required for admin calls)
	ListVideos(ctx context.Context, accessToken string) ([]model.VideoDetail, error)
	GetVideo(ctx context.Context, accessToken string, videoID int) (*model.VideoDetail, error)
	SubmitVideoDetails(ctx context.Context, payload map[string]interface{}) (*model.VideoDetail, error)
	UpdateVideo(ctx context.Context, videoID int, updates map[string]interface{}) (*model.VideoDetail, error)
	SetVideoVerified(ctx context.Context, accessToken string, videoID int, isVerified bool) (*model.VideoDetail, error)
	DeleteVideo(ctx context.Context, accessToken string, videoID int) error

	// File operations
	IssueSignedURL(ctx context.Context, req dto.SignedURLRequest) (string, error)
}

// IVimeoAuth defines the backend-brokered Vimeo OAuth operations.
type IVimeoAuth interface {
	// AuthURL returns the backend-constructed authorization redirect target.
	AuthURL() string
	// ExchangeCallback forwards the authorization code and state token for a
	// linkage confirmation.
	ExchangeCallback(ctx context.Context, code, state, redirectURI string) error
	// Status returns whether the user's Vimeo account is linked.
	Status(ctx context.Context, userID int) (bool, error)
}

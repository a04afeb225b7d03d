package usecase

import (
	"context"
	"fmt"

	"wesion-bff/domain/model"
	"wesion-bff/domain/repository"
	"wesion-bff/infrastructure/logger"
)

// IVideoUsecase covers the admin moderation surface: listing, inspecting,
// verifying and removing submissions. The caller's backend access token is
// forwarded on every call.
type IVideoUsecase interface {
	List(ctx context.Context, accessToken string) ([]model.VideoDetail, error)
	Get(ctx context.Context, accessToken string, videoID int) (*model.VideoDetail, error)
	SetVerified(ctx context.Context, accessToken string, videoID int, isVerified bool) (*model.VideoDetail, error)
	Delete(ctx context.Context, accessToken string, videoID int) error
}

type VideoUsecase struct {
	backend repository.IBackend
}

func NewVideoUsecase(backend repository.IBackend) IVideoUsecase {
	return &VideoUsecase{backend: backend}
}

func (u *VideoUsecase) List(ctx context.Context, accessToken string) ([]model.VideoDetail, error) {
	videos, err := u.backend.ListVideos(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}
	if videos == nil {
		videos = []model.VideoDetail{}
	}
	return videos, nil
}

func (u *VideoUsecase) Get(ctx context.Context, accessToken string, videoID int) (*model.VideoDetail, error) {
	if videoID <= 0 {
		return nil, fmt.Errorf("video ID is required")
	}
	return u.backend.GetVideo(ctx, accessToken, videoID)
}

// SetVerified flips the moderation flag. The backend answers with the updated
// record so the caller can re-render without a second fetch.
func (u *VideoUsecase) SetVerified(ctx context.Context, accessToken string, videoID int, isVerified bool) (*model.VideoDetail, error) {
	if videoID <= 0 {
		return nil, fmt.Errorf("video ID is required")
	}
	video, err := u.backend.SetVideoVerified(ctx, accessToken, videoID, isVerified)
	if err != nil {
		return nil, fmt.Errorf("failed to update verification status: %w", err)
	}
	logger.GetLogger().
		WithField("videoId", videoID).
		WithField("isVerified", isVerified).
		Info("Video verification status changed")
	return video, nil
}

func (u *VideoUsecase) Delete(ctx context.Context, accessToken string, videoID int) error {
	if videoID <= 0 {
		return fmt.Errorf("video ID is required")
	}
	if err := u.backend.DeleteVideo(ctx, accessToken, videoID); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	logger.GetLogger().WithField("videoId", videoID).Info("Video deleted")
	return nil
}

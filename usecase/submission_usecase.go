package usecase

import (
	"context"
	"errors"
	"fmt"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/model"
	"wesion-bff/domain/repository"
	"wesion-bff/infrastructure/logger"
	"wesion-bff/infrastructure/uploads"
)

// Local rejections: neither reaches the submission endpoint.
var (
	ErrNotLinked        = errors.New("please link your Vimeo account before submitting")
	ErrUploadInProgress = errors.New("please wait for uploads to finish before submitting")
)

// ISubmissionUsecase assembles validated drafts into backend submissions.
type ISubmissionUsecase interface {
	Submit(ctx context.Context, req dto.SubmitVideoDetailsRequest) (*model.VideoDetail, error)
	Update(ctx context.Context, videoID int, req dto.VideoUpdateRequest) (*model.VideoDetail, error)
}

type SubmissionUsecase struct {
	backend   repository.IBackend
	vimeoAuth repository.IVimeoAuth
	tracker   *uploads.Tracker
}

func NewSubmissionUsecase(backend repository.IBackend, vimeoAuth repository.IVimeoAuth, tracker *uploads.Tracker) ISubmissionUsecase {
	return &SubmissionUsecase{backend: backend, vimeoAuth: vimeoAuth, tracker: tracker}
}

// Submit validates the draft and posts it. Submission is refused locally while
// any of the submitter's own uploads is still in flight, and when the hosting
// choice is a personal Vimeo account that has not completed linking.
func (u *SubmissionUsecase) Submit(ctx context.Context, req dto.SubmitVideoDetailsRequest) (*model.VideoDetail, error) {
	if err := req.Draft.Validate(); err != nil {
		return nil, err
	}

	if req.Draft.VideoHostedOn == model.HostedVimeoPersonal {
		if req.UserID == 0 {
			return nil, ErrNotLinked
		}
		linked, err := u.vimeoAuth.Status(ctx, req.UserID)
		if err != nil || !linked {
			return nil, ErrNotLinked
		}
	}

	if u.tracker.AnyInProgress(req.UploadScope) {
		return nil, ErrUploadInProgress
	}

	video, err := u.backend.SubmitVideoDetails(ctx, buildSubmitPayload(req.Draft))
	if err != nil {
		return nil, fmt.Errorf("failed to submit video details: %w", err)
	}
	logger.GetLogger().WithField("videoId", video.ID).Info("Video details submitted")
	return video, nil
}

// buildSubmitPayload assembles the outgoing body. The category selection is
// normalized to a one-element numeric list; keywords are never nil.
func buildSubmitPayload(d model.Draft) map[string]interface{} {
	keywords := d.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	tagNames := d.TagNames
	if tagNames == nil {
		tagNames = []string{}
	}
	payload := map[string]interface{}{
		"email":                   d.Email,
		"categoryIds":             []int{d.CategoryIDs[0]},
		"title":                   d.Title,
		"description":             d.Description,
		"transcript":              d.Transcript,
		"keywords":                keywords,
		"tagNames":                tagNames,
		"videoHostedOn":           d.VideoHostedOn,
		"url":                     d.URL,
		"thumbnail":               d.Thumbnail,
		"supplementalMaterialUrl": d.SupplementalMaterialURL,
		"unlockCriteria":          d.UnlockCriteria,
	}
	if d.AmtPointsThreshold != nil {
		payload["amtPointsThreshold"] = *d.AmtPointsThreshold
	}
	return payload
}

// Update sends only the allow-listed mutable fields. Classification fields
// (categories, hosting choice) are immutable after submission and never appear
// in the outgoing payload.
func (u *SubmissionUsecase) Update(ctx context.Context, videoID int, req dto.VideoUpdateRequest) (*model.VideoDetail, error) {
	if videoID <= 0 {
		return nil, fmt.Errorf("video ID is required")
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		if len(*req.Title) < 5 {
			return nil, fmt.Errorf("video title must be at least 5 characters")
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		if len(*req.Description) < 10 {
			return nil, fmt.Errorf("video description must be at least 10 characters")
		}
		updates["description"] = *req.Description
	}
	if req.Transcript != nil {
		updates["transcript"] = *req.Transcript
	}
	if req.Keywords != nil {
		updates["keywords"] = *req.Keywords
	}
	if req.TagNames != nil {
		updates["tagNames"] = *req.TagNames
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.SupplementalMaterialURL != nil {
		updates["supplementalMaterialUrl"] = *req.SupplementalMaterialURL
	}
	if req.UnlockCriteria != nil {
		for _, c := range *req.UnlockCriteria {
			if !c.Valid() {
				return nil, fmt.Errorf("invalid unlock criterion: %s", c)
			}
		}
		updates["unlockCriteria"] = *req.UnlockCriteria
	}
	if req.AmtPointsThreshold != nil {
		updates["amtPointsThreshold"] = *req.AmtPointsThreshold
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields provided to update")
	}

	video, err := u.backend.UpdateVideo(ctx, videoID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return video, nil
}

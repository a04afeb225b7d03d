package dto

import "wesion-bff/domain/model"

// ReqLogin is the admin login request body.
type ReqLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginData is the payload the backend returns on successful login.
type LoginData struct {
	AccessToken string     `json:"accessToken"`
	User        model.User `json:"user"`
}

// SubmitVideoDetailsRequest carries the assembled draft plus the client-side
// context the orchestrator gates on. UploadScope identifies the submitter's
// upload sessions; the handler fills it from the scope cookie, never the body.
type SubmitVideoDetailsRequest struct {
	model.Draft
	UserID      int    `json:"userId,omitempty"`
	UploadScope string `json:"-"`
}

// VideoUpdateRequest is the update-mode submission. Only these fields are
// mutable; classification (categories, hosting choice) is fixed at submission.
type VideoUpdateRequest struct {
	Title                   *string                  `json:"title,omitempty"`
	Description             *string                  `json:"description,omitempty"`
	Transcript              *string                  `json:"transcript,omitempty"`
	Keywords                *[]string                `json:"keywords,omitempty"`
	TagNames                *[]string                `json:"tagNames,omitempty"`
	URL                     *string                  `json:"url,omitempty"`
	Thumbnail               *string                  `json:"thumbnail,omitempty"`
	SupplementalMaterialURL *string                  `json:"supplementalMaterialUrl,omitempty"`
	UnlockCriteria          *[]model.UnlockCriterion `json:"unlockCriteria,omitempty"`
	AmtPointsThreshold      *int                     `json:"amtPointsThreshold,omitempty"`
}

// SetVerifiedRequest toggles a submission's moderation status.
type SetVerifiedRequest struct {
	IsVerified bool `json:"isVerified"`
}

// FindByEmailData is the backend payload for the email verification gate.
type FindByEmailData struct {
	UserID int `json:"userId"`
}

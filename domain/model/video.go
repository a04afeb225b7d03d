package model

import (
	"fmt"
	"net/mail"
	"net/url"
	"time"
)

// HostedOn identifies where the submitted video lives.
type HostedOn string

const (
	HostedVimeoWesion   HostedOn = "vimeoWesion"   // uploaded to the platform's Vimeo account
	HostedVimeoPersonal HostedOn = "vimeoPersonal" // applicant's own Vimeo account (requires linking)
	HostedYouTube       HostedOn = "youtube"
	HostedOther         HostedOn = "others"
)

// Valid reports whether h is a known hosting choice.
func (h HostedOn) Valid() bool {
	switch h {
	case HostedVimeoWesion, HostedVimeoPersonal, HostedYouTube, HostedOther:
		return true
	}
	return false
}

// UnlockCriterion is one condition under which a viewer may access a video.
type UnlockCriterion string

const (
	UnlockPublic                UnlockCriterion = "public"
	UnlockAccountabilityPartner UnlockCriterion = "accountabilityPartner"
	UnlockAmtPoints             UnlockCriterion = "amtPoints"
)

// Valid reports whether c is a known unlock criterion.
func (c UnlockCriterion) Valid() bool {
	switch c {
	case UnlockPublic, UnlockAccountabilityPartner, UnlockAmtPoints:
		return true
	}
	return false
}

// Draft is the in-memory, not-yet-submitted video metadata record.
type Draft struct {
	Email                   string            `json:"email"`
	CategoryIDs             []int             `json:"categoryIds"`
	Title                   string            `json:"title"`
	Description             string            `json:"description"`
	Transcript              string            `json:"transcript"`
	Keywords                []string          `json:"keywords"`
	TagNames                []string          `json:"tagNames"`
	VideoHostedOn           HostedOn          `json:"videoHostedOn"`
	URL                     string            `json:"url,omitempty"`
	Thumbnail               string            `json:"thumbnail,omitempty"`
	SupplementalMaterialURL string            `json:"supplementalMaterialUrl,omitempty"`
	UnlockCriteria          []UnlockCriterion `json:"unlockCriteria"`
	AmtPointsThreshold      *int              `json:"amtPointsThreshold,omitempty"`
}

// HasUnlock reports whether the draft carries the given unlock criterion.
func (d *Draft) HasUnlock(c UnlockCriterion) bool {
	for _, u := range d.UnlockCriteria {
		if u == c {
			return true
		}
	}
	return false
}

// Validate enforces the submission schema. Conditional requiredness: a URL is
// required unless the video file is uploaded to the platform's own account, and
// the points threshold is required iff the amtPoints criterion is selected.
func (d *Draft) Validate() error {
	if _, err := mail.ParseAddress(d.Email); err != nil {
		return fmt.Errorf("please enter a valid email address")
	}
	if len(d.CategoryIDs) == 0 {
		return fmt.Errorf("please select a category")
	}
	if len(d.Title) < 5 {
		return fmt.Errorf("video title must be at least 5 characters")
	}
	if len(d.Description) < 10 {
		return fmt.Errorf("video description must be at least 10 characters")
	}
	if !d.VideoHostedOn.Valid() {
		return fmt.Errorf("invalid hosting choice: %s", d.VideoHostedOn)
	}
	if d.URL != "" {
		if u, err := url.Parse(d.URL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("please enter a valid URL")
		}
	} else if d.VideoHostedOn != HostedVimeoWesion {
		return fmt.Errorf("a video URL is required for this hosting choice")
	}
	if len(d.UnlockCriteria) == 0 {
		return fmt.Errorf("at least one unlock criteria must be selected")
	}
	for _, c := range d.UnlockCriteria {
		if !c.Valid() {
			return fmt.Errorf("invalid unlock criterion: %s", c)
		}
	}
	if d.HasUnlock(UnlockAmtPoints) {
		if d.AmtPointsThreshold == nil || *d.AmtPointsThreshold <= 0 {
			return fmt.Errorf("a points threshold is required for points-gated videos")
		}
	} else if d.AmtPointsThreshold != nil {
		return fmt.Errorf("points threshold only applies to points-gated videos")
	}
	return nil
}

// Category is a reference-data video category.
type Category struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
}

// Tag is a free-form tag attached to a submission.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// VideoDetail is a stored submission as returned by the backend, with
// embedded relations.
type VideoDetail struct {
	ID                      int               `json:"id"`
	Title                   string            `json:"title"`
	Description             string            `json:"description"`
	Transcript              string            `json:"transcript"`
	Keywords                []string          `json:"keywords"`
	URL                     string            `json:"url"`
	Thumbnail               string            `json:"thumbnail"`
	SupplementalMaterialURL string            `json:"supplementalMaterialUrl"`
	VideoHostedOn           HostedOn          `json:"videoHostedOn"`
	UnlockCriteria          []UnlockCriterion `json:"unlockCriteria"`
	AmtPointsThreshold      *int              `json:"amtPointsThreshold,omitempty"`
	IsVerified              bool              `json:"isVerified"`
	User                    *User             `json:"user,omitempty"`
	Categories              []Category        `json:"categories,omitempty"`
	Tags                    []Tag             `json:"tags,omitempty"`
	CreatedAt               time.Time         `json:"createdAt"`
	UpdatedAt               time.Time         `json:"updatedAt"`
}

package model

import "math"

// UploadLabel classifies a file transfer by its target form field.
type UploadLabel string

const (
	LabelVideo                UploadLabel = "video"
	LabelThumbnail            UploadLabel = "thumbnail"
	LabelSupplementalMaterial UploadLabel = "supplementalMaterial"
)

// Size ceilings enforced before any network call.
const (
	MaxVideoFileSize = 500 * 1024 * 1024
	MaxOtherFileSize = 20 * 1024 * 1024
)

// MaxFileSize returns the size ceiling for the label's file category.
func MaxFileSize(label UploadLabel) int64 {
	if label == LabelVideo {
		return MaxVideoFileSize
	}
	return MaxOtherFileSize
}

// UploadState is the lifecycle state of one in-flight file transfer.
type UploadState string

const (
	UploadPending   UploadState = "pending"
	UploadRunning   UploadState = "running"
	UploadSucceeded UploadState = "succeeded"
	UploadFailed    UploadState = "failed"
)

// UploadSession tracks one in-flight file transfer. It is created when the
// transfer starts and discarded on success or when the file is replaced.
type UploadSession struct {
	Label         UploadLabel `json:"label"`
	FileName      string      `json:"fileName"`
	BytesUploaded int64       `json:"bytesUploaded"`
	BytesTotal    int64       `json:"bytesTotal"`
	State         UploadState `json:"state"`
	FileURL       string      `json:"fileUrl,omitempty"`
	Error         string      `json:"error,omitempty"`
}

// Progress returns the percent uploaded with two-decimal precision.
func (s *UploadSession) Progress() float64 {
	if s.BytesTotal <= 0 {
		return 0
	}
	pct := float64(s.BytesUploaded) / float64(s.BytesTotal) * 100
	return math.Round(pct*100) / 100
}

// InProgress reports whether the transfer has started but not reached a
// terminal state.
func (s *UploadSession) InProgress() bool {
	return s.State == UploadPending || s.State == UploadRunning
}

package dto

import "wesion-bff/domain/model"

// SignedURLRequest asks the backend for a one-time write URL.
type SignedURLRequest struct {
	FileName string            `json:"fileName" binding:"required"`
	FileType string            `json:"fileType" binding:"required"`
	Label    model.UploadLabel `json:"label" binding:"required"`
}

// FileUploadData is returned after a successful signed-URL relay.
type FileUploadData struct {
	FileURL string `json:"fileUrl"`
}

// VimeoCreateRequest asks the video host for an upload handle.
type VimeoCreateRequest struct {
	Name string `json:"name" binding:"required"`
	Size int64  `json:"size" binding:"required"`
}

// VimeoCreateResponse carries the host-side upload endpoint and the permanent
// playback link.
type VimeoCreateResponse struct {
	UploadLink string `json:"upload_link"`
	Link       string `json:"link"`
}

// LinkingStartRequest begins the Vimeo account-linking flow. The draft is
// parked server-side so it survives the authorization redirect.
type LinkingStartRequest struct {
	UserID int         `json:"userId" binding:"required"`
	Draft  model.Draft `json:"draft"`
}

// LinkingStartData is returned to the client before it navigates away.
type LinkingStartData struct {
	AuthURL string          `json:"authUrl"`
	Token   string          `json:"token"`
	State   model.LinkState `json:"state"`
}

// LinkingCallbackData is returned when the authorization round trip completes.
type LinkingCallbackData struct {
	State model.LinkState `json:"state"`
	Draft *model.Draft    `json:"draft,omitempty"`
}

// LinkageStatusData is the backend's linkage flag for one user.
type LinkageStatusData struct {
	Linked bool `json:"linked"`
}

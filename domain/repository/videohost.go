package repository

import (
	"context"
	"io"

	"wesion-bff/domain/dto"
)

// IVideoHost defines the interface to the third-party video host.
type IVideoHost interface {
	// CreateUpload requests a host-side upload handle: a resumable upload
	// endpoint plus the permanent playback link.
	CreateUpload(ctx context.Context, name string, size int64) (*dto.VimeoCreateResponse, error)
	// Upload streams the file to the upload endpoint with the host's resumable
	// chunked-transfer protocol. onProgress receives the percent uploaded with
	// two-decimal precision.
	Upload(ctx context.Context, uploadLink string, r io.Reader, size int64, fileName string, onProgress func(bytesUploaded, bytesTotal int64)) error
}

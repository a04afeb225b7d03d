package vimeo

import (
	"context"
	"fmt"
	"io"
	"time"

	"wesion-bff/infrastructure/logger"

	tus "github.com/eventials/go-tus"
)

// Upload streams the file to the given tus upload link. Progress callbacks
// carry raw byte counts; the caller computes display percentages. A failed
// chunk is retried on the backoff schedule, resuming from the last acknowledged
// offset; once the schedule is exhausted the upload is a terminal failure and
// must be restarted from zero with a fresh placeholder.
func (c *Client) Upload(ctx context.Context, uploadLink string, r io.Reader, size int64, fileName string, onProgress func(bytesUploaded, bytesTotal int64)) error {
	cfg := tus.DefaultConfig()
	cfg.ChunkSize = c.chunkSize
	cfg.Resume = false
	cfg.HttpClient = c.httpClient

	client, err := tus.NewClient(uploadLink, cfg)
	if err != nil {
		return fmt.Errorf("failed to create tus client: %w", err)
	}

	meta := tus.Metadata{"filename": fileName}
	upload := tus.NewUpload(r, size, meta, "")
	uploader := tus.NewUploader(client, uploadLink, upload, 0)

	progress, stopProgress := progressPump(onProgress)
	uploader.NotifyUploadProgress(progress)
	defer stopProgress()

	var lastErr error
	for attempt, delay := range retryDelays {
		if delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
		// Upload resumes from the uploader's current offset, so a retry does
		// not restart from byte zero.
		if lastErr = uploader.Upload(); lastErr == nil {
			logger.GetLogger().WithField("fileName", fileName).Info("Vimeo upload finished")
			return nil
		}
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":   lastErr,
			"attempt": attempt + 1,
			"offset":  uploader.Offset(),
		}).Warn("Vimeo upload attempt failed")
	}
	return fmt.Errorf("vimeo upload failed after %d attempts: %w", len(retryDelays), lastErr)
}

// progressPump returns a channel for the uploader's progress broadcasts and a
// stop function. The channel carries a buffer so a broadcast landing after
// stop never blocks the sender; go-tus emits its final event after Upload
// returns, when nobody is receiving anymore.
func progressPump(onProgress func(bytesUploaded, bytesTotal int64)) (chan tus.Upload, func()) {
	progress := make(chan tus.Upload, 16)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case u := <-progress:
				if onProgress != nil {
					onProgress(u.Offset(), u.Size())
				}
			case <-done:
				return
			}
		}
	}()
	return progress, func() { close(done) }
}

package uploads_test

import (
	"errors"
	"testing"

	"wesion-bff/domain/model"
	"wesion-bff/infrastructure/uploads"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerLifecycle(t *testing.T) {
	tr := uploads.NewTracker()
	assert.False(t, tr.AnyInProgress("alice"))

	tr.Begin("alice", model.LabelVideo, "talk.mp4", 1000)
	assert.True(t, tr.AnyInProgress("alice"))

	tr.SetProgress("alice", model.LabelVideo, 500, 1000)
	snap := tr.Snapshot("alice")
	require.Len(t, snap, 1)
	assert.Equal(t, 50.0, snap[0].Progress())

	tr.Succeed("alice", model.LabelVideo, "https://vimeo.com/123")
	assert.False(t, tr.AnyInProgress("alice"))
	snap = tr.Snapshot("alice")
	require.Len(t, snap, 1)
	assert.Equal(t, model.UploadSucceeded, snap[0].State)
	assert.Equal(t, "https://vimeo.com/123", snap[0].FileURL)
	assert.Equal(t, int64(1000), snap[0].BytesUploaded)
}

func TestTrackerFailResetsProgress(t *testing.T) {
	tr := uploads.NewTracker()
	tr.Begin("alice", model.LabelThumbnail, "cover.png", 400)
	tr.SetProgress("alice", model.LabelThumbnail, 300, 400)

	tr.Fail("alice", model.LabelThumbnail, errors.New("connection reset"))

	snap := tr.Snapshot("alice")
	require.Len(t, snap, 1)
	assert.Equal(t, model.UploadFailed, snap[0].State)
	assert.Equal(t, int64(0), snap[0].BytesUploaded, "a failed transfer restarts from zero")
	assert.Equal(t, "connection reset", snap[0].Error)
	assert.False(t, tr.AnyInProgress("alice"))
}

func TestTrackerReplacesSessionPerLabel(t *testing.T) {
	tr := uploads.NewTracker()
	tr.Begin("alice", model.LabelVideo, "first.mp4", 100)
	tr.Succeed("alice", model.LabelVideo, "https://vimeo.com/1")

	tr.Begin("alice", model.LabelVideo, "second.mp4", 200)

	snap := tr.Snapshot("alice")
	require.Len(t, snap, 1)
	assert.Equal(t, "second.mp4", snap[0].FileName)
	assert.Equal(t, model.UploadRunning, snap[0].State)
	assert.Empty(t, snap[0].FileURL)
}

func TestTrackerTracksLabelsIndependently(t *testing.T) {
	tr := uploads.NewTracker()
	tr.Begin("alice", model.LabelVideo, "talk.mp4", 100)
	tr.Begin("alice", model.LabelThumbnail, "cover.png", 50)

	tr.Succeed("alice", model.LabelThumbnail, "https://cdn.example.com/cover.png")

	assert.True(t, tr.AnyInProgress("alice"), "the video transfer is still running")
	assert.Len(t, tr.Snapshot("alice"), 2)
}

func TestTrackerScopesAreIsolated(t *testing.T) {
	tr := uploads.NewTracker()
	tr.Begin("alice", model.LabelVideo, "alices-talk.mp4", 1000)

	assert.False(t, tr.AnyInProgress("bob"), "one submitter's transfer must not gate another's")

	tr.Begin("bob", model.LabelVideo, "bobs-talk.mp4", 2000)
	tr.SetProgress("bob", model.LabelVideo, 2000, 2000)
	tr.Succeed("bob", model.LabelVideo, "https://vimeo.com/456")

	snap := tr.Snapshot("alice")
	require.Len(t, snap, 1)
	assert.Equal(t, "alices-talk.mp4", snap[0].FileName)
	assert.Equal(t, model.UploadRunning, snap[0].State, "bob's transfer must not clobber alice's session")
	assert.True(t, tr.AnyInProgress("alice"))
}

func TestTrackerSnapshotOmitsOtherScopes(t *testing.T) {
	tr := uploads.NewTracker()
	tr.Begin("alice", model.LabelVideo, "private-cut.mp4", 100)
	tr.Begin("bob", model.LabelThumbnail, "cover.png", 50)

	snap := tr.Snapshot("bob")
	require.Len(t, snap, 1)
	assert.Equal(t, "cover.png", snap[0].FileName)

	assert.Empty(t, tr.Snapshot("carol"))
}

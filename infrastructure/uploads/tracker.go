package uploads

import (
	"sync"

	"wesion-bff/domain/model"
)

// scopeKey addresses one transfer: the submitter's scope plus the target form
// field. Scopes keep concurrent submitters invisible to each other; within a
// scope the labels are field-disjoint, so two of a submitter's own transfers
// never contend on the same entry either.
type scopeKey struct {
	scope string
	label model.UploadLabel
}

// Tracker keeps the in-flight upload sessions for every submitter. The lock
// only guards the map itself.
type Tracker struct {
	mu       sync.RWMutex
	sessions map[scopeKey]*model.UploadSession
}

func NewTracker() *Tracker {
	return &Tracker{sessions: make(map[scopeKey]*model.UploadSession)}
}

// Begin opens a session for the submitter's label. Re-selecting a file
// replaces the previous session, discarding whatever state it had.
func (t *Tracker) Begin(scope string, label model.UploadLabel, fileName string, bytesTotal int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[scopeKey{scope, label}] = &model.UploadSession{
		Label:      label,
		FileName:   fileName,
		BytesTotal: bytesTotal,
		State:      model.UploadRunning,
	}
}

// SetProgress records the acknowledged byte offset of a running transfer.
func (t *Tracker) SetProgress(scope string, label model.UploadLabel, bytesUploaded, bytesTotal int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.sessions[scopeKey{scope, label}]; ok && s.InProgress() {
		s.BytesUploaded = bytesUploaded
		s.BytesTotal = bytesTotal
	}
}

// Succeed marks the session terminal with its resulting URL.
func (t *Tracker) Succeed(scope string, label model.UploadLabel, fileURL string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.sessions[scopeKey{scope, label}]; ok {
		s.State = model.UploadSucceeded
		s.FileURL = fileURL
		s.BytesUploaded = s.BytesTotal
	}
}

// Fail marks the session terminal and resets its progress to zero; the user
// must re-select the file and restart.
func (t *Tracker) Fail(scope string, label model.UploadLabel, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.sessions[scopeKey{scope, label}]; ok {
		s.State = model.UploadFailed
		s.BytesUploaded = 0
		if err != nil {
			s.Error = err.Error()
		}
	}
}

// AnyInProgress reports whether any of the submitter's own transfers has not
// reached a terminal state. Other submitters' transfers never factor in.
func (t *Tracker) AnyInProgress(scope string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for k, s := range t.sessions {
		if k.scope == scope && s.InProgress() {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the submitter's sessions for progress reporting.
func (t *Tracker) Snapshot(scope string) []model.UploadSession {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]model.UploadSession, 0, 3)
	for k, s := range t.sessions {
		if k.scope == scope {
			out = append(out, *s)
		}
	}
	return out
}

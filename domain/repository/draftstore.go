package repository

import (
	"context"
	"time"

	"wesion-bff/domain/model"
)

// IDraftStore parks submission drafts across the Vimeo authorization redirect,
// keyed by a short-lived linking token.
type IDraftStore interface {
	Save(ctx context.Context, token string, draft model.Draft, ttl time.Duration) error
	// Take returns the draft and removes the entry, so a token restores at
	// most once.
	Take(ctx context.Context, token string) (*model.Draft, error)
}

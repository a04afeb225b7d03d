package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/model"
	"wesion-bff/domain/repository"
	"wesion-bff/infrastructure/draftstore"
	"wesion-bff/infrastructure/logger"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// ILinkingUsecase drives the Vimeo account-linking state machine:
// unauthenticated -> redirecting -> (external) -> callbackReceived -> linked
// or failed. The draft is parked server-side under a short-lived token so it
// survives the authorization redirect.
type ILinkingUsecase interface {
	Start(ctx context.Context, userID int, draft model.Draft) (*dto.LinkingStartData, error)
	Callback(ctx context.Context, code, state, token, redirectURI string) (*dto.LinkingCallbackData, error)
	Status(ctx context.Context, userID int) (bool, error)
}

type LinkingUsecase struct {
	vimeoAuth repository.IVimeoAuth
	drafts    repository.IDraftStore
	secretKey string
	ttl       time.Duration
}

func NewLinkingUsecase(vimeoAuth repository.IVimeoAuth, drafts repository.IDraftStore, secretKey string, ttl time.Duration) ILinkingUsecase {
	return &LinkingUsecase{vimeoAuth: vimeoAuth, drafts: drafts, secretKey: secretKey, ttl: ttl}
}

// Start moves unauthenticated -> redirecting. The caller must already hold a
// verified user id; the draft is saved before the browser navigates away.
func (u *LinkingUsecase) Start(ctx context.Context, userID int, draft model.Draft) (*dto.LinkingStartData, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("a verified user is required to link a Vimeo account")
	}

	claims := model.LinkingClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(u.ttl).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to sign linking token: %w", err)
	}

	if err := u.drafts.Save(ctx, token, draft, u.ttl); err != nil {
		return nil, fmt.Errorf("failed to park draft: %w", err)
	}

	logger.GetLogger().WithField("userId", userID).Info("Vimeo linking started")
	return &dto.LinkingStartData{
		AuthURL: u.vimeoAuth.AuthURL(),
		Token:   token,
		State:   model.LinkRedirecting,
	}, nil
}

// Callback handles the return from Vimeo: callbackReceived -> linked on
// backend confirmation (restoring and clearing the parked draft), or
// callbackReceived -> failed, in which case the draft is not restored.
func (u *LinkingUsecase) Callback(ctx context.Context, code, state, token, redirectURI string) (*dto.LinkingCallbackData, error) {
	if code == "" || state == "" {
		return &dto.LinkingCallbackData{State: model.LinkFailed}, fmt.Errorf("missing required parameters from Vimeo")
	}

	if token != "" {
		var claims model.LinkingClaims
		parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(u.secretKey), nil
		})
		if err != nil || !parsed.Valid {
			return &dto.LinkingCallbackData{State: model.LinkFailed}, fmt.Errorf("linking token is invalid or expired")
		}
	}

	if err := u.vimeoAuth.ExchangeCallback(ctx, code, state, redirectURI); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Vimeo callback exchange failed")
		return &dto.LinkingCallbackData{State: model.LinkFailed}, fmt.Errorf("failed to complete Vimeo authentication: %w", err)
	}

	data := &dto.LinkingCallbackData{State: model.LinkLinked}
	if token != "" {
		draft, err := u.drafts.Take(ctx, token)
		if err != nil && !errors.Is(err, draftstore.ErrNotFound) {
			logger.GetLogger().WithField("error", err).Warn("Parked draft could not be restored")
		}
		data.Draft = draft
	}
	logger.GetLogger().Info("Vimeo account linked")
	return data, nil
}

// Status reports the backend's linkage flag for the user.
func (u *LinkingUsecase) Status(ctx context.Context, userID int) (bool, error) {
	if userID <= 0 {
		return false, fmt.Errorf("user ID is required")
	}
	return u.vimeoAuth.Status(ctx, userID)
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/repository"
	"wesion-bff/infrastructure/logger"
)

// ErrNotAuthorized rejects logins by accounts that hold no admin role.
var ErrNotAuthorized = errors.New("You are not authorized to access this resource")

// IUserUsecase covers admin sign-in and the email verification gate used
// before account linking.
type IUserUsecase interface {
	Login(ctx context.Context, req dto.ReqLogin) (*dto.LoginData, error)
	VerifyEmail(ctx context.Context, email string) (int, error)
}

type UserUsecase struct {
	backend repository.IBackend
}

func NewUserUsecase(backend repository.IBackend) IUserUsecase {
	return &UserUsecase{backend: backend}
}

// Login proxies the credential check to the backend and admits only admin
// accounts.
func (u *UserUsecase) Login(ctx context.Context, req dto.ReqLogin) (*dto.LoginData, error) {
	data, err := u.backend.Login(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if data.User.Role != "admin" {
		logger.GetLogger().WithField("email", req.Email).Warn("Non-admin login rejected")
		return nil, ErrNotAuthorized
	}
	return data, nil
}

// VerifyEmail resolves an email to a backend user id. A zero id means the
// email is unknown.
func (u *UserUsecase) VerifyEmail(ctx context.Context, email string) (int, error) {
	if email == "" {
		return 0, fmt.Errorf("email is required")
	}
	userID, err := u.backend.FindUserIDByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("failed to verify email: %w", err)
	}
	return userID, nil
}

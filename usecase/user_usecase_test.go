package usecase_test

import (
	"context"
	"errors"
	"testing"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/model"
	"wesion-bff/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAdmitsAdminsOnly(t *testing.T) {
	backend := &stubBackend{
		loginFn: func(req dto.ReqLogin) (*dto.LoginData, error) {
			role := "user"
			if req.Email == "admin@example.com" {
				role = "admin"
			}
			return &dto.LoginData{
				AccessToken: "token-123",
				User:        model.User{ID: 1, Email: req.Email, Role: role},
			}, nil
		},
	}
	uc := usecase.NewUserUsecase(backend)

	_, err := uc.Login(context.Background(), dto.ReqLogin{Email: "viewer@example.com", Password: "pw"})
	assert.ErrorIs(t, err, usecase.ErrNotAuthorized)

	data, err := uc.Login(context.Background(), dto.ReqLogin{Email: "admin@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "token-123", data.AccessToken)
	assert.Equal(t, "admin", data.User.Role)
}

func TestLoginPropagatesBackendFailure(t *testing.T) {
	backend := &stubBackend{
		loginFn: func(req dto.ReqLogin) (*dto.LoginData, error) {
			return nil, errors.New("Invalid credentials")
		},
	}
	uc := usecase.NewUserUsecase(backend)

	_, err := uc.Login(context.Background(), dto.ReqLogin{Email: "x@example.com", Password: "bad"})
	assert.ErrorContains(t, err, "Invalid credentials")
}

func TestVerifyEmail(t *testing.T) {
	backend := &stubBackend{
		findByEmailFn: func(email string) (int, error) {
			if email == "known@example.com" {
				return 42, nil
			}
			return 0, nil
		},
	}
	uc := usecase.NewUserUsecase(backend)

	_, err := uc.VerifyEmail(context.Background(), "")
	assert.Error(t, err)

	id, err := uc.VerifyEmail(context.Background(), "known@example.com")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	id, err = uc.VerifyEmail(context.Background(), "unknown@example.com")
	require.NoError(t, err)
	assert.Zero(t, id)
}

package http

import (
	"errors"
	"net/http"

	"wesion-bff/domain/dto"
	"wesion-bff/infrastructure/clients/backendapi"
	"wesion-bff/usecase"

	"github.com/gin-gonic/gin"
)

// statusOr maps an error to the HTTP status a handler should answer with.
// Backend envelope failures pass their upstream status through; known local
// rejections carry their own status; anything else gets the fallback.
func statusOr(err error, fallback int) int {
	var be *backendapi.Error
	if errors.As(err, &be) && be.StatusCode >= 400 {
		return be.StatusCode
	}
	var tooLarge *usecase.ErrFileTooLarge
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, usecase.ErrNotLinked),
		errors.Is(err, usecase.ErrUploadInProgress):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotAuthorized):
		return http.StatusForbidden
	}
	return fallback
}

func fail(c *gin.Context, err error) {
	c.JSON(statusOr(err, http.StatusInternalServerError), dto.Fail(err.Error()))
}

// failRequest is for operations whose local failure modes are all caller
// mistakes (validation, missing parameters).
func failRequest(c *gin.Context, err error) {
	c.JSON(statusOr(err, http.StatusBadRequest), dto.Fail(err.Error()))
}

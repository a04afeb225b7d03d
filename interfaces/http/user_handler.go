package http

import (
	"net/http"

	"wesion-bff/domain/dto"
	"wesion-bff/usecase"

	"github.com/gin-gonic/gin"
)

type IUserHandler interface {
	VerifyEmail(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// VerifyEmail resolves an applicant email to a backend user id. Linking a
// Vimeo account requires a known email, so the client calls this before
// starting the flow.
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	email := c.Query("email")
	userID, err := h.userUsecase.VerifyEmail(c.Request.Context(), email)
	if err != nil {
		failRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(dto.FindByEmailData{UserID: userID}))
}

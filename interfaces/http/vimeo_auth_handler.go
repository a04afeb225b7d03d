package http

import (
	"net/http"
	"strconv"

	"wesion-bff/domain/dto"
	"wesion-bff/infrastructure/logger"
	"wesion-bff/usecase"

	"github.com/gin-gonic/gin"
)

type IVimeoAuthHandler interface {
	Start(c *gin.Context)
	Callback(c *gin.Context)
	Status(c *gin.Context)
}

type VimeoAuthHandler struct {
	linkingUsecase usecase.ILinkingUsecase
}

func NewVimeoAuthHandler(linkingUsecase usecase.ILinkingUsecase) IVimeoAuthHandler {
	return &VimeoAuthHandler{linkingUsecase: linkingUsecase}
}

// Start parks the submission draft and hands back the authorization URL plus
// the token that retrieves the draft when the browser returns.
func (h *VimeoAuthHandler) Start(c *gin.Context) {
	var req dto.LinkingStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.Fail("a verified userId is required"))
		return
	}

	data, err := h.linkingUsecase.Start(c.Request.Context(), req.UserID, req.Draft)
	if err != nil {
		failRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(data))
}

// Callback lands when Vimeo redirects back. The exchange result and the
// restored draft (when one was parked) go back to the client together.
func (h *VimeoAuthHandler) Callback(c *gin.Context) {
	data, err := h.linkingUsecase.Callback(
		c.Request.Context(),
		c.Query("code"),
		c.Query("state"),
		c.Query("token"),
		c.Query("redirectUri"),
	)
	if err != nil {
		c.JSON(statusOr(err, http.StatusBadRequest), dto.Res{Success: false, Message: err.Error(), Data: data})
		return
	}
	c.JSON(http.StatusOK, dto.Ok(data))
}

// Status reports whether the user's Vimeo account is linked.
func (h *VimeoAuthHandler) Status(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("a numeric userId is required"))
		return
	}

	linked, err := h.linkingUsecase.Status(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(dto.LinkageStatusData{Linked: linked}))
}

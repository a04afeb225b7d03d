package http

import (
	"net/http"
	"strconv"

	"wesion-bff/domain/dto"
	"wesion-bff/infrastructure/logger"
	"wesion-bff/interfaces/middleware"
	"wesion-bff/usecase"

	"github.com/gin-gonic/gin"
)

type IVideoHandler interface {
	Submit(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	SetVerified(c *gin.Context)
	Delete(c *gin.Context)
}

type VideoHandler struct {
	submissionUsecase usecase.ISubmissionUsecase
	videoUsecase      usecase.IVideoUsecase
}

func NewVideoHandler(submissionUsecase usecase.ISubmissionUsecase, videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{submissionUsecase: submissionUsecase, videoUsecase: videoUsecase}
}

// accessToken reads the forwarded backend token from the session cookie. The
// auth middleware has already established it is present on admin routes.
func accessToken(c *gin.Context) string {
	token, _ := c.Cookie(middleware.AccessTokenCookie)
	return token
}

func videoID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("a numeric video id is required"))
		return 0, false
	}
	return id, true
}

// Submit accepts a completed submission draft from the public form.
func (h *VideoHandler) Submit(c *gin.Context) {
	var req dto.SubmitVideoDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.Fail("a submission body is required"))
		return
	}
	req.UploadScope = uploadScope(c)

	video, err := h.submissionUsecase.Submit(c.Request.Context(), req)
	if err != nil {
		failRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Ok(video))
}

func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videoUsecase.List(c.Request.Context(), accessToken(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(videos))
}

func (h *VideoHandler) Get(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	video, err := h.videoUsecase.Get(c.Request.Context(), accessToken(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(video))
}

// Update applies the mutable-field subset of a submission.
func (h *VideoHandler) Update(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	var req dto.VideoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.Fail("an update body is required"))
		return
	}

	video, err := h.submissionUsecase.Update(c.Request.Context(), id, req)
	if err != nil {
		failRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(video))
}

// SetVerified toggles the moderation flag on a submission.
func (h *VideoHandler) SetVerified(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	var req dto.SetVerifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.Fail("an isVerified flag is required"))
		return
	}

	video, err := h.videoUsecase.SetVerified(c.Request.Context(), accessToken(c), id, req.IsVerified)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(video))
}

func (h *VideoHandler) Delete(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	if err := h.videoUsecase.Delete(c.Request.Context(), accessToken(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(nil))
}

package http

import (
	"net/http"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/model"
	"wesion-bff/infrastructure/logger"
	"wesion-bff/usecase"

	"github.com/gin-gonic/gin"
)

type IFilesHandler interface {
	GetSignedURL(c *gin.Context)
	Upload(c *gin.Context)
}

type FilesHandler struct {
	uploadUsecase usecase.IUploadUsecase
}

func NewFilesHandler(uploadUsecase usecase.IUploadUsecase) IFilesHandler {
	return &FilesHandler{uploadUsecase: uploadUsecase}
}

// GetSignedURL asks the backend for a one-time write URL for a thumbnail or
// supplemental material file.
func (h *FilesHandler) GetSignedURL(c *gin.Context) {
	var req dto.SignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.Fail("fileName, fileType and label are required"))
		return
	}

	signedURL, err := h.uploadUsecase.IssueSignedURL(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(gin.H{"signedUrl": signedURL}))
}

// Upload relays the request body to the signed URL in a single PUT and returns
// the stripped file URL. The signed URL and label arrive as query parameters;
// the file bytes are the body itself, so nothing is buffered to disk.
func (h *FilesHandler) Upload(c *gin.Context) {
	signedURL := c.Query("signedUrl")
	if signedURL == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("signedUrl is required"))
		return
	}
	label := model.UploadLabel(c.DefaultQuery("label", string(model.LabelThumbnail)))
	size := c.Request.ContentLength
	if size <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("a non-empty file body is required"))
		return
	}

	fileURL, err := h.uploadUsecase.RelayToSignedURL(
		c.Request.Context(),
		uploadScope(c),
		signedURL,
		label,
		c.ContentType(),
		size,
		c.Request.Body,
	)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(dto.FileUploadData{FileURL: fileURL}))
}

package http

import (
	"net/http"

	"wesion-bff/domain/dto"
	"wesion-bff/infrastructure/logger"
	"wesion-bff/usecase"

	"github.com/gin-gonic/gin"
)

type IVimeoHandler interface {
	CreateUpload(c *gin.Context)
	UploadVideo(c *gin.Context)
	Progress(c *gin.Context)
}

type VimeoHandler struct {
	uploadUsecase usecase.IUploadUsecase
}

func NewVimeoHandler(uploadUsecase usecase.IUploadUsecase) IVimeoHandler {
	return &VimeoHandler{uploadUsecase: uploadUsecase}
}

// CreateUpload requests a video placeholder and upload handle from Vimeo
// without transferring any bytes. Clients that drive the resumable protocol
// themselves start here.
func (h *VimeoHandler) CreateUpload(c *gin.Context) {
	var req dto.VimeoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.Fail("name and size are required"))
		return
	}

	resp, err := h.uploadUsecase.CreateVimeoUpload(c.Request.Context(), req.Name, req.Size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(resp))
}

// UploadVideo accepts a multipart video file and drives the full resumable
// upload server-side: placeholder creation, chunked transfer with retries,
// then the permanent playback link.
func (h *VimeoHandler) UploadVideo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("a video file is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("failed to read the uploaded file"))
		return
	}
	defer file.Close()

	link, err := h.uploadUsecase.UploadVideoToVimeo(c.Request.Context(), uploadScope(c), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Ok(gin.H{"link": link}))
}

// Progress reports the caller's own upload sessions with percent complete.
func (h *VimeoHandler) Progress(c *gin.Context) {
	sessions := h.uploadUsecase.Progress(uploadScope(c))
	out := make([]gin.H, 0, len(sessions))
	for i := range sessions {
		s := sessions[i]
		out = append(out, gin.H{
			"label":    s.Label,
			"fileName": s.FileName,
			"state":    s.State,
			"progress": s.Progress(),
			"fileUrl":  s.FileURL,
			"error":    s.Error,
		})
	}
	c.JSON(http.StatusOK, dto.Ok(out))
}

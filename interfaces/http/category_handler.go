package http

import (
	"net/http"

	"wesion-bff/domain/dto"
	"wesion-bff/infrastructure/logger"
	"wesion-bff/usecase"

	"github.com/gin-gonic/gin"
)

// CategoryFetchError is the user-facing message for any category fetch
// failure; the underlying cause goes to the log only.
const CategoryFetchError = "Failed to fetch video categories. Please try again."

type ICategoryHandler interface {
	GetCategories(c *gin.Context)
}

type CategoryHandler struct {
	categoryUsecase usecase.ICategoryUsecase
}

func NewCategoryHandler(categoryUsecase usecase.ICategoryUsecase) ICategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase}
}

// GetCategories serves the submission form's category dropdown. Responses are
// never cached so a stale list cannot outlive a backend change.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	categories, err := h.categoryUsecase.List(c.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to fetch video categories")
		c.JSON(statusOr(err, http.StatusInternalServerError), dto.Fail(CategoryFetchError))
		return
	}

	c.JSON(http.StatusOK, dto.Ok(categories))
}

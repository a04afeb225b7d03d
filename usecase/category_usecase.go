package usecase

import (
	"context"
	"fmt"

	"wesion-bff/domain/model"
	"wesion-bff/domain/repository"
)

// ICategoryUsecase serves the category reference data backing the submission
// form's initial dropdown.
type ICategoryUsecase interface {
	List(ctx context.Context) ([]model.Category, error)
}

type CategoryUsecase struct {
	backend repository.IBackend
}

func NewCategoryUsecase(backend repository.IBackend) ICategoryUsecase {
	return &CategoryUsecase{backend: backend}
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	categories, err := u.backend.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video categories: %w", err)
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

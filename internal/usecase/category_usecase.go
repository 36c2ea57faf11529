package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryUsecase struct {
	categories repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categories repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categories: categories}
}

type CategoryInput struct {
	Name        string
	Description string
}

func (u *CategoryUsecase) Create(ctx context.Context, in CategoryInput) (model.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	c := model.Category{
		Name:        in.Name,
		Description: in.Description,
	}

	if err := u.categories.Create(ctx, &c); err != nil {
		return model.Category{}, mapRepoError(err)
	}
	return c, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, categoryID int64) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	c, err := u.categories.FindByID(ctx, categoryID)
	if err != nil {
		return model.Category{}, mapRepoError(err)
	}
	return c, nil
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categories.List(ctx)
	if err != nil {
		return []model.Category{}, mapRepoError(err)
	}
	return categories, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, categoryID int64, in CategoryInput) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	c := model.Category{
		ID:          categoryID,
		Name:        in.Name,
		Description: in.Description,
	}

	if err := u.categories.Update(ctx, c); err != nil {
		return model.Category{}, mapRepoError(err)
	}
	return c, nil
}

// 商品が残っているカテゴリは消せない（ErrInUse → 409）
func (u *CategoryUsecase) Delete(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	if err := u.categories.Delete(ctx, categoryID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

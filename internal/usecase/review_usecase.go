package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReviewUsecase struct {
	reviews  repo.ReviewRepository
	users    repo.UserRepository
	products repo.ProductRepository
}

// DI
func NewReviewUsecase(
	reviews repo.ReviewRepository,
	users repo.UserRepository,
	products repo.ProductRepository,
) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, users: users, products: products}
}

type CreateReviewInput struct {
	UserID    int64
	ProductID int64
	Rating    int
	Comment   string
}

type UpdateReviewInput struct {
	Rating  int
	Comment string
}

func (u *ReviewUsecase) Create(ctx context.Context, in CreateReviewInput) (model.Review, error) {
	if in.UserID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if in.ProductID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}

	if _, err := u.users.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Review{}, NewHTTPError(http.StatusBadRequest, "unknown user_id")
		}
		return model.Review{}, mapRepoError(err)
	}
	if _, err := u.products.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Review{}, NewHTTPError(http.StatusBadRequest, "unknown product_id")
		}
		return model.Review{}, mapRepoError(err)
	}

	rv := model.Review{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	if err := u.reviews.Create(ctx, &rv); err != nil {
		return model.Review{}, mapRepoError(err)
	}
	return rv, nil
}

func (u *ReviewUsecase) Get(ctx context.Context, reviewID int64) (model.Review, error) {
	if reviewID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	rv, err := u.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return model.Review{}, mapRepoError(err)
	}
	return rv, nil
}

func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	if productID <= 0 {
		return []model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	reviews, err := u.reviews.ListByProductID(ctx, productID)
	if err != nil {
		return []model.Review{}, mapRepoError(err)
	}
	return reviews, nil
}

func (u *ReviewUsecase) ListByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	if userID <= 0 {
		return []model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	reviews, err := u.reviews.ListByUserID(ctx, userID)
	if err != nil {
		return []model.Review{}, mapRepoError(err)
	}
	return reviews, nil
}

func (u *ReviewUsecase) Update(ctx context.Context, reviewID int64, in UpdateReviewInput) (model.Review, error) {
	if reviewID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid review id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}

	rv, err := u.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return model.Review{}, mapRepoError(err)
	}

	rv.Rating = in.Rating
	rv.Comment = in.Comment

	if err := u.reviews.Update(ctx, rv); err != nil {
		return model.Review{}, mapRepoError(err)
	}
	return rv, nil
}

func (u *ReviewUsecase) Delete(ctx context.Context, reviewID int64) error {
	if reviewID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	if err := u.reviews.Delete(ctx, reviewID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) error
	FindByID(ctx context.Context, reviewID int64) (model.Review, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Review, error)
	Update(ctx context.Context, r model.Review) error
	Delete(ctx context.Context, reviewID int64) error
}

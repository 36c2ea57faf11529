package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	Create(ctx context.Context, c *model.Cart) error
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)
	// User.Carts 相当の導出クエリ
	ListByUserID(ctx context.Context, userID int64) ([]model.Cart, error)
	// 明細ごと削除（カスケード）。呼び出し側はTx内で使うこと。
	Delete(ctx context.Context, cartID int64) error
}

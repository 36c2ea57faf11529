package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// User.Orders 相当の導出クエリ
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	// 明細ごと削除（カスケード）。呼び出し側はTx内で使うこと。
	Delete(ctx context.Context, orderID int64) error
}

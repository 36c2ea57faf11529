package repository

import (
	"context"

	"app/internal/domain/model"
)

// 明細は注文と同時に作るだけ。更新APIは持たない（スナップショット不変）。
type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	// 商品削除のRESTRICT判定に使う
	CountByProductID(ctx context.Context, productID int64) (int64, error)
}

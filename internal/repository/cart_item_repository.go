package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	// (cart_id, product_id) が重複していれば ErrDuplicate
	Create(ctx context.Context, item *model.CartItem) error
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	Delete(ctx context.Context, cartItemID int64) error
	// 商品削除のRESTRICT判定に使う
	CountByProductID(ctx context.Context, productID int64) (int64, error)
}

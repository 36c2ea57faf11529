package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CartUsecase struct {
	carts     repo.CartRepository
	cartItems repo.CartItemRepository
	users     repo.UserRepository
	products  repo.ProductRepository
}

// DI
func NewCartUsecase(
	carts repo.CartRepository,
	cartItems repo.CartItemRepository,
	users repo.UserRepository,
	products repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{carts: carts, cartItems: cartItems, users: users, products: products}
}

type CartOutput struct {
	Cart  model.Cart       `json:"cart"`
	Items []model.CartItem `json:"items"`
}

type AddCartItemInput struct {
	ProductID int64
	Quantity  int64
}

func (u *CartUsecase) Create(ctx context.Context, userID int64) (model.Cart, error) {
	if userID <= 0 {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	if _, err := u.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Cart{}, NewHTTPError(http.StatusBadRequest, "unknown user_id")
		}
		return model.Cart{}, mapRepoError(err)
	}

	cart := model.Cart{UserID: userID}
	if err := u.carts.Create(ctx, &cart); err != nil {
		return model.Cart{}, mapRepoError(err)
	}
	return cart, nil
}

// カートと明細をまとめて返す
func (u *CartUsecase) Get(ctx context.Context, cartID int64) (CartOutput, error) {
	if cartID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	cart, err := u.carts.FindByID(ctx, cartID)
	if err != nil {
		return CartOutput{}, mapRepoError(err)
	}

	items, err := u.cartItems.ListByCartID(ctx, cartID)
	if err != nil {
		return CartOutput{}, mapRepoError(err)
	}

	return CartOutput{Cart: cart, Items: items}, nil
}

func (u *CartUsecase) ListByUser(ctx context.Context, userID int64) ([]model.Cart, error) {
	if userID <= 0 {
		return []model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	carts, err := u.carts.ListByUserID(ctx, userID)
	if err != nil {
		return []model.Cart{}, mapRepoError(err)
	}
	return carts, nil
}

// 明細を追加。同じ商品が既にあれば一意制約で409。
func (u *CartUsecase) AddItem(ctx context.Context, cartID int64, in AddCartItemInput) (model.CartItem, error) {
	if cartID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	if in.ProductID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	if _, err := u.carts.FindByID(ctx, cartID); err != nil {
		return model.CartItem{}, mapRepoError(err)
	}
	if _, err := u.products.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "unknown product_id")
		}
		return model.CartItem{}, mapRepoError(err)
	}

	item := model.CartItem{
		CartID:    cartID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
	if err := u.cartItems.Create(ctx, &item); err != nil {
		return model.CartItem{}, mapRepoError(err)
	}
	return item, nil
}

func (u *CartUsecase) UpdateItemQuantity(ctx context.Context, cartItemID int64, qty int64) (model.CartItem, error) {
	if cartItemID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	if qty <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	if err := u.cartItems.UpdateQuantity(ctx, cartItemID, qty); err != nil {
		return model.CartItem{}, mapRepoError(err)
	}

	item, err := u.cartItems.FindByID(ctx, cartItemID)
	if err != nil {
		return model.CartItem{}, mapRepoError(err)
	}
	return item, nil
}

func (u *CartUsecase) RemoveItem(ctx context.Context, cartItemID int64) error {
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	if err := u.cartItems.Delete(ctx, cartItemID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

// カート削除。明細も一緒に消える（カスケード）。商品には触らない。
func (u *CartUsecase) Delete(ctx context.Context, cartID int64) error {
	if cartID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	if err := u.carts.Delete(ctx, cartID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	tx         repo.TransactionManager
	products   repo.ProductRepository
	categories repo.CategoryRepository
}

// DI
func NewProductUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	categories repo.CategoryRepository,
) *ProductUsecase {
	return &ProductUsecase{tx: tx, products: products, categories: categories}
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  int64
}

type ListProductsInput struct {
	Page       int
	Limit      int
	CategoryID *int64
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) validateInput(ctx context.Context, in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	// 小数3桁以上は丸めずに拒否（ErrBadMoneyScale → 422）
	if !model.ValidMoney(in.Price) {
		return mapRepoError(repo.ErrBadMoneyScale)
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}

	if _, err := u.categories.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "unknown category_id")
		}
		return mapRepoError(err)
	}
	return nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := u.validateInput(ctx, in); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
	}

	if err := u.products.Create(ctx, &p); err != nil {
		return model.Product{}, mapRepoError(err)
	}
	return p, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, mapRepoError(err)
	}
	return p, nil
}

func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.products.List(ctx, repo.ProductListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return ProductListOutput{}, mapRepoError(err)
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *ProductUsecase) Update(ctx context.Context, productID int64, in ProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := u.validateInput(ctx, in); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		ID:          productID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
	}

	if err := u.products.Update(ctx, p); err != nil {
		return model.Product{}, mapRepoError(err)
	}
	return p, nil
}

// 商品削除。カート明細・注文明細から参照されている間は削除できない。
// 件数チェックと削除を1トランザクションに入れる。FKのRESTRICTが最後の砦。
func (u *ProductUsecase) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		inCarts, err := r.CartItems().CountByProductID(ctx, productID)
		if err != nil {
			return mapRepoError(err)
		}
		if inCarts > 0 {
			return mapRepoError(repo.ErrInUse)
		}

		inOrders, err := r.OrderItems().CountByProductID(ctx, productID)
		if err != nil {
			return mapRepoError(err)
		}
		if inOrders > 0 {
			return mapRepoError(repo.ErrInUse)
		}

		if err := r.Products().Delete(ctx, productID); err != nil {
			return mapRepoError(err)
		}
		return nil
	})

	return err
}

package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
	items  repo.OrderItemRepository
	users  repo.UserRepository
	clock  Clock
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	users repo.UserRepository,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, items: items, users: users, clock: clock}
}

type OrderLineInput struct {
	ProductID int64
	Quantity  int64
}

type CreateOrderInput struct {
	UserID int64
	Lines  []OrderLineInput
}

type OrderOutput struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

type OrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// 注文を作成。明細の price_at_purchase はこの時点の商品価格で確定し、
// 以後は商品価格が変わっても追随しない。注文＋全明細を1トランザクションで入れる。
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (OrderOutput, error) {
	if in.UserID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if len(in.Lines) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "order needs at least one line")
	}
	for _, line := range in.Lines {
		if line.ProductID <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		if line.Quantity <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	if _, err := u.users.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "unknown user_id")
		}
		return OrderOutput{}, mapRepoError(err)
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := u.clock.Now()

		orderItems := make([]model.OrderItem, 0, len(in.Lines))
		total := decimal.Zero

		for _, line := range in.Lines {
			p, err := r.Products().FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return NewHTTPError(http.StatusBadRequest, "unknown product_id")
				}
				return mapRepoError(err)
			}

			//スナップショット
			orderItems = append(orderItems, model.OrderItem{
				ProductID:       line.ProductID,
				Quantity:        line.Quantity,
				PriceAtPurchase: p.Price,
				CreatedAt:       now,
			})
			total = total.Add(p.Price.Mul(decimal.NewFromInt(line.Quantity)))
		}

		order := model.Order{
			UserID:      in.UserID,
			OrderDate:   now,
			Status:      model.OrderStatusPending,
			TotalAmount: total,
		}
		if err := r.Orders().Create(ctx, &order); err != nil {
			return mapRepoError(err)
		}

		if err := r.OrderItems().CreateBulk(ctx, order.ID, orderItems); err != nil {
			return mapRepoError(err)
		}

		out = OrderOutput{Order: order, Items: orderItems}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 注文と明細をまとめて返す
func (u *OrderUsecase) Get(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, mapRepoError(err)
	}

	items, err := u.items.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, mapRepoError(err)
	}

	return OrderOutput{Order: order, Items: items}, nil
}

func (u *OrderUsecase) ListByUser(ctx context.Context, userID int64, page int, limit int) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.orders.ListByUserID(ctx, userID, page, limit)
	if err != nil {
		return OrderListOutput{}, mapRepoError(err)
	}

	return OrderListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	switch status {
	case model.OrderStatusPending, model.OrderStatusCompleted, model.OrderStatusCanceled:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	if err := u.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return mapRepoError(err)
	}
	return nil
}

// 注文削除。明細も一緒に消える（カスケード）。商品には触らない。
func (u *OrderUsecase) Delete(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	if err := u.orders.Delete(ctx, orderID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

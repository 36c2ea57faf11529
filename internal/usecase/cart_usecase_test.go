package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Create(ctx context.Context, c *model.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CartRepoMock) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Cart, error) {
	args := m.Called(ctx, userID)
	carts, _ := args.Get(0).([]model.Cart)
	return carts, args.Error(1)
}

func (m *CartRepoMock) Delete(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) Create(ctx context.Context, item *model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartItemRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) Delete(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) CountByProductID(ctx context.Context, productID int64) (int64, error) {
	panic("not used in CartUsecase tests")
}

type CartUserRepoMock struct{ mock.Mock }

func (m *CartUserRepoMock) Create(ctx context.Context, u *model.User) error {
	panic("not used in CartUsecase tests")
}

func (m *CartUserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *CartUserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, bool, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartUserRepoMock) List(ctx context.Context) ([]model.User, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartUserRepoMock) Update(ctx context.Context, u model.User) error {
	panic("not used in CartUsecase tests")
}

func (m *CartUserRepoMock) Delete(ctx context.Context, userID int64) error {
	panic("not used in CartUsecase tests")
}

type CartProductRepoMock struct{ mock.Mock }

func (m *CartProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CartProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) Delete(ctx context.Context, productID int64) error {
	panic("not used in CartUsecase tests")
}

func newCartUsecaseForTest() (*CartUsecase, *CartRepoMock, *CartItemRepoMock, *CartUserRepoMock, *CartProductRepoMock) {
	carts := new(CartRepoMock)
	items := new(CartItemRepoMock)
	users := new(CartUserRepoMock)
	products := new(CartProductRepoMock)
	return NewCartUsecase(carts, items, users, products), carts, items, users, products
}

// =====================
// AddItem
// =====================

func TestCartUsecase_AddItem_Success(t *testing.T) {
	ctx := context.Background()

	uc, carts, items, _, products := newCartUsecaseForTest()

	carts.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1, UserID: 1}, nil)
	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Smartphone", Price: decimal.NewFromInt(500)}, nil)
	items.On("Create", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
		return item.CartID == 1 && item.ProductID == 1 && item.Quantity == 1
	})).Return(nil)

	_, err := uc.AddItem(ctx, 1, AddCartItemInput{ProductID: 1, Quantity: 1})

	assert.NoError(t, err)
	items.AssertExpectations(t)
}

func TestCartUsecase_AddItem_SameProductTwice_Conflict(t *testing.T) {
	ctx := context.Background()

	uc, carts, items, _, products := newCartUsecaseForTest()

	carts.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1, UserID: 1}, nil)
	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Smartphone", Price: decimal.NewFromInt(500)}, nil)

	// (cart_id, product_id) の一意制約で2回目は弾かれる
	items.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)

	_, err := uc.AddItem(ctx, 1, AddCartItemInput{ProductID: 1, Quantity: 1})

	assertHTTPStatus(t, err, http.StatusConflict)
	items.AssertExpectations(t)
}

func TestCartUsecase_AddItem_InvalidQuantity(t *testing.T) {
	uc, _, items, _, _ := newCartUsecaseForTest()

	_, err := uc.AddItem(context.Background(), 1, AddCartItemInput{ProductID: 1, Quantity: 0})

	assertHTTPStatus(t, err, http.StatusBadRequest)
	items.AssertNotCalled(t, "Create")
}

func TestCartUsecase_AddItem_UnknownProduct(t *testing.T) {
	ctx := context.Background()

	uc, carts, items, _, products := newCartUsecaseForTest()

	carts.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1, UserID: 1}, nil)
	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddItem(ctx, 1, AddCartItemInput{ProductID: 99, Quantity: 1})

	assertHTTPStatus(t, err, http.StatusBadRequest)
	items.AssertNotCalled(t, "Create")
}

// =====================
// Create / Get / Delete
// =====================

func TestCartUsecase_Create_UnknownUser(t *testing.T) {
	ctx := context.Background()

	uc, carts, _, users, _ := newCartUsecaseForTest()

	users.On("FindByID", mock.Anything, int64(9)).Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Create(ctx, 9)

	assertHTTPStatus(t, err, http.StatusBadRequest)
	carts.AssertNotCalled(t, "Create")
}

func TestCartUsecase_Get_ReturnsCartWithItems(t *testing.T) {
	ctx := context.Background()

	uc, carts, items, _, _ := newCartUsecaseForTest()

	carts.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1, UserID: 1}, nil)
	items.On("ListByCartID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, CartID: 1, ProductID: 1, Quantity: 1},
	}, nil)

	out, err := uc.Get(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Cart.ID)
	assert.Equal(t, 1, len(out.Items))
}

func TestCartUsecase_Delete_CascadesViaRepository(t *testing.T) {
	ctx := context.Background()

	uc, carts, _, _, _ := newCartUsecaseForTest()

	// 明細ごと消すのはrepo側のトランザクション
	carts.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := uc.Delete(ctx, 1)

	assert.NoError(t, err)
	carts.AssertExpectations(t)
}

func TestCartUsecase_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	uc, carts, _, _, _ := newCartUsecaseForTest()

	carts.On("Delete", mock.Anything, int64(42)).Return(repo.ErrNotFound)

	err := uc.Delete(ctx, 42)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

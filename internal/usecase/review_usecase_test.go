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

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, rv *model.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *ReviewRepoMock) FindByID(ctx context.Context, reviewID int64) (model.Review, error) {
	args := m.Called(ctx, reviewID)
	rv, _ := args.Get(0).(model.Review)
	return rv, args.Error(1)
}

func (m *ReviewRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	reviews, _ := args.Get(0).([]model.Review)
	return reviews, args.Error(1)
}

func (m *ReviewRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Review, error) {
	args := m.Called(ctx, userID)
	reviews, _ := args.Get(0).([]model.Review)
	return reviews, args.Error(1)
}

func (m *ReviewRepoMock) Update(ctx context.Context, rv model.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *ReviewRepoMock) Delete(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

type ReviewUserRepoMock struct{ mock.Mock }

func (m *ReviewUserRepoMock) Create(ctx context.Context, u *model.User) error {
	panic("not used in ReviewUsecase tests")
}

func (m *ReviewUserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *ReviewUserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, bool, error) {
	panic("not used in ReviewUsecase tests")
}

func (m *ReviewUserRepoMock) List(ctx context.Context) ([]model.User, error) {
	panic("not used in ReviewUsecase tests")
}

func (m *ReviewUserRepoMock) Update(ctx context.Context, u model.User) error {
	panic("not used in ReviewUsecase tests")
}

func (m *ReviewUserRepoMock) Delete(ctx context.Context, userID int64) error {
	panic("not used in ReviewUsecase tests")
}

type ReviewProductRepoMock struct{ mock.Mock }

func (m *ReviewProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in ReviewUsecase tests")
}

func (m *ReviewProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ReviewProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	panic("not used in ReviewUsecase tests")
}

func (m *ReviewProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in ReviewUsecase tests")
}

func (m *ReviewProductRepoMock) Delete(ctx context.Context, productID int64) error {
	panic("not used in ReviewUsecase tests")
}

func newReviewUsecaseForTest() (*ReviewUsecase, *ReviewRepoMock, *ReviewUserRepoMock, *ReviewProductRepoMock) {
	reviews := new(ReviewRepoMock)
	users := new(ReviewUserRepoMock)
	products := new(ReviewProductRepoMock)
	return NewReviewUsecase(reviews, users, products), reviews, users, products
}

// =====================
// Create
// =====================

func TestReviewUsecase_Create_Success(t *testing.T) {
	ctx := context.Background()

	uc, reviews, users, products := newReviewUsecaseForTest()

	users.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Smartphone", Price: decimal.NewFromInt(500)}, nil)
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(rv *model.Review) bool {
		return rv.UserID == 1 && rv.ProductID == 1 && rv.Rating == 5 && rv.Comment == "Great phone!"
	})).Return(nil)

	rv, err := uc.Create(ctx, CreateReviewInput{UserID: 1, ProductID: 1, Rating: 5, Comment: "Great phone!"})

	assert.NoError(t, err)
	assert.Equal(t, 5, rv.Rating)
	reviews.AssertExpectations(t)
}

func TestReviewUsecase_Create_RatingOutOfRange(t *testing.T) {
	uc, reviews, _, _ := newReviewUsecaseForTest()

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.Create(context.Background(), CreateReviewInput{UserID: 1, ProductID: 1, Rating: rating})
		assertHTTPStatus(t, err, http.StatusBadRequest)
	}
	reviews.AssertNotCalled(t, "Create")
}

func TestReviewUsecase_Create_UnknownUser(t *testing.T) {
	ctx := context.Background()

	uc, reviews, users, _ := newReviewUsecaseForTest()

	users.On("FindByID", mock.Anything, int64(9)).Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Create(ctx, CreateReviewInput{UserID: 9, ProductID: 1, Rating: 4})

	assertHTTPStatus(t, err, http.StatusBadRequest)
	reviews.AssertNotCalled(t, "Create")
}

func TestReviewUsecase_Create_UnknownProduct(t *testing.T) {
	ctx := context.Background()

	uc, reviews, users, products := newReviewUsecaseForTest()

	users.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Create(ctx, CreateReviewInput{UserID: 1, ProductID: 99, Rating: 4})

	assertHTTPStatus(t, err, http.StatusBadRequest)
	reviews.AssertNotCalled(t, "Create")
}

// =====================
// Update / Delete
// =====================

func TestReviewUsecase_Update_RatingOutOfRange(t *testing.T) {
	uc, reviews, _, _ := newReviewUsecaseForTest()

	_, err := uc.Update(context.Background(), 1, UpdateReviewInput{Rating: 6})

	assertHTTPStatus(t, err, http.StatusBadRequest)
	reviews.AssertNotCalled(t, "Update")
}

func TestReviewUsecase_Update_Success(t *testing.T) {
	ctx := context.Background()

	uc, reviews, _, _ := newReviewUsecaseForTest()

	reviews.On("FindByID", mock.Anything, int64(2)).
		Return(model.Review{ID: 2, UserID: 2, ProductID: 3, Rating: 4, Comment: "Nice quality T-shirt"}, nil)
	reviews.On("Update", mock.Anything, mock.MatchedBy(func(rv model.Review) bool {
		return rv.ID == 2 && rv.Rating == 3 && rv.Comment == "Shrank after washing"
	})).Return(nil)

	rv, err := uc.Update(ctx, 2, UpdateReviewInput{Rating: 3, Comment: "Shrank after washing"})

	assert.NoError(t, err)
	assert.Equal(t, 3, rv.Rating)
	reviews.AssertExpectations(t)
}

func TestReviewUsecase_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	uc, reviews, _, _ := newReviewUsecaseForTest()

	reviews.On("Delete", mock.Anything, int64(42)).Return(repo.ErrNotFound)

	err := uc.Delete(ctx, 42)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

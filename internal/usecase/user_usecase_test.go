package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, bool, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Bool(1), args.Error(2)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type validatorStub struct {
	createErr error
	emailErr  error
}

func (v *validatorStub) ValidateCreate(username string, email string, password string) error {
	return v.createErr
}

func (v *validatorStub) ValidateEmail(email string) error {
	return v.emailErr
}

type hasherStub struct{}

func (h *hasherStub) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

// =====================
// Create
// =====================

func TestUserUsecase_Create_Success_HashesPasswordAndDefaultsRole(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepoMock)
	uc := NewUserUsecase(userRepo, &validatorStub{}, &hasherStub{})

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "john@example.com" &&
			u.PasswordHash == "hashed:password123" &&
			u.Role == model.RoleCustomer
	})).Return(nil)

	user, err := uc.Create(ctx, CreateUserInput{
		Username: "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.Equal(t, "hashed:password123", user.PasswordHash)

	userRepo.AssertExpectations(t)
}

func TestUserUsecase_Create_DuplicateEmail_Conflict(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepoMock)
	uc := NewUserUsecase(userRepo, &validatorStub{}, &hasherStub{})

	// email一意制約はDB側で弾かれ、repoが ErrDuplicate を返す
	userRepo.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)

	_, err := uc.Create(ctx, CreateUserInput{
		Username: "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})

	assertHTTPStatus(t, err, http.StatusConflict)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_Create_InvalidInput(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepoMock)
	uc := NewUserUsecase(userRepo, &validatorStub{createErr: assert.AnError}, &hasherStub{})

	_, err := uc.Create(ctx, CreateUserInput{Username: "", Email: "", Password: ""})

	assertHTTPStatus(t, err, http.StatusBadRequest)
	userRepo.AssertNotCalled(t, "Create")
}

// =====================
// GetByEmail
// =====================

func TestUserUsecase_GetByEmail_Found(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepoMock)
	uc := NewUserUsecase(userRepo, &validatorStub{}, &hasherStub{})

	userRepo.On("FindByEmail", mock.Anything, "john@example.com").
		Return(model.User{ID: 1, Username: "John Doe", Email: "john@example.com"}, true, nil)

	user, err := uc.GetByEmail(ctx, " john@example.com ")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_GetByEmail_NotFound(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepoMock)
	uc := NewUserUsecase(userRepo, &validatorStub{}, &hasherStub{})

	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return(model.User{}, false, nil)

	_, err := uc.GetByEmail(ctx, "nobody@example.com")
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestUserUsecase_GetByEmail_InvalidEmail(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := NewUserUsecase(userRepo, &validatorStub{emailErr: assert.AnError}, &hasherStub{})

	_, err := uc.GetByEmail(context.Background(), "not-an-email")

	assertHTTPStatus(t, err, http.StatusBadRequest)
	userRepo.AssertNotCalled(t, "FindByEmail")
}

// =====================
// Get / Update / Delete
// =====================

func TestUserUsecase_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepoMock)
	uc := NewUserUsecase(userRepo, &validatorStub{}, &hasherStub{})

	userRepo.On("FindByID", mock.Anything, int64(99)).Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Get(ctx, 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestUserUsecase_Update_DuplicateEmail_Conflict(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepoMock)
	uc := NewUserUsecase(userRepo, &validatorStub{}, &hasherStub{})

	userRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.User{ID: 1, Username: "John Doe", Email: "john@example.com"}, nil)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)

	email := "jane@example.com"
	_, err := uc.Update(ctx, 1, UpdateUserInput{Email: &email})

	assertHTTPStatus(t, err, http.StatusConflict)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	userRepo := new(UserRepoMock)
	uc := NewUserUsecase(userRepo, &validatorStub{}, &hasherStub{})

	userRepo.On("Delete", mock.Anything, int64(42)).Return(repo.ErrNotFound)

	err := uc.Delete(ctx, 42)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ユーザー入力の検証はvalidatorパッケージに任せる
type UserValidator interface {
	ValidateCreate(username string, email string, password string) error
	ValidateEmail(email string) error
}

type UserUsecase struct {
	users     repo.UserRepository
	validator UserValidator
	hasher    PasswordHasher
}

// DI
func NewUserUsecase(users repo.UserRepository, validator UserValidator, hasher PasswordHasher) *UserUsecase {
	return &UserUsecase{users: users, validator: validator, hasher: hasher}
}

type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     model.Role
}

type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *model.Role
}

func (u *UserUsecase) Create(ctx context.Context, in CreateUserInput) (model.User, error) {
	in.Email = strings.TrimSpace(in.Email)

	if err := u.validator.ValidateCreate(in.Username, in.Email, in.Password); err != nil {
		return model.User{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := in.Role
	if role == "" {
		role = model.RoleCustomer
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	user := model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}

	// email重複は一意制約で弾かれる（ErrDuplicate → 409）
	if err := u.users.Create(ctx, &user); err != nil {
		return model.User{}, mapRepoError(err)
	}

	return user, nil
}

func (u *UserUsecase) Get(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return model.User{}, mapRepoError(err)
	}
	return user, nil
}

// emailでユーザーを1件取得
func (u *UserUsecase) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.TrimSpace(email)
	if err := u.validator.ValidateEmail(email); err != nil {
		return model.User{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, ok, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return model.User{}, mapRepoError(err)
	}
	if !ok {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return user, nil
}

func (u *UserUsecase) List(ctx context.Context) ([]model.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return []model.User{}, mapRepoError(err)
	}
	return users, nil
}

func (u *UserUsecase) Update(ctx context.Context, userID int64, in UpdateUserInput) (model.User, error) {
	if userID <= 0 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return model.User{}, mapRepoError(err)
	}

	if in.Username != nil {
		if strings.TrimSpace(*in.Username) == "" {
			return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid username")
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if err := u.validator.ValidateEmail(email); err != nil {
			return model.User{}, NewHTTPError(http.StatusBadRequest, err.Error())
		}
		user.Email = email
	}
	if in.Password != nil {
		hash, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return model.User{}, NewHTTPError(http.StatusInternalServerError, "hash error")
		}
		user.PasswordHash = hash
	}
	if in.Role != nil {
		user.Role = *in.Role
	}

	if err := u.users.Update(ctx, user); err != nil {
		return model.User{}, mapRepoError(err)
	}

	return user, nil
}

func (u *UserUsecase) Delete(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := u.users.Delete(ctx, userID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

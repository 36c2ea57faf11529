package repository

import (
	"context"

	"app/internal/domain/model"
)

// ユーザーの永続化（保存・取得）だけを約束。
type UserRepository interface {
	// emailが重複していれば ErrDuplicate
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, bool, error)
	List(ctx context.Context) ([]model.User, error)
	// emailが重複していれば ErrDuplicate
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, userID int64) error
}

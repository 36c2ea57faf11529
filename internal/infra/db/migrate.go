package db

import (
	"gorm.io/gorm"

	"app/internal/domain/model"
)

// Migrate は全テーブルを作成・更新する。
// 依存される側（users, categories）から順に並べる。
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
	)
}

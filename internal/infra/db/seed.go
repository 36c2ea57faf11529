package db

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"app/internal/domain/model"
)

// Seed は開発・テスト用の固定データを投入する。
// 主キーを固定しているので、再実行しても重複しない（ON CONFLICT DO NOTHING）。
// 全件を1トランザクションで入れる。
func Seed(gormDB *gorm.DB) error {
	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	jan5 := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	jan6 := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	jan7 := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)

	users := []model.User{
		{ID: 1, Username: "John Doe", Email: "john@example.com", PasswordHash: "hashedpassword123", Role: model.RoleCustomer, CreatedAt: jan1},
		{ID: 2, Username: "Jane Smith", Email: "jane@example.com", PasswordHash: "hashedpassword456", Role: model.RoleCustomer, CreatedAt: jan1},
	}

	categories := []model.Category{
		{ID: 1, Name: "Electronics", Description: "Electronic devices and gadgets"},
		{ID: 2, Name: "Clothing", Description: "Men and women clothing"},
	}

	products := []model.Product{
		{ID: 1, Name: "Smartphone", Description: "Latest Android smartphone", Price: decimal.NewFromInt(500), CategoryID: 1},
		{ID: 2, Name: "Laptop", Description: "High-performance laptop", Price: decimal.NewFromInt(1200), CategoryID: 1},
		{ID: 3, Name: "T-Shirt", Description: "Cotton T-Shirt", Price: decimal.NewFromInt(20), CategoryID: 2},
	}

	carts := []model.Cart{
		{ID: 1, UserID: 1, CreatedAt: jan2},
		{ID: 2, UserID: 2, CreatedAt: jan2},
	}

	cartItems := []model.CartItem{
		{ID: 1, CartID: 1, ProductID: 1, Quantity: 1},
		{ID: 2, CartID: 2, ProductID: 3, Quantity: 2},
	}

	orders := []model.Order{
		{ID: 1, UserID: 1, OrderDate: jan5, Status: model.OrderStatusCompleted, TotalAmount: decimal.NewFromInt(500)},
		{ID: 2, UserID: 2, OrderDate: jan6, Status: model.OrderStatusPending, TotalAmount: decimal.NewFromInt(40)},
	}

	orderItems := []model.OrderItem{
		{ID: 1, OrderID: 1, ProductID: 1, Quantity: 1, PriceAtPurchase: decimal.NewFromInt(500)},
		{ID: 2, OrderID: 2, ProductID: 3, Quantity: 2, PriceAtPurchase: decimal.NewFromInt(20)},
	}

	reviews := []model.Review{
		{ID: 1, UserID: 1, ProductID: 1, Rating: 5, Comment: "Great phone!", CreatedAt: jan7},
		{ID: 2, UserID: 2, ProductID: 3, Rating: 4, Comment: "Nice quality T-shirt", CreatedAt: jan7},
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		insert := func(rows interface{}) error {
			return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
		}

		// 外部キーの向きに合わせて親から入れる
		if err := insert(&users); err != nil {
			return err
		}
		if err := insert(&categories); err != nil {
			return err
		}
		if err := insert(&products); err != nil {
			return err
		}
		if err := insert(&carts); err != nil {
			return err
		}
		if err := insert(&cartItems); err != nil {
			return err
		}
		if err := insert(&orders); err != nil {
			return err
		}
		if err := insert(&orderItems); err != nil {
			return err
		}
		if err := insert(&reviews); err != nil {
			return err
		}

		// 固定IDで入れたのでシーケンスを進めておく
		for _, table := range []string{
			"users", "categories", "products", "carts",
			"cart_items", "orders", "order_items", "reviews",
		} {
			stmt := fmt.Sprintf(
				"SELECT setval(pg_get_serial_sequence('%s','id'), (SELECT COALESCE(MAX(id),1) FROM %s))",
				table, table,
			)
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

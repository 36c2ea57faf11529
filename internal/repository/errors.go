package repository

import "errors"

// データアクセス層のエラーを統一
var (
	// 対象のidが存在しない
	ErrNotFound = errors.New("not found")

	// 一意制約違反（email / cart_id+product_id）
	ErrDuplicate = errors.New("duplicate value")

	// 参照が残っているため削除できない
	ErrInUse = errors.New("referenced by existing rows")

	// 金額の小数が3桁以上
	ErrBadMoneyScale = errors.New("money value must have at most 2 decimal places")
)

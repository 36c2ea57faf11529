package model

import "github.com/shopspring/decimal"

// 金額は小数2桁まで。3桁以上は丸めずに拒否する。
func ValidMoney(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

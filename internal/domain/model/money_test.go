package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidMoney(t *testing.T) {
	ok := []string{"0", "20", "500.00", "499.99", "1200.5", "-10.25"}
	for _, s := range ok {
		assert.True(t, ValidMoney(decimal.RequireFromString(s)), s)
	}

	// 小数3桁以上は丸めずに拒否
	ng := []string{"19.999", "500.005", "0.001", "-1.234"}
	for _, s := range ng {
		assert.False(t, ValidMoney(decimal.RequireFromString(s)), s)
	}
}

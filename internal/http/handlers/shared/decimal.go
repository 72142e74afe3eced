package shared

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal 解析金额字符串，空值返回零
func ParseDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

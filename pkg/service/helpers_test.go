package service

import (
	"balance_gateway/models"

	"github.com/shopspring/decimal"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func record(value, price string) models.BalanceRecord {
	return models.BalanceRecord{Value: decimalPtr(value), Price: decimalPtr(price)}
}

package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Envelope is the {"data": ...} wrapper the backend puts around every payload.
type Envelope[T any] struct {
	Data *T `json:"data"`
}

// BalanceRecord is a user's holding of one product. Fields are nil when the backend omits them.
type BalanceRecord struct {
	Value *decimal.Decimal `json:"value"`
	Price *decimal.Decimal `json:"price"`
}

type AdjustRequest struct {
	ProductID string      `json:"productId"`
	Address   string      `json:"address"`
	Quantity  json.Number `json:"quantity"`
}

type AdjustmentResult struct {
	Quantity *decimal.Decimal `json:"quantity"`
}

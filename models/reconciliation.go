package models

import "time"

// UnconfirmedMutation is a decrement the backend accepted without echoing the new quantity.
// The backend may or may not have applied it.
type UnconfirmedMutation struct {
	ID        int64     `db:"id" json:"id"`
	Function  string    `db:"function" json:"function"`
	Address   string    `db:"address" json:"address"`
	ProductID string    `db:"product_id" json:"product_id"`
	Amount    string    `db:"amount" json:"amount"`
	Quantity  string    `db:"quantity" json:"quantity"`
	Reason    string    `db:"reason" json:"reason"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

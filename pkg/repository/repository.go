package repository

import (
	"context"

	"balance_gateway/models"

	"github.com/jmoiron/sqlx"
)

// Reconciliation keeps the decrements whose outcome the backend did not confirm.
type Reconciliation interface {
	RecordUnconfirmed(ctx context.Context, m models.UnconfirmedMutation) error
	ListUnconfirmed(ctx context.Context) ([]models.UnconfirmedMutation, error)
}

type Repository struct {
	Reconciliation
}

// NewRepository falls back to process memory when db is nil.
func NewRepository(db *sqlx.DB) *Repository {
	if db == nil {
		return &Repository{Reconciliation: NewReconciliationMemory()}
	}
	return &Repository{Reconciliation: NewReconciliationPostgres(db)}
}

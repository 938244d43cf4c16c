package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"balance_gateway/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type ReconciliationPostgres struct {
	db *sqlx.DB
}

func NewReconciliationPostgres(db *sqlx.DB) *ReconciliationPostgres {
	return &ReconciliationPostgres{db: db}
}

func (r *ReconciliationPostgres) RecordUnconfirmed(ctx context.Context, m models.UnconfirmedMutation) error {
	query := fmt.Sprintf(`INSERT INTO %s (function, address, product_id, amount, quantity, reason)
		VALUES ($1, $2, $3, $4, $5, $6)`, unconfirmedMutationsTable)

	_, err := r.db.ExecContext(ctx, query, m.Function, m.Address, m.ProductID, m.Amount, m.Quantity, m.Reason)
	return errors.Wrap(err, "insert unconfirmed mutation")
}

func (r *ReconciliationPostgres) ListUnconfirmed(ctx context.Context) ([]models.UnconfirmedMutation, error) {
	var out []models.UnconfirmedMutation
	query := fmt.Sprintf(`SELECT id, function, address, product_id, amount, quantity, reason, created_at
		FROM %s ORDER BY id`, unconfirmedMutationsTable)

	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, errors.Wrap(err, "select unconfirmed mutations")
	}
	return out, nil
}

type ReconciliationMemory struct {
	mu      sync.Mutex
	entries []models.UnconfirmedMutation
	now     func() time.Time
}

func NewReconciliationMemory() *ReconciliationMemory {
	return &ReconciliationMemory{now: time.Now}
}

func (r *ReconciliationMemory) RecordUnconfirmed(_ context.Context, m models.UnconfirmedMutation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = int64(len(r.entries) + 1)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = r.now()
	}
	r.entries = append(r.entries, m)
	return nil
}

func (r *ReconciliationMemory) ListUnconfirmed(_ context.Context) ([]models.UnconfirmedMutation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.UnconfirmedMutation, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

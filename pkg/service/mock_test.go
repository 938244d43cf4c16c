package service

import (
	"context"

	"balance_gateway/models"
)

// mockBackend implements Backend with optional per-method overrides.
type mockBackend struct {
	getUserStockFunc func(ctx context.Context, address, id string) (models.BalanceRecord, error)
	decrementFunc    func(ctx context.Context, in models.AdjustRequest) (models.AdjustmentResult, error)
	incrementFunc    func(ctx context.Context, in models.AdjustRequest) (models.AdjustmentResult, error)
	listUsersFunc    func(ctx context.Context) ([]byte, error)
}

func (m *mockBackend) GetUserStock(ctx context.Context, address, id string) (models.BalanceRecord, error) {
	if m.getUserStockFunc != nil {
		return m.getUserStockFunc(ctx, address, id)
	}
	return models.BalanceRecord{}, nil
}

func (m *mockBackend) Decrement(ctx context.Context, in models.AdjustRequest) (models.AdjustmentResult, error) {
	if m.decrementFunc != nil {
		return m.decrementFunc(ctx, in)
	}
	return models.AdjustmentResult{}, nil
}

func (m *mockBackend) Increment(ctx context.Context, in models.AdjustRequest) (models.AdjustmentResult, error) {
	if m.incrementFunc != nil {
		return m.incrementFunc(ctx, in)
	}
	return models.AdjustmentResult{}, nil
}

func (m *mockBackend) ListUsers(ctx context.Context) ([]byte, error) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx)
	}
	return nil, nil
}

// failingReconciliation rejects every write.
type failingReconciliation struct{ err error }

func (f failingReconciliation) RecordUnconfirmed(context.Context, models.UnconfirmedMutation) error {
	return f.err
}

func (f failingReconciliation) ListUnconfirmed(context.Context) ([]models.UnconfirmedMutation, error) {
	return nil, f.err
}

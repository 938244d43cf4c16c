package service

import (
	"context"
	"encoding/json"
	"math/big"

	"balance_gateway/models"
	"balance_gateway/pkg/backend"
	"balance_gateway/pkg/encoding"
	"balance_gateway/pkg/repository"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Decrementer sells amount worth of a product from a user's holding.
type Decrementer struct {
	backend Backend
	recon   repository.Reconciliation
	log     logrus.FieldLogger
}

func NewDecrementer(b Backend, recon repository.Reconciliation, log logrus.FieldLogger) *Decrementer {
	return &Decrementer{
		backend: b,
		recon:   recon,
		log:     log,
	}
}

func (d *Decrementer) Name() string { return DecrementUserRealBalance }

// Run expects [address, productId, amount]. It returns amount*10^18 once the backend
// confirms the new quantity, and zero when funds are short or the mutation is unconfirmed.
func (d *Decrementer) Run(ctx context.Context, args []string) (*big.Int, error) {
	if err := requireArgs(args, "address", "productId", "amount"); err != nil {
		return nil, err
	}
	address, productID := args[0], args[1]
	amount, err := parseAmount("amount", args[2])
	if err != nil {
		return nil, err
	}

	log := d.log.WithFields(logrus.Fields{
		"function":   DecrementUserRealBalance,
		"address":    address,
		"product_id": productID,
		"amount":     amount.String(),
	})

	record, err := d.backend.GetUserStock(ctx, address, productID)
	if err != nil {
		return nil, errors.Wrapf(err, "get stock %s of %s", productID, address)
	}
	if record.Value == nil {
		return nil, errors.Wrapf(backend.ErrMalformedResponse, "stock %s of %s has no value", productID, address)
	}
	if err := encoding.CheckRange(*record.Value); err != nil {
		return nil, errors.Wrapf(backend.ErrMalformedResponse, "stock %s of %s value: %v", productID, address, err)
	}

	if record.Value.LessThan(amount) {
		log.WithField("balance", record.Value.String()).Info("insufficient balance, decrement skipped")
		return new(big.Int), nil
	}

	if record.Price == nil || !record.Price.IsPositive() || encoding.CheckRange(*record.Price) != nil {
		return nil, errors.Wrapf(backend.ErrMalformedResponse, "stock %s of %s has no usable price", productID, address)
	}
	quantity := amount.Div(*record.Price)

	result, err := d.backend.Decrement(ctx, models.AdjustRequest{
		ProductID: productID,
		Address:   address,
		Quantity:  json.Number(quantity.String()),
	})
	switch {
	case errors.Is(err, backend.ErrMalformedResponse):
		d.unconfirmed(ctx, log, address, productID, amount.String(), quantity.String(), err.Error())
		return new(big.Int), nil
	case err != nil:
		return nil, errors.Wrapf(err, "decrement %s of %s", productID, address)
	case result.Quantity == nil:
		d.unconfirmed(ctx, log, address, productID, amount.String(), quantity.String(), "response has no quantity")
		return new(big.Int), nil
	}

	newQuantity := "out of range"
	if encoding.CheckRange(*result.Quantity) == nil {
		newQuantity = result.Quantity.String()
	}
	log.WithFields(logrus.Fields{
		"quantity":     quantity.String(),
		"new_quantity": newQuantity,
	}).Info("decrement confirmed")
	return encoding.ScaleToWei(amount)
}

// unconfirmed records a mutation the backend may have applied without saying so.
// The caller still reports zero whatever happens here.
func (d *Decrementer) unconfirmed(ctx context.Context, log logrus.FieldLogger, address, productID, amount, quantity, reason string) {
	log = log.WithField("reason", reason)
	log.Warn("decrement not confirmed by backend, reporting zero")

	if d.recon == nil {
		return
	}
	err := d.recon.RecordUnconfirmed(ctx, models.UnconfirmedMutation{
		Function:  DecrementUserRealBalance,
		Address:   address,
		ProductID: productID,
		Amount:    amount,
		Quantity:  quantity,
		Reason:    reason,
	})
	if err != nil {
		log.WithError(err).Error("failed to record unconfirmed decrement")
	}
}

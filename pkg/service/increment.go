package service

import (
	"context"
	"encoding/json"
	"math/big"

	"balance_gateway/models"
	"balance_gateway/pkg/backend"
	"balance_gateway/pkg/encoding"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Incrementer struct {
	backend Backend
	log     logrus.FieldLogger
}

func NewIncrementer(b Backend, log logrus.FieldLogger) *Incrementer {
	return &Incrementer{backend: b, log: log}
}

func (i *Incrementer) Name() string { return IncrementUserRealBalance }

// Run expects [address, productId, quantity] and returns the new quantity unscaled.
func (i *Incrementer) Run(ctx context.Context, args []string) (*big.Int, error) {
	if err := requireArgs(args, "address", "productId", "quantity"); err != nil {
		return nil, err
	}
	address, productID := args[0], args[1]
	quantity, err := parseAmount("quantity", args[2])
	if err != nil {
		return nil, err
	}

	result, err := i.backend.Increment(ctx, models.AdjustRequest{
		ProductID: productID,
		Address:   address,
		Quantity:  json.Number(quantity.String()),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "increment %s of %s", productID, address)
	}
	if result.Quantity == nil {
		return nil, errors.Wrap(backend.ErrMalformedResponse, "increment response has no quantity")
	}

	out, err := encoding.ToUnsigned(*result.Quantity)
	if err != nil {
		return nil, errors.Wrapf(backend.ErrMalformedResponse, "new quantity: %v", err)
	}

	i.log.WithFields(logrus.Fields{
		"function":     IncrementUserRealBalance,
		"address":      address,
		"product_id":   productID,
		"quantity":     quantity.String(),
		"new_quantity": out.String(),
	}).Info("increment applied")
	return out, nil
}

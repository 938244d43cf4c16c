package service

import (
	"context"
	"math/big"

	"balance_gateway/pkg/backend"
	"balance_gateway/pkg/encoding"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Mode int

const (
	// ModeRaw returns the backend value as is; it must already be an unsigned integer.
	ModeRaw Mode = iota
	// ModeScaled returns round(value * 10^18).
	ModeScaled
)

func (m Mode) String() string {
	if m == ModeScaled {
		return "scaled"
	}
	return "raw"
}

type BalanceReader struct {
	name    string
	mode    Mode
	backend Backend
	log     logrus.FieldLogger
}

func NewBalanceReader(name string, mode Mode, b Backend, log logrus.FieldLogger) *BalanceReader {
	return &BalanceReader{
		name:    name,
		mode:    mode,
		backend: b,
		log:     log,
	}
}

func (r *BalanceReader) Name() string { return r.name }

// Run expects [address, assetOrProductId].
func (r *BalanceReader) Run(ctx context.Context, args []string) (*big.Int, error) {
	if err := requireArgs(args, "address", "assetId"); err != nil {
		return nil, err
	}
	address, assetID := args[0], args[1]

	record, err := r.backend.GetUserStock(ctx, address, assetID)
	if err != nil {
		return nil, errors.Wrapf(err, "get stock %s of %s", assetID, address)
	}
	if record.Value == nil {
		return nil, errors.Wrapf(backend.ErrMalformedResponse, "stock %s of %s has no value", assetID, address)
	}

	var out *big.Int
	switch r.mode {
	case ModeScaled:
		out, err = encoding.ScaleToWei(*record.Value)
		if err != nil {
			return nil, errors.Wrapf(backend.ErrMalformedResponse, "balance: %v", err)
		}
	default:
		out, err = encoding.ToUnsigned(*record.Value)
		if err != nil {
			return nil, errors.Wrapf(backend.ErrMalformedResponse, "balance: %v", err)
		}
	}

	r.log.WithFields(logrus.Fields{
		"function": r.name,
		"address":  address,
		"asset_id": assetID,
		"mode":     r.mode.String(),
		"value":    record.Value.String(),
	}).Info("balance read")
	return out, nil
}

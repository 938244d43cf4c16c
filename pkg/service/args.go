package service

import (
	"strings"

	"balance_gateway/pkg/encoding"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownFunction = errors.New("unknown function")
)

// requireArgs checks that the leading positional args are present and non-blank.
// Extra trailing args are ignored.
func requireArgs(args []string, names ...string) error {
	if len(args) < len(names) {
		return errors.Wrapf(ErrInvalidArgument, "expected %d arguments (%s), got %d",
			len(names), strings.Join(names, ", "), len(args))
	}
	for i, name := range names {
		if strings.TrimSpace(args[i]) == "" {
			return errors.Wrapf(ErrInvalidArgument, "%s is empty", name)
		}
	}
	return nil
}

// maxAmountLength bounds the raw text handed to the decimal parser.
const maxAmountLength = 128

func parseAmount(name, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > maxAmountLength {
		return decimal.Zero, errors.Wrapf(ErrInvalidArgument, "%s is longer than %d characters", name, maxAmountLength)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrInvalidArgument, "%s %q is not a number", name, raw)
	}
	if err := encoding.CheckRange(d); err != nil {
		return decimal.Zero, errors.Wrapf(ErrInvalidArgument, "%s %q: %v", name, raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, errors.Wrapf(ErrInvalidArgument, "%s %s is negative", name, d)
	}
	return d, nil
}

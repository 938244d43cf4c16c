// Package encoding turns backend decimal amounts into the uint256 words consumed on-chain.
package encoding

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// WeiDecimals is the number of implied decimal places in a scaled amount.
const WeiDecimals = 18

const (
	// uint256Digits is the decimal length of 2^256-1.
	uint256Digits = 78
	// MaxScaledIntegerDigits keeps value*10^18 below 2^256.
	MaxScaledIntegerDigits = uint256Digits - 1 - WeiDecimals
	// MaxFractionDigits bounds the precision accepted from callers and the backend.
	MaxFractionDigits = 36
)

var (
	ErrNegative   = errors.New("value is negative")
	ErrFractional = errors.New("value is not an integer")
	ErrOverflow   = errors.New("value does not fit in 256 bits")
	ErrPrecision  = errors.New("value has too many fractional digits")
)

var uint256Args abi.Arguments

func init() {
	typ, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic(err)
	}
	uint256Args = abi.Arguments{{Type: typ}}
}

// EncodeUint256 packs v as a single 32-byte big-endian ABI word. A nil v encodes zero.
func EncodeUint256(v *big.Int) ([]byte, error) {
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegative, "encode %s", v)
	}
	if v.Cmp(math.MaxBig256) > 0 {
		return nil, errors.Wrapf(ErrOverflow, "encode %s", v)
	}
	return uint256Args.Pack(v)
}

// EncodeHex is EncodeUint256 rendered as a 0x-prefixed hex string.
func EncodeHex(v *big.Int) (string, error) {
	word, err := EncodeUint256(v)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(word), nil
}

// CheckRange rejects d when d*10^18 cannot fit in a uint256 or when d is more precise
// than MaxFractionDigits. It only inspects exponent and coefficient length, so it is
// safe to call on values with huge exponents before any arithmetic or formatting.
func CheckRange(d decimal.Decimal) error {
	return checkDigits(d, MaxScaledIntegerDigits)
}

func checkDigits(d decimal.Decimal, maxIntegerDigits int64) error {
	exp := int64(d.Exponent())
	if exp < -MaxFractionDigits {
		return errors.Wrapf(ErrPrecision, "%d fractional digits, at most %d", -exp, MaxFractionDigits)
	}
	if digits := int64(d.NumDigits()) + exp; digits > maxIntegerDigits {
		return errors.Wrapf(ErrOverflow, "%d integer digits, at most %d", digits, maxIntegerDigits)
	}
	return nil
}

// ScaleToWei multiplies d by 10^18 and rounds half away from zero.
func ScaleToWei(d decimal.Decimal) (*big.Int, error) {
	if err := CheckRange(d); err != nil {
		return nil, err
	}
	if d.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegative, "scale %s", d)
	}
	return d.Shift(WeiDecimals).Round(0).BigInt(), nil
}

// ToUnsigned converts d unchanged, rejecting negative, fractional and oversized values.
func ToUnsigned(d decimal.Decimal) (*big.Int, error) {
	if err := checkDigits(d, uint256Digits); err != nil {
		return nil, err
	}
	if d.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegative, "convert %s", d)
	}
	if !d.IsInteger() {
		return nil, errors.Wrapf(ErrFractional, "convert %s", d)
	}
	v := d.BigInt()
	if v.Cmp(math.MaxBig256) > 0 {
		return nil, errors.Wrap(ErrOverflow, "convert")
	}
	return v, nil
}

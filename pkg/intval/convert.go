package intval

import (
	"math/big"

	"vmint/pkg/errors"
)

// Conversions between Value and native fixed-width integers. Widening
// conversions cannot fail; narrowing conversions route through explicit
// range checks instead of trusting native-width assumptions.

// FromInt64 wraps a native signed integer. Never fails: every int64 fits.
func FromInt64(x int64) Value {
	return Value{mag: big.NewInt(x)}
}

// FromUint64 wraps a native unsigned integer. Never fails.
func FromUint64(x uint64) Value {
	return Value{mag: new(big.Int).SetUint64(x)}
}

// FromString parses a number in base 0 notation (decimal, or 0x/0b/0o
// prefixed) and width-checks the result.
func FromString(s string) (Value, error) {
	mag, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return NaN(), errors.NewEncoding("malformed integer literal %q", s)
	}
	if !checkOverflow(mag) {
		return NaN(), errors.NewIntegerOverflow("%s does not fit into 257 bits", mag.String())
	}
	return Value{mag: mag}, nil
}

// ToInt64 narrows the value to a native signed integer.
func (v Value) ToInt64() (int64, error) {
	if v.mag == nil {
		return 0, errors.NewNaNOperand("cannot convert NaN to int64")
	}
	if !v.mag.IsInt64() {
		return 0, errors.NewRange("%s does not fit into int64", v.String())
	}
	return v.mag.Int64(), nil
}

// ToUint64 narrows the value to a native unsigned integer.
func (v Value) ToUint64() (uint64, error) {
	if v.mag == nil {
		return 0, errors.NewNaNOperand("cannot convert NaN to uint64")
	}
	if !v.mag.IsUint64() {
		return 0, errors.NewRange("%s does not fit into uint64", v.String())
	}
	return v.mag.Uint64(), nil
}

// ToBig returns a copy of the magnitude. Panics on NaN; callers must check
// IsNaN first.
func (v Value) ToBig() *big.Int {
	return new(big.Int).Set(v.mustMag())
}

// Byte-buffer conversions. These share the decoders' overflow handling; the
// little-endian variants only differ in digit order.

// FromBytesBE interprets buf as an unsigned big-endian integer.
func FromBytesBE(buf []byte) (Value, error) {
	return DecodeUnsigned(buf)
}

// FromBytesLE interprets buf as an unsigned little-endian integer.
func FromBytesLE(buf []byte) (Value, error) {
	return DecodeUnsigned(reverseBytes(buf))
}

// FromSignedBytesBE interprets buf as a big-endian two's-complement integer.
func FromSignedBytesBE(buf []byte) (Value, error) {
	return DecodeSigned(buf)
}

// FromSignedBytesLE interprets buf as a little-endian two's-complement
// integer.
func FromSignedBytesLE(buf []byte) (Value, error) {
	return DecodeSigned(reverseBytes(buf))
}

func reverseBytes(buf []byte) []byte {
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[len(buf)-1-i] = b
	}
	return out
}

package intval

import (
	"math/big"

	"vmint/pkg/errors"
)

// Value is the numeric cell of the VM: either NaN or a signed magnitude that
// fits into 257 bits using the two's-complement size rule (see bitsize). The
// NaN tag is the nil magnitude; no integer bit pattern is reserved for it.
//
// A Value is immutable by convention: operations never modify a magnitude
// once it is wrapped, so copies may share the underlying big.Int. The only
// mutating entry points are Withdraw and Replace, which act on a caller-owned
// slot, not on the magnitude.
type Value struct {
	mag *big.Int // nil means NaN
}

// Zero constructs a new value set to 0.
func Zero() Value {
	return Value{mag: new(big.Int)}
}

// One constructs a new value set to 1.
func One() Value {
	return Value{mag: big.NewInt(1)}
}

// MinusOne constructs a new value set to -1.
func MinusOne() Value {
	return Value{mag: big.NewInt(-1)}
}

// NaN constructs a new Not-a-Number value.
func NaN() Value {
	return Value{}
}

// FromBig wraps a copy of x, enforcing the 257-bit bound. The result is NaN
// plus an IntegerOverflowError when x does not fit.
func FromBig(x *big.Int) (Value, error) {
	if !checkOverflow(x) {
		return NaN(), errors.NewIntegerOverflow("%s does not fit into 257 bits", x.String())
	}
	return Value{mag: new(big.Int).Set(x)}, nil
}

// IsNaN reports whether the value is Not-a-Number.
func (v Value) IsNaN() bool {
	return v.mag == nil
}

// IsNeg reports whether the value is less than zero. NaN is not negative.
func (v Value) IsNeg() bool {
	return v.mag != nil && v.mag.Sign() < 0
}

// IsZero reports whether the value is zero. NaN is not zero.
func (v Value) IsZero() bool {
	return v.mag != nil && v.mag.Sign() == 0
}

// Equal reports structural equality: two numbers with the same magnitude are
// equal, and NaN is equal only to NaN.
func (v Value) Equal(other Value) bool {
	if v.mag == nil || other.mag == nil {
		return v.mag == nil && other.mag == nil
	}
	return v.mag.Cmp(other.mag) == 0
}

// Withdraw takes the current value out of the slot and resets the slot to
// zero, so the slot always holds a valid number afterwards.
func (v *Value) Withdraw() Value {
	out := *v
	*v = Zero()
	return out
}

// Replace overwrites the slot with a new value; the prior value is discarded.
func (v *Value) Replace(newValue Value) {
	*v = newValue
}

// Cmp compares two values under the given behavior. When both operands are
// numbers it reports their ordering (-1, 0 or +1) with ok == true. A NaN
// operand is unordered: the quiet behavior reports ok == false with a zero
// ordering, the checked behavior returns a NaNOperandError.
func Cmp[B Behavior](lhs, rhs Value) (ord int, ok bool, err error) {
	if lhs.mag == nil || rhs.mag == nil {
		var b B
		if err := b.OnNaNParameter(); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}
	return lhs.mag.Cmp(rhs.mag), true, nil
}

// FitsIn reports whether the signed value fits into the given number of bits.
func (v Value) FitsIn(bits int) bool {
	return v.Bitsize() <= bits
}

// UFitsIn reports whether the value is non-negative and its unsigned form
// fits into the given number of bits.
func (v Value) UFitsIn(bits int) bool {
	return !v.IsNeg() && v.UBitsize() <= bits
}

// Bitsize returns the fewest bits necessary to express the signed value in
// two's-complement form. Panics on NaN: callers must check IsNaN first.
func (v Value) Bitsize() int {
	return bitsize(v.mustMag())
}

// UBitsize returns the fewest bits necessary to express the value without a
// sign. Panics on NaN or on a negative value.
func (v Value) UBitsize() int {
	return ubitsize(v.mustMag())
}

// mustMag unwraps the magnitude of a value that is known to be a number.
func (v Value) mustMag() *big.Int {
	if v.mag == nil {
		panic("intval: value must be a valid number, not NaN")
	}
	return v.mag
}

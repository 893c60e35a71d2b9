package intval

import "math/big"

// RoundMode selects how DivMod rounds a quotient that is not exact.
type RoundMode int

const (
	// FloorRound rounds the quotient toward negative infinity; the
	// remainder takes the divisor's sign. This is the VM's default division.
	FloorRound RoundMode = iota
	// CeilRound rounds the quotient toward positive infinity; the remainder
	// takes the sign opposite to the divisor.
	CeilRound
	// NearestRound rounds the quotient to the nearest integer, resolving
	// ties toward positive infinity.
	NearestRound
)

// Add sums two values under the given behavior.
func Add[B Behavior](lhs, rhs Value) (Value, error) {
	return binaryOp[B](lhs, rhs,
		func(x, y *big.Int) *big.Int {
			return new(big.Int).Add(x, y)
		},
		singleNaN,
		processSingleResult[B],
	)
}

// Sub subtracts rhs from lhs under the given behavior.
func Sub[B Behavior](lhs, rhs Value) (Value, error) {
	return binaryOp[B](lhs, rhs,
		func(x, y *big.Int) *big.Int {
			return new(big.Int).Sub(x, y)
		},
		singleNaN,
		processSingleResult[B],
	)
}

// Mul multiplies two values under the given behavior.
func Mul[B Behavior](lhs, rhs Value) (Value, error) {
	return binaryOp[B](lhs, rhs,
		func(x, y *big.Int) *big.Int {
			return new(big.Int).Mul(x, y)
		},
		singleNaN,
		processSingleResult[B],
	)
}

// Neg negates a value under the given behavior. Negating the minimum value
// overflows: its magnitude gains a sign bit.
func Neg[B Behavior](operand Value) (Value, error) {
	return unaryOp[B](operand,
		func(x *big.Int) *big.Int {
			return new(big.Int).Neg(x)
		},
		singleNaN,
		processSingleResult[B],
	)
}

// DivMod divides lhs by rhs under the given behavior, rounding the quotient
// per mode, and returns quotient and remainder satisfying
// lhs == quotient*rhs + remainder. Division by zero is handled like an
// overflowing result: an error under Checked, a NaN pair under Quiet.
func DivMod[B Behavior](lhs, rhs Value, mode RoundMode) (Value, Value, error) {
	pair, err := binaryOp[B](lhs, rhs,
		func(x, y *big.Int) rawPair {
			if y.Sign() == 0 {
				return rawPair{}
			}
			q, r := divmod(x, y, mode)
			return rawPair{first: q, second: r}
		},
		doubleNaN,
		processDoubleResult[B],
	)
	if err != nil {
		return NaN(), NaN(), err
	}
	return pair.first, pair.second, nil
}

// Div returns only the quotient of DivMod.
func Div[B Behavior](lhs, rhs Value, mode RoundMode) (Value, error) {
	q, _, err := DivMod[B](lhs, rhs, mode)
	return q, err
}

// Mod returns only the remainder of DivMod.
func Mod[B Behavior](lhs, rhs Value, mode RoundMode) (Value, error) {
	_, r, err := DivMod[B](lhs, rhs, mode)
	return r, err
}

// divmod computes the rounded quotient and matching remainder over raw
// magnitudes. y must be non-zero.
func divmod(x, y *big.Int, mode RoundMode) (*big.Int, *big.Int) {
	switch mode {
	case CeilRound:
		q, r := floorDivMod(x, y)
		if r.Sign() != 0 {
			q.Add(q, bigOne)
			r.Sub(r, y)
		}
		return q, r
	case NearestRound:
		// floor((2x + y) / 2y) rounds x/y half toward positive infinity.
		num := new(big.Int).Lsh(x, 1)
		num.Add(num, y)
		den := new(big.Int).Lsh(y, 1)
		q, _ := floorDivMod(num, den)
		r := new(big.Int).Mul(q, y)
		r.Sub(x, r)
		return q, r
	default:
		return floorDivMod(x, y)
	}
}

// floorDivMod is Euclidean-style floored division: the quotient rounds
// toward negative infinity and the remainder has the divisor's sign.
func floorDivMod(x, y *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, bigOne)
		r.Add(r, y)
	}
	return q, r
}

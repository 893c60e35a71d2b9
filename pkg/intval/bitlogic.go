package intval

import "math/big"

// Bitwise operations treat values as infinite two's-complement bit strings,
// which is exactly the semantics math/big gives for negative operands. The
// results still pass the width check: Not and the shifts can leave the
// 257-bit domain even when their inputs are inside it.

// And computes the bitwise conjunction of two values.
func And[B Behavior](lhs, rhs Value) (Value, error) {
	return binaryOp[B](lhs, rhs,
		func(x, y *big.Int) *big.Int {
			return new(big.Int).And(x, y)
		},
		singleNaN,
		processSingleResult[B],
	)
}

// Or computes the bitwise disjunction of two values.
func Or[B Behavior](lhs, rhs Value) (Value, error) {
	return binaryOp[B](lhs, rhs,
		func(x, y *big.Int) *big.Int {
			return new(big.Int).Or(x, y)
		},
		singleNaN,
		processSingleResult[B],
	)
}

// Xor computes the bitwise exclusive-or of two values.
func Xor[B Behavior](lhs, rhs Value) (Value, error) {
	return binaryOp[B](lhs, rhs,
		func(x, y *big.Int) *big.Int {
			return new(big.Int).Xor(x, y)
		},
		singleNaN,
		processSingleResult[B],
	)
}

// Not computes the bitwise complement, ^x == -x-1.
func Not[B Behavior](operand Value) (Value, error) {
	return unaryOp[B](operand,
		func(x *big.Int) *big.Int {
			return new(big.Int).Not(x)
		},
		singleNaN,
		processSingleResult[B],
	)
}

// Shl shifts a value left by the given number of bits.
func Shl[B Behavior](operand Value, shift uint) (Value, error) {
	return unaryOp[B](operand,
		func(x *big.Int) *big.Int {
			return new(big.Int).Lsh(x, shift)
		},
		singleNaN,
		processSingleResult[B],
	)
}

// Shr shifts a value right arithmetically by the given number of bits; the
// result rounds toward negative infinity for negative values.
func Shr[B Behavior](operand Value, shift uint) (Value, error) {
	return unaryOp[B](operand,
		func(x *big.Int) *big.Int {
			return new(big.Int).Rsh(x, shift)
		},
		singleNaN,
		processSingleResult[B],
	)
}

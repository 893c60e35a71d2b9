package intval

import "math/big"

// maxBitsize is the widest two's-complement size a Value may have: 256
// magnitude bits plus the sign bit. Everything wider is an overflow.
const maxBitsize = 257

// bitsize returns the minimum number of bits needed to represent x in
// two's-complement form. big.Int.BitLen alone is not enough: for negative
// numbers it reports the magnitude's length, which matches the
// two's-complement size only when the magnitude is a power of two.
func bitsize(x *big.Int) int {
	sign := x.Sign()
	if sign == 0 {
		return 1
	}
	n := x.BitLen()
	if sign > 0 {
		return n + 1 // room for the sign bit
	}
	if n == 1 {
		return 1 // -1
	}
	// |x| & (|x| - 1) == 0 detects negative powers of two, which need no
	// extra sign bit.
	abs := new(big.Int).Abs(x)
	probe := new(big.Int).Sub(abs, bigOne)
	if probe.And(probe, abs).Sign() == 0 {
		return n
	}
	return n + 1
}

// ubitsize returns the minimum number of bits needed to represent the
// non-negative x without a sign bit. Panics on negative input; the unsigned
// size of a negative number is meaningless.
func ubitsize(x *big.Int) int {
	if x.Sign() < 0 {
		panic("intval: unsigned bit size of a negative value")
	}
	return x.BitLen()
}

// checkOverflow reports whether x fits into the VM's native integer width.
// This is the single width check every result passes through.
func checkOverflow(x *big.Int) bool {
	return bitsize(x) <= maxBitsize
}

var bigOne = big.NewInt(1)

package intval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsize(t *testing.T) {
	cases := []struct {
		value    int64
		expected int
	}{
		{0, 1},
		{-1, 1},
		{1, 2},
		{-2, 2},  // negative power of two: no extra sign bit
		{2, 3},   // "10" needs a sign bit on top
		{3, 3},   // "011"
		{-3, 3},  // "101"
		{-4, 3},  // negative power of two
		{4, 4},
		{7, 4},
		{-7, 4},
		{-8, 4},  // negative power of two
		{127, 8},
		{128, 9},
		{-128, 8}, // negative power of two
		{-129, 9},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, bitsize(big.NewInt(c.value)), "bitsize(%d)", c.value)
	}
}

func TestBitsizeWide(t *testing.T) {
	// 2^256 - 1 is the widest positive number: 256 magnitude bits + sign.
	assert.Equal(t, 257, bitsize(new(big.Int).Sub(pow2(256), big.NewInt(1))))
	// -2^256 is a negative power of two and needs exactly 257 bits.
	assert.Equal(t, 257, bitsize(new(big.Int).Neg(pow2(256))))
	// -(2^256 - 1) is not a power of two: 258 bits.
	assert.Equal(t, 258, bitsize(new(big.Int).Sub(big.NewInt(1), pow2(256))))
	assert.Equal(t, 258, bitsize(pow2(256)))
}

func TestUbitsize(t *testing.T) {
	assert.Equal(t, 0, ubitsize(big.NewInt(0)))
	assert.Equal(t, 1, ubitsize(big.NewInt(1)))
	assert.Equal(t, 2, ubitsize(big.NewInt(3)))
	assert.Equal(t, 8, ubitsize(big.NewInt(255)))
	assert.Equal(t, 256, ubitsize(new(big.Int).Sub(pow2(256), big.NewInt(1))))
	assert.Panics(t, func() { ubitsize(big.NewInt(-1)) })
}

func TestCheckOverflow(t *testing.T) {
	fits := []*big.Int{
		big.NewInt(0),
		big.NewInt(-1),
		new(big.Int).Sub(pow2(256), big.NewInt(1)),       // bitsize 257
		new(big.Int).Neg(pow2(256)),                      // bitsize 257
		new(big.Int).Add(pow2(254), big.NewInt(5)),       // bitsize 256
		new(big.Int).Neg(new(big.Int).Add(pow2(254), big.NewInt(5))),
	}
	for _, x := range fits {
		assert.True(t, checkOverflow(x), "checkOverflow(%s)", x)
	}

	tooWide := []*big.Int{
		pow2(256), // bitsize 258
		new(big.Int).Neg(new(big.Int).Add(pow2(256), big.NewInt(1))),
		pow2(257),
		new(big.Int).Neg(pow2(257)), // power of two, still 258 bits
	}
	for _, x := range tooWide {
		assert.False(t, checkOverflow(x), "checkOverflow(%s)", x)
	}

	// check_overflow agrees with bitsize on the whole near-boundary band.
	for delta := int64(-2); delta <= 2; delta++ {
		x := new(big.Int).Add(pow2(256), big.NewInt(delta))
		assert.Equal(t, bitsize(x) <= 257, checkOverflow(x), "x = 2^256%+d", delta)
		y := new(big.Int).Neg(x)
		assert.Equal(t, bitsize(y) <= 257, checkOverflow(y), "y = -(2^256%+d)", delta)
	}
}

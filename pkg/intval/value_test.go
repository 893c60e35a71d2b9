package intval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmint/pkg/errors"
)

// pow2 returns 2^n as a fresh big.Int.
func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// maxValue is the largest representable number, 2^256 - 1.
func maxValue(t *testing.T) Value {
	t.Helper()
	v, err := FromBig(new(big.Int).Sub(pow2(256), big.NewInt(1)))
	require.NoError(t, err)
	return v
}

// minValue is the smallest representable number, -2^256.
func minValue(t *testing.T) Value {
	t.Helper()
	v, err := FromBig(new(big.Int).Neg(pow2(256)))
	require.NoError(t, err)
	return v
}

func TestConstructors(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.False(t, Zero().IsNeg())
	assert.False(t, Zero().IsNaN())

	assert.False(t, One().IsZero())
	assert.False(t, One().IsNeg())

	assert.True(t, MinusOne().IsNeg())
	assert.False(t, MinusOne().IsZero())

	nan := NaN()
	assert.True(t, nan.IsNaN())
	assert.False(t, nan.IsZero())
	assert.False(t, nan.IsNeg())
}

func TestFromBigRoundTrip(t *testing.T) {
	cases := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(123456789),
		new(big.Int).Sub(pow2(256), big.NewInt(1)), // max
		new(big.Int).Neg(pow2(256)),                // min
	}
	for _, x := range cases {
		v, err := FromBig(x)
		require.NoError(t, err, "FromBig(%s)", x)
		assert.False(t, v.IsNaN())
		assert.Equal(t, 0, v.ToBig().Cmp(x), "round trip of %s", x)
	}
}

func TestFromBigOverflow(t *testing.T) {
	outOfRange := []*big.Int{
		pow2(256), // max + 1
		new(big.Int).Neg(new(big.Int).Add(pow2(256), big.NewInt(1))), // min - 1
		pow2(300),
	}
	for _, x := range outOfRange {
		v, err := FromBig(x)
		require.Error(t, err, "FromBig(%s)", x)
		assert.True(t, errors.IsIntegerOverflow(err))
		assert.True(t, v.IsNaN())
	}
}

func TestFromBigCopiesInput(t *testing.T) {
	x := big.NewInt(42)
	v, err := FromBig(x)
	require.NoError(t, err)
	x.SetInt64(-7)
	assert.Equal(t, "42", v.String())
}

func TestEqual(t *testing.T) {
	a, err := FromBig(big.NewInt(5))
	require.NoError(t, err)
	b := FromInt64(5)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(One()))

	// NaN is structurally equal only to NaN.
	assert.True(t, NaN().Equal(NaN()))
	assert.False(t, NaN().Equal(Zero()))
	assert.False(t, Zero().Equal(NaN()))
}

func TestWithdraw(t *testing.T) {
	slot := FromInt64(99)
	taken := slot.Withdraw()
	assert.Equal(t, "99", taken.String())
	assert.True(t, slot.IsZero())

	// A second withdraw takes the zero the first one left behind.
	again := slot.Withdraw()
	assert.True(t, again.IsZero())
	assert.True(t, slot.IsZero())
}

func TestReplace(t *testing.T) {
	slot := Zero()
	slot.Replace(MinusOne())
	assert.True(t, slot.IsNeg())
	slot.Replace(NaN())
	assert.True(t, slot.IsNaN())
}

func TestCmpChecked(t *testing.T) {
	ord, ok, err := Cmp[Checked](One(), Zero())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, ord)

	ord, ok, err = Cmp[Checked](Zero(), One())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -1, ord)

	ord, ok, err = Cmp[Checked](One(), One())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, ord)
}

func TestCmpNaNOperand(t *testing.T) {
	// Checked: failure. NaN on either side, or both.
	for _, pair := range [][2]Value{{NaN(), Zero()}, {Zero(), NaN()}, {NaN(), NaN()}} {
		_, _, err := Cmp[Checked](pair[0], pair[1])
		require.Error(t, err)
		assert.True(t, errors.IsNaNOperand(err))
	}

	// Quiet: success with no ordering.
	ord, ok, err := Cmp[Quiet](NaN(), Zero())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, ord)

	// NaN is unordered even against itself.
	_, ok, err = Cmp[Quiet](NaN(), NaN())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFitsIn(t *testing.T) {
	assert.True(t, Zero().FitsIn(1))
	assert.True(t, MinusOne().FitsIn(1))
	assert.False(t, One().FitsIn(1))
	assert.True(t, One().FitsIn(2))

	assert.True(t, maxValue(t).FitsIn(257))
	assert.False(t, maxValue(t).FitsIn(256))
	assert.True(t, minValue(t).FitsIn(257))
}

func TestUFitsIn(t *testing.T) {
	assert.True(t, Zero().UFitsIn(0))
	assert.True(t, One().UFitsIn(1))
	assert.True(t, maxValue(t).UFitsIn(256))
	assert.False(t, maxValue(t).UFitsIn(255))

	// Negative values never fit an unsigned width, however wide.
	for _, bits := range []int{0, 1, 64, 256, 1024} {
		assert.False(t, MinusOne().UFitsIn(bits), "bits=%d", bits)
		assert.False(t, minValue(t).UFitsIn(bits), "bits=%d", bits)
	}
}

func TestBitsizeOnNaNPanics(t *testing.T) {
	assert.Panics(t, func() { NaN().Bitsize() })
	assert.Panics(t, func() { NaN().UBitsize() })
	assert.Panics(t, func() { MinusOne().UBitsize() })
}

func TestStringAndText(t *testing.T) {
	assert.Equal(t, "NaN", NaN().String())
	assert.Equal(t, "-1", MinusOne().String())
	assert.Equal(t, "ff", FromInt64(255).Text(16))
	assert.Equal(t, "NaN", NaN().Text(16))
}

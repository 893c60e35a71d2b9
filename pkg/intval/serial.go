package intval

import (
	"math/big"
	mathbits "math/bits"

	"vmint/pkg/errors"
)

// Cell payload encoding: fixed-width two's-complement integers, big-endian,
// padded to whole bytes. The requested width is in bits; the byte image is
// ceil(bits/8) bytes with the sign extended through any padding bits.

// wordBytes is the size of a big.Word in bytes.
const wordBytes = mathbits.UintSize / 8

// EncodeSigned renders v as a signed two's-complement image of the given bit
// width. NaN has no cell representation and is rejected before any width
// handling; a number that does not fit the width is a range failure.
func EncodeSigned(v Value, bits int) ([]byte, error) {
	if v.IsNaN() {
		return nil, errors.NewEncoding("cannot encode NaN as a %d-bit integer", bits)
	}
	if bits < 1 {
		return nil, errors.NewRange("invalid signed width %d", bits)
	}
	if !v.FitsIn(bits) {
		return nil, errors.NewRange("%s does not fit into %d signed bits", v.String(), bits)
	}
	n := (bits + 7) / 8
	buf := make([]byte, n)
	if v.mag.Sign() >= 0 {
		v.mag.FillBytes(buf)
		return buf, nil
	}
	// Negative: take the magnitude's digits and negate them in place. The
	// high words invert to all ones, which is exactly the sign extension the
	// truncated image needs.
	words := make([]big.Word, (n+wordBytes-1)/wordBytes)
	abs := new(big.Int).Abs(v.mag)
	copy(words, abs.Bits())
	twosComplement(words)
	for i := 0; i < n; i++ {
		w := words[i/wordBytes] >> (8 * (i % wordBytes))
		buf[n-1-i] = byte(w)
	}
	return buf, nil
}

// EncodeUnsigned renders a non-negative v as an unsigned big-endian image of
// the given bit width.
func EncodeUnsigned(v Value, bits int) ([]byte, error) {
	if v.IsNaN() {
		return nil, errors.NewEncoding("cannot encode NaN as a %d-bit unsigned integer", bits)
	}
	if bits < 1 {
		return nil, errors.NewRange("invalid unsigned width %d", bits)
	}
	if !v.UFitsIn(bits) {
		return nil, errors.NewRange("%s does not fit into %d unsigned bits", v.String(), bits)
	}
	buf := make([]byte, (bits+7)/8)
	v.mag.FillBytes(buf)
	return buf, nil
}

// DecodeSigned rebuilds a value from a big-endian two's-complement image,
// interpreting all 8*len(buf) bits. The result is width-checked like any
// computed result.
func DecodeSigned(buf []byte) (Value, error) {
	if len(buf) == 0 {
		return NaN(), errors.NewEncoding("empty signed integer image")
	}
	if buf[0]&0x80 == 0 {
		return DecodeUnsigned(buf)
	}
	words := bufToWords(buf)
	// Sign-extend through the top word before negating, so the complement
	// yields the magnitude rather than a word-width artifact.
	for j := len(buf); j < len(words)*wordBytes; j++ {
		words[j/wordBytes] |= big.Word(0xFF) << (8 * (j % wordBytes))
	}
	twosComplement(words)
	mag := new(big.Int).SetBits(words)
	mag.Neg(mag)
	if !checkOverflow(mag) {
		return NaN(), errors.NewIntegerOverflow("decoded value %s does not fit into 257 bits", mag.String())
	}
	return Value{mag: mag}, nil
}

// DecodeUnsigned rebuilds a value from a big-endian unsigned image.
func DecodeUnsigned(buf []byte) (Value, error) {
	if len(buf) == 0 {
		return NaN(), errors.NewEncoding("empty unsigned integer image")
	}
	mag := new(big.Int).SetBytes(buf)
	if !checkOverflow(mag) {
		return NaN(), errors.NewIntegerOverflow("decoded value %s does not fit into 257 bits", mag.String())
	}
	return Value{mag: mag}, nil
}

// bufToWords unpacks a big-endian byte image into little-endian words.
func bufToWords(buf []byte) []big.Word {
	words := make([]big.Word, (len(buf)+wordBytes-1)/wordBytes)
	for i, b := range buf {
		j := len(buf) - 1 - i
		words[j/wordBytes] |= big.Word(b) << (8 * (j % wordBytes))
	}
	return words
}

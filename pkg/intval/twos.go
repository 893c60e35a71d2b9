package intval

import "math/big"

// twosComplement negates a magnitude in place, interpreting words as a
// little-endian two's-complement digit sequence: every word is inverted, then
// one is added with the carry rippling up until a word does not wrap to zero.
// No width bound is applied here; callers that need the 257-bit guarantee run
// the result through checkOverflow themselves.
func twosComplement(words []big.Word) {
	carry := true
	for i := range words {
		words[i] = ^words[i]
		if carry {
			words[i]++
			carry = words[i] == 0
		}
	}
}

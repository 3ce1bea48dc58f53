//
// digit.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package codec

import (
	"fmt"

	"github.com/markkurossi/mpint/ct"
)

// Radix limits.
const (
	MinRadix = 2
	MaxRadix = 36
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// CheckRadix panics if radix is not in the range [MinRadix, MaxRadix].
func CheckRadix(radix uint32) {
	if radix < MinRadix || radix > MaxRadix {
		panic(fmt.Sprintf("codec: unsupported radix %d", radix))
	}
}

// inRange returns an all-ones mask if lo <= c <= hi and zero
// otherwise.
func inRange(c, lo, hi int32) int32 {
	return ((lo - 1 - c) & (c - hi - 1)) >> 31
}

// DecodeDigit decodes the ASCII digit c in the given radix. Digits
// above 9 are the letters a-z in either case. The returned choice is
// True if c is a valid digit for the radix. The execution time does
// not depend on c.
func DecodeDigit(c byte, radix uint32) (uint32, ct.Choice) {
	v := int32(c)

	num := inRange(v, '0', '9')
	lower := inRange(v, 'a', 'z')
	upper := inRange(v, 'A', 'Z')

	d := (num & (v - '0')) |
		(lower & (v - 'a' + 10)) |
		(upper & (v - 'A' + 10)) |
		(^(num | lower | upper) & 0xff)

	// d is in [0, 255] so d-radix is negative iff d < radix.
	valid := ct.Choice(uint32(d-int32(radix)) >> 31)

	return uint32(d), valid
}

// EncodeDigit returns the lowercase ASCII character for the digit d.
func EncodeDigit(d uint32) byte {
	return digits[d]
}

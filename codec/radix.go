//
// radix.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package codec

import (
	"math/bits"

	"github.com/markkurossi/mpint/limb"
)

// wordBase returns the largest power of radix that fits in a limb, and
// its exponent.
func wordBase(radix uint32) (limb.Limb, int) {
	base := limb.Limb(radix)
	n := 1
	for {
		hi, lo := bits.Mul(uint(base), uint(radix))
		if hi != 0 {
			return base, n
		}
		base = limb.Limb(lo)
		n++
	}
}

// mulAdd sets the sink limbs to limbs*m+a, pushing the final carry as
// a new limb. It returns false if the sink could not hold the carry.
func mulAdd(sink LimbSink, m, a limb.Limb) bool {
	limbs := sink.Limbs()
	carry := a
	for i := range limbs {
		limbs[i], carry = limb.MulAdd(limbs[i], m, carry)
	}
	if carry != 0 {
		return sink.Push(carry)
	}
	return true
}

// RadixDecodeStr decodes the big-endian digit string src in radix into
// the sink. The string may begin with a '+' sign and use '_' to
// separate digits. The function panics if radix is not in the range
// [MinRadix, MaxRadix].
//
// The decoding is variable-time and must only be used with public
// values.
func RadixDecodeStr(src string, radix uint32, sink LimbSink) error {
	CheckRadix(radix)

	if len(src) > 0 && src[0] == '+' {
		src = src[1:]
	}

	base, perLimb := wordBase(radix)

	var acc limb.Limb
	var mul limb.Limb = 1
	var pending, count int

	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '_' {
			if count == 0 {
				return ErrInvalidDigit
			}
			continue
		}
		d, ok := DecodeDigit(c, radix)
		if !ok.Bool() {
			return ErrInvalidDigit
		}
		acc = acc*limb.Limb(radix) + limb.Limb(d)
		mul *= limb.Limb(radix)
		pending++
		count++

		if pending == perLimb {
			if !mulAdd(sink, base, acc) {
				return ErrInputSize
			}
			acc = 0
			mul = 1
			pending = 0
		}
	}
	if count == 0 {
		return ErrInvalidDigit
	}
	if pending > 0 {
		if !mulAdd(sink, mul, acc) {
			return ErrInputSize
		}
	}
	return nil
}

// RadixEncodeLimbs encodes the limbs, least significant first, as a
// big-endian digit string in radix. The result has no leading zero
// digits and the zero value is encoded as "0". The function panics if
// radix is not in the range [MinRadix, MaxRadix].
//
// The encoding is variable-time and must only be used with public
// values.
func RadixEncodeLimbs(radix uint32, limbs []limb.Limb) string {
	CheckRadix(radix)

	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return "0"
	}
	if radix&(radix-1) == 0 {
		return encodePow2(radix, limbs[:n])
	}
	return encodeDiv(radix, limbs[:n])
}

// encodePow2 encodes the limbs by extracting log2(radix) bits per
// digit. The most significant limb of limbs must be non-zero.
func encodePow2(radix uint32, limbs []limb.Limb) string {
	shift := uint(bits.TrailingZeros32(radix))
	mask := limb.Limb(radix - 1)

	bitLen := uint(len(limbs)-1)*limb.Bits + uint(limbs[len(limbs)-1].Bits())
	ndigits := (bitLen + shift - 1) / shift

	result := make([]byte, ndigits)
	for i := uint(0); i < ndigits; i++ {
		pos := i * shift
		idx := pos / limb.Bits
		off := pos % limb.Bits

		d := limbs[idx] >> off
		if off+shift > limb.Bits && int(idx)+1 < len(limbs) {
			d |= limbs[idx+1] << (limb.Bits - off)
		}
		result[ndigits-1-i] = EncodeDigit(uint32(d & mask))
	}
	return string(result)
}

// encodeDiv encodes the limbs by repeated division with the largest
// power of radix fitting in a limb. The most significant limb of limbs
// must be non-zero.
func encodeDiv(radix uint32, limbs []limb.Limb) string {
	base, perLimb := wordBase(radix)

	work := make([]limb.Limb, len(limbs))
	copy(work, limbs)

	// Digits are produced least significant first.
	var result []byte
	for len(work) > 0 {
		var rem limb.Limb
		for i := len(work) - 1; i >= 0; i-- {
			work[i], rem = limb.DivRem(rem, work[i], base)
		}
		for len(work) > 0 && work[len(work)-1] == 0 {
			work = work[:len(work)-1]
		}
		for i := 0; i < perLimb; i++ {
			if len(work) == 0 && rem == 0 {
				break
			}
			result = append(result, EncodeDigit(uint32(rem%limb.Limb(radix))))
			rem /= limb.Limb(radix)
		}
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return string(result)
}

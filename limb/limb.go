//
// limb.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package limb implements the machine word digits of the multi-precision
// integers. All size computations of the integer codecs are expressed
// in terms of Bits and Bytes so that the wire formats are identical on
// 32-bit and 64-bit platforms.
package limb

import (
	"encoding/binary"
	"math/bits"
)

// Word is the platform word backing a limb.
type Word = uint

const (
	// Bits is the limb size in bits.
	Bits = bits.UintSize
	// Bytes is the limb size in bytes.
	Bytes = Bits / 8
)

// Limb is one base 2^Bits digit of a multi-precision integer.
type Limb Word

// Limb constants.
const (
	Zero Limb = 0
	One  Limb = 1
	Max  Limb = ^Limb(0)
)

// Count returns the number of limbs needed to hold bitsPrecision bits.
func Count(bitsPrecision uint32) int {
	return int((uint64(bitsPrecision) + Bits - 1) / Bits)
}

// FromBESlice decodes the big-endian chunk b into a limb. The chunk
// can be shorter than Bytes in which case it is zero-extended on its
// most significant end. The function panics if b is longer than Bytes.
func FromBESlice(b []byte) Limb {
	if len(b) > Bytes {
		panic("limb.FromBESlice: chunk too long")
	}
	var buf [Bytes]byte
	copy(buf[Bytes-len(b):], b)

	if Bits == 32 {
		return Limb(binary.BigEndian.Uint32(buf[:]))
	}
	return Limb(binary.BigEndian.Uint64(buf[:]))
}

// FromLESlice decodes the little-endian chunk b into a limb. The chunk
// can be shorter than Bytes in which case it is zero-extended on its
// most significant end. The function panics if b is longer than Bytes.
func FromLESlice(b []byte) Limb {
	if len(b) > Bytes {
		panic("limb.FromLESlice: chunk too long")
	}
	var buf [Bytes]byte
	copy(buf[:], b)

	if Bits == 32 {
		return Limb(binary.LittleEndian.Uint32(buf[:]))
	}
	return Limb(binary.LittleEndian.Uint64(buf[:]))
}

// PutBE writes l into dst[:Bytes] in big-endian byte order.
func (l Limb) PutBE(dst []byte) {
	if Bits == 32 {
		binary.BigEndian.PutUint32(dst, uint32(l))
	} else {
		binary.BigEndian.PutUint64(dst, uint64(l))
	}
}

// PutLE writes l into dst[:Bytes] in little-endian byte order.
func (l Limb) PutLE(dst []byte) {
	if Bits == 32 {
		binary.LittleEndian.PutUint32(dst, uint32(l))
	} else {
		binary.LittleEndian.PutUint64(dst, uint64(l))
	}
}

// LeadingZeros returns the number of leading zero bits in l.
func (l Limb) LeadingZeros() uint32 {
	return uint32(bits.LeadingZeros(uint(l)))
}

// Bits returns the minimal number of bits needed to represent l.
func (l Limb) Bits() uint32 {
	return Bits - l.LeadingZeros()
}

// MulAdd computes x*y+addend and returns the low and high limbs of the
// double-width result.
func MulAdd(x, y, addend Limb) (lo, hi Limb) {
	h, l := bits.Mul(uint(x), uint(y))
	l, c := bits.Add(l, uint(addend), 0)
	return Limb(l), Limb(h + c)
}

// DivRem divides the double limb hi:lo with d and returns the quotient
// and remainder. The function panics if hi >= d.
func DivRem(hi, lo, d Limb) (quo, rem Limb) {
	q, r := bits.Div(uint(hi), uint(lo), uint(d))
	return Limb(q), Limb(r)
}

//
// uint.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package boxed

import (
	"fmt"
	"math"
	"math/big"

	"github.com/markkurossi/mpint/codec"
	"github.com/markkurossi/mpint/ct"
	"github.com/markkurossi/mpint/limb"
)

// Uint implements a fixed precision unsigned integer. The value is
// stored as limbs, least significant first, and its precision is
// len(limbs)*limb.Bits.
type Uint struct {
	limbs []limb.Limb
}

// Zero returns the zero value with zero precision.
func Zero() *Uint {
	return &Uint{}
}

// ZeroWithPrecision returns the zero value with bitsPrecision rounded
// up to a multiple of limb.Bits.
func ZeroWithPrecision(bitsPrecision uint32) *Uint {
	return &Uint{
		limbs: make([]limb.Limb, limb.Count(bitsPrecision)),
	}
}

// One returns the value 1 with the precision bitsPrecision. The
// function panics if bitsPrecision is zero.
func One(bitsPrecision uint32) *Uint {
	if bitsPrecision == 0 {
		panic("boxed.One: zero precision")
	}
	z := ZeroWithPrecision(bitsPrecision)
	z.limbs[0] = limb.One
	return z
}

// Max returns the largest value of the precision bitsPrecision,
// 2^bitsPrecision-1.
func Max(bitsPrecision uint32) *Uint {
	z := ZeroWithPrecision(bitsPrecision)
	for i := range z.limbs {
		z.limbs[i] = limb.Max
	}
	if rem := bitsPrecision % limb.Bits; rem != 0 {
		z.limbs[len(z.limbs)-1] = limb.Max >> (limb.Bits - rem)
	}
	return z
}

// FromUint64 creates an integer with the value v and the precision
// bitsPrecision. The function panics if v does not fit the precision.
func FromUint64(v uint64, bitsPrecision uint32) *Uint {
	z := ZeroWithPrecision(bitsPrecision)
	for i := 0; v != 0; i++ {
		if i >= len(z.limbs) {
			panic(fmt.Sprintf("boxed.FromUint64: %v overflows %v bits",
				v, bitsPrecision))
		}
		z.limbs[i] = limb.Limb(v)
		v = v >> (limb.Bits / 2) >> (limb.Bits / 2)
	}
	if z.Bits() > bitsPrecision {
		panic(fmt.Sprintf("boxed.FromUint64: value overflows %v bits",
			bitsPrecision))
	}
	return z
}

// FromLimbs creates an integer from a copy of the limbs, least
// significant first.
func FromLimbs(limbs []limb.Limb) *Uint {
	z := &Uint{
		limbs: make([]limb.Limb, len(limbs)),
	}
	copy(z.limbs, limbs)
	return z
}

// Clone returns a copy of x.
func (x *Uint) Clone() *Uint {
	return FromLimbs(x.limbs)
}

// Limbs returns a copy of the limbs of x, least significant first.
func (x *Uint) Limbs() []limb.Limb {
	result := make([]limb.Limb, len(x.limbs))
	copy(result, x.limbs)
	return result
}

// NLimbs returns the number of limbs in x.
func (x *Uint) NLimbs() int {
	return len(x.limbs)
}

// BitsPrecision returns the precision of x in bits.
func (x *Uint) BitsPrecision() uint32 {
	bits := uint64(len(x.limbs)) * limb.Bits
	if bits > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(bits)
}

// Bits returns the minimal number of bits needed to represent x. The
// execution time depends only on the precision of x.
func (x *Uint) Bits() uint32 {
	var result uint
	for i, l := range x.limbs {
		nz := ct.IsZeroWord(uint(l)).Not()
		result = ct.SelectWord(nz, uint(i)*limb.Bits+uint(l.Bits()), result)
	}
	return uint32(result)
}

// BitsVartime returns the minimal number of bits needed to represent
// x. The execution time depends on the value of x.
func (x *Uint) BitsVartime() uint32 {
	for i := len(x.limbs) - 1; i >= 0; i-- {
		if x.limbs[i] != 0 {
			return uint32(i*limb.Bits) + x.limbs[i].Bits()
		}
	}
	return 0
}

// LeadingZeros returns the number of leading zero bits in x within its
// precision.
func (x *Uint) LeadingZeros() uint32 {
	return x.BitsPrecision() - x.Bits()
}

// IsZero tests if x is zero.
func (x *Uint) IsZero() ct.Choice {
	var acc uint
	for _, l := range x.limbs {
		acc |= uint(l)
	}
	return ct.IsZeroWord(acc)
}

// IsOdd tests if x is odd.
func (x *Uint) IsOdd() ct.Choice {
	if len(x.limbs) == 0 {
		return ct.False
	}
	return ct.FromWord(uint(x.limbs[0]) & 1)
}

// CtEq tests if x and y have the same value. Values of different
// precisions are compared as if the shorter one was zero-extended. The
// execution time depends only on the precisions.
func (x *Uint) CtEq(y *Uint) ct.Choice {
	n := max(len(x.limbs), len(y.limbs))
	var acc uint
	for i := 0; i < n; i++ {
		acc |= uint(x.limb(i) ^ y.limb(i))
	}
	return ct.IsZeroWord(acc)
}

// Equal tests if x and y have the same value.
func (x *Uint) Equal(y *Uint) bool {
	return x.CtEq(y).Bool()
}

// CmpVartime compares x and y and returns -1, 0, 1 if x is smaller,
// equal, or greater than y.
func (x *Uint) CmpVartime(y *Uint) int {
	for i := max(len(x.limbs), len(y.limbs)) - 1; i >= 0; i-- {
		xl := x.limb(i)
		yl := y.limb(i)
		if xl < yl {
			return -1
		} else if xl > yl {
			return 1
		}
	}
	return 0
}

func (x *Uint) limb(i int) limb.Limb {
	if i < len(x.limbs) {
		return x.limbs[i]
	}
	return 0
}

// Widen returns a copy of x with the precision bitsPrecision. The
// function panics if bitsPrecision is smaller than the precision of x.
func (x *Uint) Widen(bitsPrecision uint32) *Uint {
	z := ZeroWithPrecision(bitsPrecision)
	if len(z.limbs) < len(x.limbs) {
		panic(fmt.Sprintf("boxed.Widen: %v < %v", bitsPrecision,
			x.BitsPrecision()))
	}
	copy(z.limbs, x.limbs)
	return z
}

// Shorten returns a copy of x with the precision bitsPrecision. The
// result is valid if x fits into the new precision. The function
// panics if bitsPrecision is larger than the precision of x.
func (x *Uint) Shorten(bitsPrecision uint32) ct.Option[*Uint] {
	z := ZeroWithPrecision(bitsPrecision)
	if len(z.limbs) > len(x.limbs) {
		panic(fmt.Sprintf("boxed.Shorten: %v > %v", bitsPrecision,
			x.BitsPrecision()))
	}
	copy(z.limbs, x.limbs)

	valid := ct.LeWord(uint(x.Bits()), uint(bitsPrecision))
	return ct.NewOption(z, valid)
}

// ToBig returns x as big.Int.
func (x *Uint) ToBig() *big.Int {
	words := make([]big.Word, len(x.limbs))
	for i, l := range x.limbs {
		words[i] = big.Word(l)
	}
	return new(big.Int).SetBits(words)
}

// FromBig creates an integer from the non-negative x with the
// precision bitsPrecision. The function returns codec.ErrPrecision if
// x is negative or does not fit the precision.
func FromBig(x *big.Int, bitsPrecision uint32) (*Uint, error) {
	if x.Sign() < 0 || x.BitLen() > int(bitsPrecision) {
		return nil, codec.ErrPrecision
	}
	z := ZeroWithPrecision(bitsPrecision)
	for i, w := range x.Bits() {
		z.limbs[i] = limb.Limb(w)
	}
	return z, nil
}

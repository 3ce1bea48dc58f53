//
// encoding.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package boxed

import (
	"fmt"
	"math"

	"github.com/markkurossi/mpint/codec"
	"github.com/markkurossi/mpint/ct"
	"github.com/markkurossi/mpint/limb"
)

// checkInputSize returns codec.ErrInputSize if n bytes can't fit into
// bitsPrecision bits.
func checkInputSize(n int, bitsPrecision uint32) error {
	if uint64(n) > (uint64(bitsPrecision)+7)/8 {
		return codec.ErrInputSize
	}
	return nil
}

// checkPrecision returns codec.ErrPrecision if z needs more than
// bitsPrecision bits.
func (z *Uint) checkPrecision(bitsPrecision uint32) error {
	if bitsPrecision < z.Bits() {
		return codec.ErrPrecision
	}
	return nil
}

// FromBESlice creates an integer from the big-endian bytes. The
// precision of the result is bitsPrecision rounded up to a multiple of
// limb.Bits.
//
// The function returns codec.ErrInputSize if the input is longer than
// bitsPrecision rounded up to whole bytes, and codec.ErrPrecision if
// the decoded value needs more than bitsPrecision bits. The execution
// time depends on the length of the input but not on its content.
func FromBESlice(b []byte, bitsPrecision uint32) (*Uint, error) {
	if len(b) == 0 && bitsPrecision == 0 {
		return Zero(), nil
	}
	if err := checkInputSize(len(b), bitsPrecision); err != nil {
		return nil, err
	}
	z := ZeroWithPrecision(bitsPrecision)
	for i, end := 0, len(b); end > 0; i, end = i+1, end-limb.Bytes {
		z.limbs[i] = limb.FromBESlice(b[max(end-limb.Bytes, 0):end])
	}
	if err := z.checkPrecision(bitsPrecision); err != nil {
		return nil, err
	}
	return z, nil
}

// FromLESlice creates an integer from the little-endian bytes. The
// precision of the result is bitsPrecision rounded up to a multiple of
// limb.Bits.
//
// The function returns codec.ErrInputSize if the input is longer than
// bitsPrecision rounded up to whole bytes, and codec.ErrPrecision if
// the decoded value needs more than bitsPrecision bits. The execution
// time depends on the length of the input but not on its content.
func FromLESlice(b []byte, bitsPrecision uint32) (*Uint, error) {
	if len(b) == 0 && bitsPrecision == 0 {
		return Zero(), nil
	}
	if err := checkInputSize(len(b), bitsPrecision); err != nil {
		return nil, err
	}
	z := ZeroWithPrecision(bitsPrecision)
	for i, start := 0, 0; start < len(b); i, start = i+1, start+limb.Bytes {
		z.limbs[i] = limb.FromLESlice(b[start:min(start+limb.Bytes, len(b))])
	}
	if err := z.checkPrecision(bitsPrecision); err != nil {
		return nil, err
	}
	return z, nil
}

// vartimePrecision returns the precision of n bytes, saturated to the
// maximum precision.
func vartimePrecision(n int) uint32 {
	if uint64(n) > math.MaxUint32/8 {
		return math.MaxUint32
	}
	return uint32(n) * 8
}

// FromBESliceVartime creates an integer from the big-endian bytes. The
// precision of the result is selected from the input length. This makes
// all operations on the result variable-time with respect to the input
// length, and the function must only be used with public values.
func FromBESliceVartime(b []byte) *Uint {
	z, err := FromBESlice(b, vartimePrecision(len(b)))
	if err != nil {
		panic(fmt.Sprintf("boxed.FromBESliceVartime: %v", err))
	}
	return z
}

// FromLESliceVartime creates an integer from the little-endian
// bytes. The precision of the result is selected from the input
// length. This makes all operations on the result variable-time with
// respect to the input length, and the function must only be used with
// public values.
func FromLESliceVartime(b []byte) *Uint {
	z, err := FromLESlice(b, vartimePrecision(len(b)))
	if err != nil {
		panic(fmt.Sprintf("boxed.FromLESliceVartime: %v", err))
	}
	return z
}

// ToBEBytes returns x as big-endian bytes. The result length is
// NLimbs()*limb.Bytes.
func (x *Uint) ToBEBytes() []byte {
	out := make([]byte, len(x.limbs)*limb.Bytes)
	x.PutBEBytes(out)
	return out
}

// PutBEBytes writes x into out as big-endian bytes. The function
// panics if the length of out is not NLimbs()*limb.Bytes.
func (x *Uint) PutBEBytes(out []byte) {
	if len(out) != len(x.limbs)*limb.Bytes {
		panic("boxed.PutBEBytes: invalid output length")
	}
	n := len(x.limbs)
	for i, l := range x.limbs {
		l.PutBE(out[(n-1-i)*limb.Bytes:])
	}
}

// ToLEBytes returns x as little-endian bytes. The result length is
// NLimbs()*limb.Bytes.
func (x *Uint) ToLEBytes() []byte {
	out := make([]byte, len(x.limbs)*limb.Bytes)
	x.PutLEBytes(out)
	return out
}

// PutLEBytes writes x into out as little-endian bytes. The function
// panics if the length of out is not NLimbs()*limb.Bytes.
func (x *Uint) PutLEBytes(out []byte) {
	if len(out) != len(x.limbs)*limb.Bytes {
		panic("boxed.PutLEBytes: invalid output length")
	}
	for i, l := range x.limbs {
		l.PutLE(out[i*limb.Bytes:])
	}
}

// ToBEBytesTrimmedVartime returns x as big-endian bytes without
// leading zero bytes. The zero value is encoded as an empty slice.
func (x *Uint) ToBEBytesTrimmedVartime() []byte {
	zeroes := x.LeadingZeros() / 8
	return x.ToBEBytes()[zeroes:]
}

// ToLEBytesTrimmedVartime returns x as little-endian bytes without
// trailing zero bytes. The zero value is encoded as an empty slice.
func (x *Uint) ToLEBytesTrimmedVartime() []byte {
	zeroes := int(x.LeadingZeros() / 8)
	bytes := x.ToLEBytes()
	return bytes[:len(bytes)-zeroes]
}

// hexLen returns the number of hexadecimal characters of the
// precision bitsPrecision.
func hexLen(bitsPrecision uint32) int {
	return 2 * limb.Count(bitsPrecision) * limb.Bytes
}

// FromBEHex creates an integer from the big-endian hexadecimal
// string. The string length must be exactly 2*limb.Bytes characters
// per limb of bitsPrecision and the function panics otherwise.
//
// The result is valid if all characters are hexadecimal digits and the
// value fits into bitsPrecision bits. The execution time depends only
// on the string length.
func FromBEHex(hex string, bitsPrecision uint32) ct.Option[*Uint] {
	buf, err := decodeHex(hex, bitsPrecision)

	z := ZeroWithPrecision(bitsPrecision)
	n := len(z.limbs)
	for i := 0; i < n; i++ {
		z.limbs[n-1-i] = limb.FromBESlice(buf[i*limb.Bytes : (i+1)*limb.Bytes])
	}
	return z.hexResult(err, bitsPrecision)
}

// FromLEHex creates an integer from the little-endian hexadecimal
// string. The first character pair is the least significant byte. The
// length requirements and validity rules are the same as with
// FromBEHex.
func FromLEHex(hex string, bitsPrecision uint32) ct.Option[*Uint] {
	buf, err := decodeHex(hex, bitsPrecision)

	z := ZeroWithPrecision(bitsPrecision)
	for i := range z.limbs {
		z.limbs[i] = limb.FromLESlice(buf[i*limb.Bytes : (i+1)*limb.Bytes])
	}
	return z.hexResult(err, bitsPrecision)
}

func decodeHex(hex string, bitsPrecision uint32) ([]byte, uint16) {
	if len(hex) != hexLen(bitsPrecision) {
		panic(fmt.Sprintf("boxed: hex string length %v, expected %v",
			len(hex), hexLen(bitsPrecision)))
	}
	buf := make([]byte, len(hex)/2)
	return buf, codec.DecodeHex(buf, hex)
}

func (z *Uint) hexResult(err uint16, bitsPrecision uint32) ct.Option[*Uint] {
	valid := ct.IsZeroWord(uint(err)).
		And(ct.LeWord(uint(z.Bits()), uint(bitsPrecision)))
	return ct.NewOption(z, valid)
}

// ToBEHex returns x as a lowercase big-endian hexadecimal string of
// 2*limb.Bytes characters per limb. The result is accepted by FromBEHex
// with the precision of x.
func (x *Uint) ToBEHex() string {
	src := x.ToBEBytes()
	dst := make([]byte, 2*len(src))
	codec.EncodeHex(dst, src)
	return string(dst)
}

// FromStrRadixVartime creates an integer from the big-endian string
// src in radix. The string may begin with a '+' sign and may use '_'
// characters to separate digits. The precision of the result is the
// number of limbs needed to hold the value.
//
// The function returns codec.ErrInvalidDigit if the input contains
// characters which are not digits in radix. The function panics if
// radix is not in the range [2, 36].
func FromStrRadixVartime(src string, radix uint32) (*Uint, error) {
	var sink codec.VecSink
	if err := codec.RadixDecodeStr(src, radix, &sink); err != nil {
		return nil, err
	}
	return &Uint{
		limbs: sink.Limbs(),
	}, nil
}

// FromStrRadixWithPrecisionVartime creates an integer with the
// precision bitsPrecision from the big-endian string src in radix. The
// input syntax is the same as with FromStrRadixVartime.
//
// The function returns codec.ErrInvalidDigit if the input contains
// characters which are not digits in radix, codec.ErrInputSize if the
// value needs more limbs than bitsPrecision has, and
// codec.ErrPrecision if the value needs more than bitsPrecision
// bits. The function panics if radix is not in the range [2, 36].
func FromStrRadixWithPrecisionVartime(src string, radix,
	bitsPrecision uint32) (*Uint, error) {

	z := ZeroWithPrecision(bitsPrecision)
	err := codec.RadixDecodeStr(src, radix, codec.NewSliceSink(z.limbs))
	if err != nil {
		return nil, err
	}
	if err := z.checkPrecision(bitsPrecision); err != nil {
		return nil, err
	}
	return z, nil
}

// ToStringRadixVartime returns x as a big-endian string in
// radix. The result has no leading zeros and the zero value is encoded
// as "0". The function panics if radix is not in the range [2, 36].
func (x *Uint) ToStringRadixVartime(radix uint32) string {
	return codec.RadixEncodeLimbs(radix, x.limbs)
}

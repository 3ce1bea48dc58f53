//
// rand.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package boxed

import (
	"fmt"
	"io"

	"github.com/markkurossi/mpint/codec"
	"github.com/markkurossi/mpint/limb"
)

// RandomBits creates a random integer of at most bits bits from the
// random source r. The precision of the result is bits.
func RandomBits(r io.Reader, bits uint32) (*Uint, error) {
	return RandomBitsWithPrecision(r, bits, bits)
}

// RandomBitsWithPrecision creates a random integer of at most bits
// bits from the random source r. The precision of the result is
// bitsPrecision. The function returns codec.ErrPrecision if bits is
// larger than bitsPrecision.
func RandomBitsWithPrecision(r io.Reader, bits,
	bitsPrecision uint32) (*Uint, error) {

	if bits > bitsPrecision {
		return nil, fmt.Errorf("boxed.RandomBits: %w", codec.ErrPrecision)
	}
	z := ZeroWithPrecision(bitsPrecision)

	n := limb.Count(bits)
	buf := make([]byte, n*limb.Bytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("boxed.RandomBits: %w", err)
	}
	for i := 0; i < n; i++ {
		z.limbs[i] = limb.FromLESlice(buf[i*limb.Bytes : (i+1)*limb.Bytes])
	}
	if rem := bits % limb.Bits; rem != 0 {
		z.limbs[n-1] &= limb.Max >> (limb.Bits - rem)
	}
	return z, nil
}

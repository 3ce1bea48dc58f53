//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package codec

import (
	"strconv"
	"testing"
)

func TestDecodeDigit(t *testing.T) {
	for radix := uint32(MinRadix); radix <= MaxRadix; radix++ {
		for c := 0; c < 256; c++ {
			expected, err := strconv.ParseUint(string([]byte{byte(c)}),
				int(radix), 8)

			d, ok := DecodeDigit(byte(c), radix)
			if err != nil {
				if ok.Bool() {
					t.Errorf("DecodeDigit(%q, %v): expected invalid", c, radix)
				}
				continue
			}
			if !ok.Bool() {
				t.Errorf("DecodeDigit(%q, %v): expected valid", c, radix)
				continue
			}
			if uint64(d) != expected {
				t.Errorf("DecodeDigit(%q, %v)=%v, expected %v",
					c, radix, d, expected)
			}
		}
	}
}

func TestEncodeDigit(t *testing.T) {
	for d := uint32(0); d < MaxRadix; d++ {
		v, ok := DecodeDigit(EncodeDigit(d), MaxRadix)
		if !ok.Bool() || v != d {
			t.Errorf("EncodeDigit(%v) does not decode", d)
		}
	}
}

func TestCheckRadix(t *testing.T) {
	for _, radix := range []uint32{0, 1, 37, 256} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("CheckRadix(%v) did not panic", radix)
				}
			}()
			CheckRadix(radix)
		}()
	}
}

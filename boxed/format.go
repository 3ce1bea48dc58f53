//
// format.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package boxed

import (
	"encoding"
	"fmt"
	"strings"

	"github.com/markkurossi/mpint/codec"
)

var (
	_ fmt.Formatter              = &Uint{}
	_ fmt.Stringer               = &Uint{}
	_ encoding.BinaryMarshaler   = &Uint{}
	_ encoding.BinaryUnmarshaler = &Uint{}
	_ encoding.TextMarshaler     = &Uint{}
	_ encoding.TextUnmarshaler   = &Uint{}
)

// String returns the decimal representation of x. The conversion is
// variable-time.
func (x *Uint) String() string {
	return x.ToStringRadixVartime(10)
}

// Format implements fmt.Formatter. The verbs 'b', 'o', 'O', 'd', 'x',
// 'X', 's', and 'v' are supported together with the '#', '+', '-',
// '0' flags and width. The conversion is variable-time.
func (x *Uint) Format(f fmt.State, verb rune) {
	var radix uint32
	var prefix string

	switch verb {
	case 'b':
		radix = 2
		if f.Flag('#') {
			prefix = "0b"
		}
	case 'o':
		radix = 8
		if f.Flag('#') {
			prefix = "0"
		}
	case 'O':
		radix = 8
		prefix = "0o"
	case 'd', 's', 'v':
		radix = 10
	case 'x', 'X':
		radix = 16
		if f.Flag('#') {
			prefix = "0x"
		}
	default:
		fmt.Fprintf(f, "%%!%c(boxed.Uint=%s)", verb, x.String())
		return
	}

	digits := x.ToStringRadixVartime(radix)
	if verb == 'X' {
		digits = strings.ToUpper(digits)
		prefix = strings.ToUpper(prefix)
	}
	if f.Flag('+') {
		prefix = "+" + prefix
	}

	var pad int
	if width, ok := f.Width(); ok {
		pad = width - len(prefix) - len(digits)
	}

	switch {
	case pad <= 0:
		fmt.Fprint(f, prefix, digits)
	case f.Flag('-'):
		fmt.Fprint(f, prefix, digits, strings.Repeat(" ", pad))
	case f.Flag('0'):
		fmt.Fprint(f, prefix, strings.Repeat("0", pad), digits)
	default:
		fmt.Fprint(f, strings.Repeat(" ", pad), prefix, digits)
	}
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is
// the big-endian bytes of x.
func (x *Uint) MarshalBinary() ([]byte, error) {
	return x.ToBEBytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The precision
// of the result is selected from the input length as with
// FromBESliceVartime.
func (x *Uint) UnmarshalBinary(data []byte) error {
	x.limbs = FromBESliceVartime(data).limbs
	return nil
}

// MarshalText implements encoding.TextMarshaler. The encoding is the
// big-endian hexadecimal string of x.
func (x *Uint) MarshalText() ([]byte, error) {
	return []byte(x.ToBEHex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The precision of
// the result is selected from the input length.
func (x *Uint) UnmarshalText(text []byte) error {
	if len(text)%2 != 0 {
		return fmt.Errorf("boxed.UnmarshalText: %w", codec.ErrInputSize)
	}
	buf := make([]byte, len(text)/2)
	if codec.DecodeHex(buf, string(text)) != 0 {
		return fmt.Errorf("boxed.UnmarshalText: %w", codec.ErrInvalidDigit)
	}
	x.limbs = FromBESliceVartime(buf).limbs
	return nil
}

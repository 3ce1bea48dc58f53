//
// errors.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package codec implements the digit level encoders and decoders of
// the multi-precision integers: constant-time hexadecimal and digit
// decoding, and variable-time radix conversion between strings and
// limb sequences.
package codec

// DecodeError describes why an encoded integer could not be decoded.
type DecodeError int

// Decode errors.
const (
	// ErrInputSize is returned when the encoded input is larger than
	// the requested precision can hold. It is detected from the input
	// size before the value is fully parsed.
	ErrInputSize DecodeError = iota + 1

	// ErrPrecision is returned when the decoded value needs more bits
	// than the requested precision.
	ErrPrecision

	// ErrInvalidDigit is returned when the input contains a character
	// which is not a valid digit in the input radix.
	ErrInvalidDigit
)

var decodeErrors = map[DecodeError]string{
	ErrInputSize:    "input size is too large for the precision",
	ErrPrecision:    "decoded value exceeds the precision",
	ErrInvalidDigit: "invalid digit",
}

func (e DecodeError) Error() string {
	msg, ok := decodeErrors[e]
	if ok {
		return "decode: " + msg
	}
	return "decode: unknown error"
}

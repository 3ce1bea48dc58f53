//
// hex.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package codec

// decodeNibble decodes the hexadecimal character c. The result is in
// the range 0-15 for valid characters and 0xffff otherwise. The
// ranges are selected with arithmetic masks instead of comparisons.
func decodeNibble(c byte) uint16 {
	b := int16(c)
	ret := int16(-1)

	// 0-9: 0x30-0x39
	ret += (((0x2f - b) & (b - 0x3a)) >> 8) & (b - 47)
	// A-F: 0x41-0x46
	ret += (((0x40 - b) & (b - 0x47)) >> 8) & (b - 54)
	// a-f: 0x61-0x66
	ret += (((0x60 - b) & (b - 0x67)) >> 8) & (b - 86)

	return uint16(ret)
}

// DecodeHexByte decodes two hexadecimal characters into a byte. The
// second return value is non-zero if either of the characters is not
// a valid hexadecimal digit. The execution time does not depend on the
// character values.
func DecodeHexByte(pair [2]byte) (byte, uint16) {
	hi := decodeNibble(pair[0])
	lo := decodeNibble(pair[1])
	v := (hi << 4) | lo

	return byte(v), v >> 8
}

// DecodeHex decodes the hexadecimal string src into dst. The length
// of src must be exactly 2*len(dst). The return value is non-zero if
// any of the characters is invalid. All characters are processed
// regardless of errors so that the execution time does not reveal the
// position of an invalid character.
func DecodeHex(dst []byte, src string) uint16 {
	if len(src) != 2*len(dst) {
		panic("codec.DecodeHex: invalid input length")
	}
	var err uint16
	for i := range dst {
		b, e := DecodeHexByte([2]byte{src[2*i], src[2*i+1]})
		err |= e
		dst[i] = b
	}
	return err
}

// encodeNibble encodes the nibble n into a lowercase hexadecimal
// character.
func encodeNibble(n byte) byte {
	v := int16(n)
	// Add 'a'-'0'-10 when n > 9.
	return byte(v + '0' + (((9 - v) >> 8) & ('a' - '0' - 10)))
}

// EncodeHex encodes src into dst as lowercase hexadecimal characters.
// The length of dst must be 2*len(src).
func EncodeHex(dst, src []byte) {
	if len(dst) != 2*len(src) {
		panic("codec.EncodeHex: invalid output length")
	}
	for i, b := range src {
		dst[2*i] = encodeNibble(b >> 4)
		dst[2*i+1] = encodeNibble(b & 0xf)
	}
}

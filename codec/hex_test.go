//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package codec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHexByteAll(t *testing.T) {
	for hi := 0; hi < 256; hi++ {
		for lo := 0; lo < 256; lo++ {
			pair := [2]byte{byte(hi), byte(lo)}
			expected, stdErr := hex.DecodeString(string(pair[:]))

			b, err := DecodeHexByte(pair)
			if stdErr != nil {
				if err == 0 {
					t.Fatalf("DecodeHexByte(%q): expected error", pair[:])
				}
				continue
			}
			if err != 0 {
				t.Fatalf("DecodeHexByte(%q): unexpected error", pair[:])
			}
			if b != expected[0] {
				t.Fatalf("DecodeHexByte(%q)=%x, expected %x", pair[:], b,
					expected[0])
			}
		}
	}
}

func TestDecodeHex(t *testing.T) {
	input := "00112233445566778899aAbBcCdDeEfF"
	dst := make([]byte, len(input)/2)
	require.Equal(t, uint16(0), DecodeHex(dst, input))

	expected, err := hex.DecodeString(input)
	require.NoError(t, err)
	require.Equal(t, expected, dst)

	require.Panics(t, func() {
		DecodeHex(dst, input[1:])
	})
}

func TestDecodeHexInvalidPosition(t *testing.T) {
	input := []byte("00112233445566778899aabbccddeeff")
	dst := make([]byte, len(input)/2)

	for i := range input {
		bad := append([]byte(nil), input...)
		bad[i] = 'g'
		assert.NotEqual(t, uint16(0), DecodeHex(dst, string(bad)),
			"invalid character at %v not detected", i)
	}
}

func TestEncodeHex(t *testing.T) {
	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, 2*len(src))
	EncodeHex(dst, src)
	require.Equal(t, hex.EncodeToString(src), string(dst))
}

//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package boxed

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/markkurossi/mpint/codec"
	"github.com/stretchr/testify/require"
)

var formatTests = []struct {
	format string
	value  uint64
	result string
}{
	{"%v", 255, "255"},
	{"%d", 255, "255"},
	{"%s", 0, "0"},
	{"%x", 255, "ff"},
	{"%X", 255, "FF"},
	{"%#x", 255, "0xff"},
	{"%#X", 255, "0XFF"},
	{"%b", 5, "101"},
	{"%#b", 5, "0b101"},
	{"%o", 8, "10"},
	{"%#o", 8, "010"},
	{"%O", 8, "0o10"},
	{"%+d", 7, "+7"},
	{"%5d", 42, "   42"},
	{"%-5d|", 42, "42   |"},
	{"%05d", 42, "00042"},
	{"%#06x", 255, "0x00ff"},
	{"%2d", 12345, "12345"},
	{"%q", 1, "%!q(boxed.Uint=1)"},
}

func TestFormat(t *testing.T) {
	for _, test := range formatTests {
		result := fmt.Sprintf(test.format, FromUint64(test.value, 128))
		require.Equal(t, test.result, result, "format %q", test.format)
	}
}

func TestBinaryMarshal(t *testing.T) {
	n := FromBEHex("00112233445566778899aabbccddeeff", 128).Unwrap()

	data, err := n.MarshalBinary()
	require.NoError(t, err)

	var m Uint
	require.NoError(t, m.UnmarshalBinary(data))
	require.Equal(t, n.BitsPrecision(), m.BitsPrecision())
	require.True(t, m.Equal(n))
}

func TestTextMarshal(t *testing.T) {
	n := FromUint64(0xcafe, 256)

	data, err := json.Marshal(n)
	require.NoError(t, err)

	var m *Uint
	require.NoError(t, json.Unmarshal(data, &m))
	require.Equal(t, uint32(256), m.BitsPrecision())
	require.True(t, m.Equal(n))

	var z Uint
	err = z.UnmarshalText([]byte("abc"))
	require.ErrorIs(t, err, codec.ErrInputSize)

	err = z.UnmarshalText([]byte("zz"))
	require.ErrorIs(t, err, codec.ErrInvalidDigit)

	require.NoError(t, z.UnmarshalText([]byte("01ff")))
	require.Equal(t, "511", z.String())
}

//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/markkurossi/mpint/boxed"
	"github.com/markkurossi/mpint/codec"
	"github.com/stretchr/testify/require"
)

var parseTests = []struct {
	input Input
	value string
	dec   string
}{
	{
		input: Input{Radix: 10},
		value: "+340_282_366_920_938_463_463_374_607_431_768_211_455",
		dec:   "340282366920938463463374607431768211455",
	},
	{
		input: Input{Radix: 16, BitsPrecision: 256},
		value: "ff",
		dec:   "255",
	},
	{
		input: Input{Hex: true},
		value: "00112233445566778899aabbccddeeff",
		dec:   "88962710306127702866241727433142015",
	},
	{
		input: Input{Hex: true, LittleEndian: true, BitsPrecision: 128},
		value: "ff000000000000000000000000000000",
		dec:   "255",
	},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		v, err := test.input.Parse(test.value)
		require.NoError(t, err, test.value)
		require.Equal(t, test.dec, v.String())
	}
}

func TestParseErrors(t *testing.T) {
	_, err := (&Input{Radix: 37}).Parse("1")
	require.Error(t, err)

	_, err = (&Input{Radix: 10}).Parse("1x")
	require.ErrorIs(t, err, codec.ErrInvalidDigit)

	_, err = (&Input{Radix: 2, BitsPrecision: 10}).Parse("1111111111111111")
	require.ErrorIs(t, err, codec.ErrPrecision)

	_, err = (&Input{Hex: true}).Parse("abc")
	require.Error(t, err)

	_, err = (&Input{Hex: true, BitsPrecision: 128}).Parse("00")
	require.Error(t, err)

	_, err = (&Input{Hex: true, BitsPrecision: 121}).Parse(
		"ff112233445566778899aabbccddeeff")
	require.Error(t, err)

	_, err = (&Input{Hex: true}).Parse("0011223344556677889900aabbccddeg")
	require.Error(t, err)
}

func TestPrintEncodings(t *testing.T) {
	var out bytes.Buffer
	PrintEncodings(&out, boxed.FromUint64(255, 64))

	result := out.String()
	for _, expected := range []string{"Precision", "11111111", "377", "255",
		"ff", "73"} {
		require.True(t, strings.Contains(result, expected),
			"missing %q in %s", expected, result)
	}
}

func TestProfile(t *testing.T) {
	timing := Profile(boxed.Max(256), 2)
	require.Len(t, timing.Samples, len(codecOps))
	for _, sample := range timing.Samples {
		require.Len(t, sample.Cols, 1, "%s: %v", sample.Label, sample.Cols)
		require.Len(t, sample.Samples, 2)
	}

	var out bytes.Buffer
	timing.Print(&out)
	require.True(t, strings.Contains(out.String(), "Radix 36"))
}

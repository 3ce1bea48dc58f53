//
// input.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/mpint/boxed"
	"github.com/markkurossi/mpint/codec"
	"github.com/markkurossi/mpint/limb"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Input defines how command line values are decoded.
type Input struct {
	Radix         uint32
	BitsPrecision uint32
	Hex           bool
	LittleEndian  bool
}

// Parse decodes the value.
func (in *Input) Parse(value string) (*boxed.Uint, error) {
	if in.Hex {
		return in.parseHex(value)
	}
	if in.Radix < codec.MinRadix || in.Radix > codec.MaxRadix {
		return nil, fmt.Errorf("invalid radix %d", in.Radix)
	}
	var v *boxed.Uint
	var err error
	if in.BitsPrecision == 0 {
		v, err = boxed.FromStrRadixVartime(value, in.Radix)
	} else {
		v, err = boxed.FromStrRadixWithPrecisionVartime(value, in.Radix,
			in.BitsPrecision)
	}
	if err != nil {
		return nil, fmt.Errorf("%q: %w", value, err)
	}
	return v, nil
}

func (in *Input) parseHex(value string) (*boxed.Uint, error) {
	bits := in.BitsPrecision
	if bits == 0 {
		if len(value)%(2*limb.Bytes) != 0 {
			return nil, fmt.Errorf("%q: hex input must be a multiple of %d digits",
				value, 2*limb.Bytes)
		}
		bits = uint32(len(value) * 4)
	}
	expected := 2 * limb.Count(bits) * limb.Bytes
	if len(value) != expected {
		return nil, fmt.Errorf("%q: expected %d hex digits for %d bits",
			value, expected, bits)
	}

	var v *boxed.Uint
	var ok bool
	if in.LittleEndian {
		v, ok = boxed.FromLEHex(value, bits).Get()
	} else {
		v, ok = boxed.FromBEHex(value, bits).Get()
	}
	if !ok {
		return nil, fmt.Errorf("%q: invalid hex value for %d bits", value, bits)
	}
	return v, nil
}

// PrintEncodings prints the encodings of v to out.
func PrintEncodings(out io.Writer, v *boxed.Uint) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Encoding").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.ML)

	row := tab.Row()
	row.Column("Precision")
	row.Column(fmt.Sprintf("%d bits, < 2%s",
		v.BitsPrecision(), superscript.Itoa(int(v.BitsPrecision()))))

	row = tab.Row()
	row.Column("Bits")
	row.Column(fmt.Sprintf("%d", v.Bits()))

	row = tab.Row()
	row.Column("Limbs")
	row.Column(fmt.Sprintf("%d×%d", v.NLimbs(), limb.Bits))

	rows := []struct {
		label string
		value string
	}{
		{"BE bytes", fmt.Sprintf("%x", v.ToBEBytes())},
		{"LE bytes", fmt.Sprintf("%x", v.ToLEBytes())},
		{"BE trimmed", fmt.Sprintf("%x", v.ToBEBytesTrimmedVartime())},
		{"LE trimmed", fmt.Sprintf("%x", v.ToLEBytesTrimmedVartime())},
		{"Hex", v.ToBEHex()},
	}
	for _, r := range rows {
		row = tab.Row()
		row.Column(r.label)
		row.Column(r.value)
	}
	for _, radix := range []uint32{2, 8, 10, 16, 36} {
		row = tab.Row()
		row.Column(fmt.Sprintf("Radix %d", radix)).SetFormat(tabulate.FmtItalic)
		row.Column(v.ToStringRadixVartime(radix))
	}

	tab.Print(out)
}

type codecOp struct {
	label  string
	encode func(v *boxed.Uint) []byte
	decode func(data []byte, bits uint32) error
}

var codecOps = []codecOp{
	{
		label: "BE bytes",
		encode: func(v *boxed.Uint) []byte {
			return v.ToBEBytes()
		},
		decode: func(data []byte, bits uint32) error {
			_, err := boxed.FromBESlice(data, bits)
			return err
		},
	},
	{
		label: "LE bytes",
		encode: func(v *boxed.Uint) []byte {
			return v.ToLEBytes()
		},
		decode: func(data []byte, bits uint32) error {
			_, err := boxed.FromLESlice(data, bits)
			return err
		},
	},
	{
		label: "Hex",
		encode: func(v *boxed.Uint) []byte {
			return []byte(v.ToBEHex())
		},
		decode: func(data []byte, bits uint32) error {
			if _, ok := boxed.FromBEHex(string(data), bits).Get(); !ok {
				return codec.ErrInvalidDigit
			}
			return nil
		},
	},
	radixOp(10),
	radixOp(16),
	radixOp(36),
}

func radixOp(radix uint32) codecOp {
	return codecOp{
		label: fmt.Sprintf("Radix %d", radix),
		encode: func(v *boxed.Uint) []byte {
			return []byte(v.ToStringRadixVartime(radix))
		},
		decode: func(data []byte, bits uint32) error {
			_, err := boxed.FromStrRadixWithPrecisionVartime(string(data),
				radix, bits)
			return err
		},
	}
}

// Profile encodes and decodes v rounds times with each codec and
// returns the timing samples.
func Profile(v *boxed.Uint, rounds int) *Timing {
	bits := v.BitsPrecision()
	timing := NewTiming()

	for _, op := range codecOps {
		var data []byte
		for i := 0; i < rounds; i++ {
			data = op.encode(v)
		}
		encoded := time.Now()

		var err error
		for i := 0; i < rounds; i++ {
			err = op.decode(data, bits)
		}
		cols := []string{FileSize(len(data)).String()}
		if err != nil {
			cols = append(cols, err.Error())
		}
		sample := timing.Sample(op.label, cols)
		sample.SubSample("Encode", encoded)
		sample.SubSample("Decode", sample.End)
	}
	return timing
}

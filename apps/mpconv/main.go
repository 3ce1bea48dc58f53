//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/mpint/boxed"
	"github.com/markkurossi/mpint/prng"
)

func main() {
	radix := flag.Uint("radix", 10, "Input radix (2-36)")
	bits := flag.Uint("bits", 0, "Precision in bits, 0 selects from input")
	hexInput := flag.Bool("hex", false, "Input is fixed-width hexadecimal")
	le := flag.Bool("le", false, "Hexadecimal input is little-endian")
	random := flag.Uint("random", 0, "Generate a random value of bits")
	seed := flag.Uint64("seed", 1, "Random seed")
	timing := flag.Bool("timing", false, "Print codec timing")
	rounds := flag.Int("rounds", 1000, "Timing rounds")
	flag.Parse()

	log.SetFlags(0)

	input := &Input{
		Radix:         uint32(*radix),
		BitsPrecision: uint32(*bits),
		Hex:           *hexInput,
		LittleEndian:  *le,
	}

	var values []*boxed.Uint
	if *random > 0 {
		v, err := boxed.RandomBits(prng.NewFromUint64(*seed), uint32(*random))
		if err != nil {
			log.Fatal(err)
		}
		values = append(values, v)
	}
	for _, arg := range flag.Args() {
		v, err := input.Parse(arg)
		if err != nil {
			log.Fatal(err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		fmt.Printf("no values specified\n")
		os.Exit(1)
	}

	for _, v := range values {
		PrintEncodings(os.Stdout, v)
		if *timing {
			Profile(v, *rounds).Print(os.Stdout)
		}
	}
}

//
// mpint.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package modular

import (
	"fmt"
	"math/big"

	"github.com/markkurossi/mpint/boxed"
)

// The math/big helpers below are the arithmetic engine of the
// residues. They are variable-time.

func fromUint(x *boxed.Uint) *big.Int {
	return x.ToBig()
}

func toUint(x *big.Int, bitsPrecision uint32) *boxed.Uint {
	z, err := boxed.FromBig(x, bitsPrecision)
	if err != nil {
		panic(fmt.Sprintf("modular: %v does not fit %v bits: %v",
			x, bitsPrecision, err))
	}
	return z
}

func add(a, b, m *big.Int) *big.Int {
	return mod(big.NewInt(0).Add(a, b), m)
}

func sub(a, b, m *big.Int) *big.Int {
	return mod(big.NewInt(0).Sub(a, b), m)
}

func mul(a, b, m *big.Int) *big.Int {
	return mod(big.NewInt(0).Mul(a, b), m)
}

func exp(x, y, m *big.Int) *big.Int {
	return big.NewInt(0).Exp(x, y, m)
}

func mod(x, y *big.Int) *big.Int {
	return big.NewInt(0).Mod(x, y)
}

//
// nonzero.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package modular implements modular arithmetic over boxed.Uint
// values: non-zero moduli, residues, and modular inversion.
//
// The residues use math/big as their arithmetic engine and all
// operations are variable-time. Residues and their moduli are exchanged
// with callers only as boxed.Uint values with the precision of the
// modulus.
package modular

import (
	"github.com/markkurossi/mpint/boxed"
	"github.com/markkurossi/mpint/ct"
)

// NonZero is an integer which is known to be non-zero.
type NonZero struct {
	value *boxed.Uint
}

// NewNonZero creates a non-zero wrapper for a copy of x. The result is
// valid if x is not zero.
func NewNonZero(x *boxed.Uint) ct.Option[NonZero] {
	return ct.NewOption(NonZero{
		value: x.Clone(),
	}, x.IsZero().Not())
}

// Get returns a copy of the wrapped value.
func (n NonZero) Get() *boxed.Uint {
	return n.value.Clone()
}

// BitsPrecision returns the precision of the wrapped value.
func (n NonZero) BitsPrecision() uint32 {
	return n.value.BitsPrecision()
}

// RemVartime returns x mod m with the precision of m.
func RemVartime(x *boxed.Uint, m NonZero) *boxed.Uint {
	return toUint(mod(fromUint(x), fromUint(m.value)), m.BitsPrecision())
}

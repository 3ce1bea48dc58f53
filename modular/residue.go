//
// residue.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package modular

import (
	"errors"
	"math/big"

	"github.com/markkurossi/mpint/boxed"
	"github.com/markkurossi/mpint/ct"
)

// ErrEvenModulus is returned when residue parameters are created for
// an even modulus.
var ErrEvenModulus = errors.New("modular: modulus must be odd")

// Params define the modulus of residues.
type Params struct {
	modulus NonZero
	m       *big.Int
}

// NewParams creates residue parameters for the odd modulus.
func NewParams(modulus *boxed.Uint) (*Params, error) {
	if !modulus.IsOdd().Bool() {
		return nil, ErrEvenModulus
	}
	return &Params{
		modulus: NewNonZero(modulus).Unwrap(),
		m:       fromUint(modulus),
	}, nil
}

// Modulus returns the modulus.
func (p *Params) Modulus() NonZero {
	return p.modulus
}

// BitsPrecision returns the precision of the residue values.
func (p *Params) BitsPrecision() uint32 {
	return p.modulus.BitsPrecision()
}

// Equal tests if the parameters have the same modulus.
func (p *Params) Equal(o *Params) bool {
	return p == o || p.m.Cmp(o.m) == 0
}

// Residue is an integer modulo the modulus of its parameters.
type Residue struct {
	params *Params
	value  *big.Int
}

// NewResidue creates the residue x mod modulus.
func NewResidue(x *boxed.Uint, params *Params) *Residue {
	return &Residue{
		params: params,
		value:  mod(fromUint(x), params.m),
	}
}

// Params returns the residue parameters.
func (r *Residue) Params() *Params {
	return r.params
}

// Retrieve returns the residue value with the precision of the
// modulus.
func (r *Residue) Retrieve() *boxed.Uint {
	return toUint(r.value, r.params.BitsPrecision())
}

// Equal tests if r and o are the same residue.
func (r *Residue) Equal(o *Residue) bool {
	return r.params.Equal(o.params) && r.value.Cmp(o.value) == 0
}

func (r *Residue) check(o *Residue) {
	if !r.params.Equal(o.params) {
		panic("modular: residues have different moduli")
	}
}

func (r *Residue) derive(value *big.Int) *Residue {
	return &Residue{
		params: r.params,
		value:  value,
	}
}

// Add returns r+o.
func (r *Residue) Add(o *Residue) *Residue {
	r.check(o)
	return r.derive(add(r.value, o.value, r.params.m))
}

// Sub returns r-o.
func (r *Residue) Sub(o *Residue) *Residue {
	r.check(o)
	return r.derive(sub(r.value, o.value, r.params.m))
}

// Mul returns r*o.
func (r *Residue) Mul(o *Residue) *Residue {
	r.check(o)
	return r.derive(mul(r.value, o.value, r.params.m))
}

// Square returns r*r.
func (r *Residue) Square() *Residue {
	return r.Mul(r)
}

// Pow returns r^e.
func (r *Residue) Pow(e *boxed.Uint) *Residue {
	return r.derive(exp(r.value, fromUint(e), r.params.m))
}

// Invert returns the multiplicative inverse of r. The result is valid
// if the inverse exists, that is, if r and the modulus are coprime.
func (r *Residue) Invert() ct.Option[*Residue] {
	inv := new(big.Int).ModInverse(r.value, r.params.m)
	if inv == nil {
		return ct.NewOption(r.derive(big.NewInt(0)), ct.False)
	}
	return ct.Some(r.derive(inv))
}

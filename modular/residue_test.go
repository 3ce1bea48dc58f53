//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package modular

import (
	"math/big"
	"testing"

	"github.com/markkurossi/mpint/boxed"
	"github.com/markkurossi/mpint/prng"
	"github.com/stretchr/testify/require"
)

// randomModulus returns a random odd modulus larger than one.
func randomModulus(t *testing.T, rng *prng.Reader) *Params {
	t.Helper()
	for {
		buf := make([]byte, 32)
		_, err := rng.Read(buf)
		require.NoError(t, err)
		buf[len(buf)-1] |= 1

		n, err := boxed.FromBESlice(buf, 256)
		require.NoError(t, err)
		if n.Equal(boxed.One(256)) {
			continue
		}
		params, err := NewParams(n)
		require.NoError(t, err)
		return params
	}
}

func randomUint(t *testing.T, rng *prng.Reader) *boxed.Uint {
	t.Helper()
	x, err := boxed.RandomBits(rng, 256)
	require.NoError(t, err)
	return x
}

func TestInvert(t *testing.T) {
	rng := prng.NewFromUint64(1)
	for i := 0; i < 200; i++ {
		params := randomModulus(t, rng)
		x := NewResidue(randomUint(t, rng), params)

		actual := x.Invert()

		xb := x.Retrieve().ToBig()
		nb := params.Modulus().Get().ToBig()
		coprime := new(big.Int).GCD(nil, nil, xb, nb).Cmp(big.NewInt(1)) == 0

		require.Equal(t, coprime, actual.IsSome().Bool(),
			"disagreement on if modular inverse exists")
		if coprime {
			inv := actual.Unwrap()
			require.True(t, x.Mul(inv).Retrieve().Equal(boxed.One(256)))
			require.Equal(t, uint32(256), inv.Retrieve().BitsPrecision())
		}
	}
}

func TestInvertNone(t *testing.T) {
	params, err := NewParams(boxed.FromUint64(15, 64))
	require.NoError(t, err)

	require.False(t, NewResidue(boxed.FromUint64(5, 64), params).
		Invert().IsSome().Bool())
	require.False(t, NewResidue(boxed.ZeroWithPrecision(64), params).
		Invert().IsSome().Bool())

	inv := NewResidue(boxed.FromUint64(2, 64), params).Invert().Unwrap()
	require.Equal(t, "8", inv.Retrieve().String())
}

func TestArithmetic(t *testing.T) {
	params, err := NewParams(boxed.FromUint64(97, 64))
	require.NoError(t, err)

	a := NewResidue(boxed.FromUint64(90, 64), params)
	b := NewResidue(boxed.FromUint64(200, 64), params)
	require.Equal(t, "6", b.Retrieve().String())

	require.Equal(t, "96", a.Add(b).Retrieve().String())
	require.Equal(t, "84", a.Sub(b).Retrieve().String())
	require.Equal(t, "13", b.Sub(a).Retrieve().String())
	require.Equal(t, "55", a.Mul(b).Retrieve().String())
	require.Equal(t, "49", a.Square().Retrieve().String())

	// Fermat: a^(p-1) = 1
	require.Equal(t, "1", a.Pow(boxed.FromUint64(96, 64)).Retrieve().String())
	require.True(t, a.Equal(NewResidue(boxed.FromUint64(187, 64), params)))
}

func TestParams(t *testing.T) {
	_, err := NewParams(boxed.FromUint64(16, 64))
	require.ErrorIs(t, err, ErrEvenModulus)

	_, err = NewParams(boxed.ZeroWithPrecision(64))
	require.ErrorIs(t, err, ErrEvenModulus)

	p1, err := NewParams(boxed.FromUint64(7, 64))
	require.NoError(t, err)
	p2, err := NewParams(boxed.FromUint64(7, 128))
	require.NoError(t, err)
	require.True(t, p1.Equal(p2))
	require.Equal(t, uint32(64), p1.BitsPrecision())

	p3, err := NewParams(boxed.FromUint64(11, 64))
	require.NoError(t, err)
	require.Panics(t, func() {
		NewResidue(boxed.One(64), p1).Mul(NewResidue(boxed.One(64), p3))
	})
}

func TestNonZero(t *testing.T) {
	require.False(t, NewNonZero(boxed.ZeroWithPrecision(128)).IsSome().Bool())

	x := boxed.FromUint64(10, 128)
	nz := NewNonZero(x).Unwrap()
	require.True(t, nz.Get().Equal(x))
	require.Equal(t, uint32(128), nz.BitsPrecision())
}

func TestRemVartime(t *testing.T) {
	rng := prng.NewFromUint64(9)
	for i := 0; i < 50; i++ {
		x := randomUint(t, rng)
		m, err := boxed.RandomBitsWithPrecision(rng, uint32(i+1)*4, 256)
		require.NoError(t, err)
		nz, ok := NewNonZero(m).Get()
		if !ok {
			continue
		}
		r := RemVartime(x, nz)
		expected := new(big.Int).Mod(x.ToBig(), m.ToBig())
		require.Equal(t, 0, expected.Cmp(r.ToBig()))
		require.Equal(t, m.BitsPrecision(), r.BitsPrecision())
	}
}

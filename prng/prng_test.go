//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package prng

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	a := make([]byte, 1000)
	b := make([]byte, 1000)

	_, err := io.ReadFull(NewFromUint64(1), a)
	require.NoError(t, err)
	_, err = io.ReadFull(NewFromUint64(1), b)
	require.NoError(t, err)
	require.Equal(t, a, b)

	_, err = io.ReadFull(NewFromUint64(2), b)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestStreaming(t *testing.T) {
	whole := make([]byte, 256)
	_, err := New([]byte("seed")).Read(whole)
	require.NoError(t, err)

	r := New([]byte("seed"))
	var parts []byte
	for _, n := range []int{1, 63, 64, 100, 28} {
		buf := make([]byte, n)
		_, err := r.Read(buf)
		require.NoError(t, err)
		parts = append(parts, buf...)
	}
	require.Equal(t, whole, parts)
}

func TestEmptySeed(t *testing.T) {
	buf := make([]byte, 32)
	_, err := New(nil).Read(buf)
	require.NoError(t, err)
	require.NotEqual(t, make([]byte, 32), buf)
}

//
// prng.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package prng implements a deterministic ChaCha20 based byte
// stream. It is intended for reproducible test values and must not be
// used for generating secrets from low entropy seeds.
package prng

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
)

var _ io.Reader = &Reader{}

// Reader produces the ChaCha20 keystream of its seed.
type Reader struct {
	cipher *chacha20.Cipher
}

// New creates a new reader for the seed. The seed may be of any
// length; it is expanded to a 32 byte key by repeating it. The nonce is
// zero.
func New(seed []byte) *Reader {
	key := make([]byte, chacha20.KeySize)
	if len(seed) > 0 {
		for i := range key {
			key[i] = seed[i%len(seed)]
		}
	}
	nonce := make([]byte, chacha20.NonceSize)

	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &Reader{
		cipher: c,
	}
}

// NewFromUint64 creates a new reader for the big-endian encoding of
// seed.
func NewFromUint64(seed uint64) *Reader {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	return New(buf[:])
}

// Read implements io.Reader. It fills p with the next keystream bytes
// and never fails.
func (r *Reader) Read(p []byte) (int, error) {
	clear(p)
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

//
// doc.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package boxed implements heap allocated unsigned integers with a
// precision which is selected at construction time and fixed for the
// lifetime of the value.
//
// The precision of an integer is always a multiple of limb.Bits: the
// requested precision is rounded up to whole limbs. Decoders check
// both the input size and the decoded magnitude against the requested
// precision and fail with codec.ErrInputSize or codec.ErrPrecision
// instead of truncating the value.
//
// Functions operating on secret values run in time which depends only
// on the public lengths of their arguments. Functions with the Vartime
// suffix take shortcuts based on the values and must only be used with
// public data.
package boxed

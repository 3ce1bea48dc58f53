//
// ct.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package ct implements constant-time boolean values and
// conditionally valid results. The execution time of the functions in
// this package does not depend on the values of their arguments.
package ct

import (
	"math/bits"
)

// Choice is a constant-time boolean. Its value is always 0 or 1.
type Choice uint8

// Choice constants.
const (
	False Choice = 0
	True  Choice = 1
)

// FromBool creates a Choice from the boolean value b.
func FromBool(b bool) Choice {
	var c Choice
	if b {
		c = 1
	}
	return c
}

// FromWord returns True if w is 1 and False if w is 0. The result is
// undefined for other values of w.
func FromWord(w uint) Choice {
	return Choice(w & 1)
}

// Bool returns the boolean value of the choice. This is the point
// where a decision leaves constant time: callers branching on the
// result leak it.
func (c Choice) Bool() bool {
	return c == 1
}

// Not returns the negation of c.
func (c Choice) Not() Choice {
	return c ^ 1
}

// And returns c AND o.
func (c Choice) And(o Choice) Choice {
	return c & o
}

// Or returns c OR o.
func (c Choice) Or(o Choice) Choice {
	return c | o
}

// Mask returns an all-ones word if c is True and zero otherwise.
func (c Choice) Mask() uint {
	return -uint(c)
}

func (c Choice) String() string {
	if c.Bool() {
		return "true"
	}
	return "false"
}

// SelectWord returns x if c is True and y if c is False.
func SelectWord(c Choice, x, y uint) uint {
	return y ^ (c.Mask() & (y ^ x))
}

// IsZeroWord returns True if w is zero.
func IsZeroWord(w uint) Choice {
	// w | -w has its top bit set iff w != 0.
	return Choice(((w | -w) >> (bits.UintSize - 1)) ^ 1)
}

// EqWord returns True if x == y.
func EqWord(x, y uint) Choice {
	return IsZeroWord(x ^ y)
}

// LtWord returns True if x < y.
func LtWord(x, y uint) Choice {
	_, borrow := bits.Sub(x, y, 0)
	return Choice(borrow)
}

// LeWord returns True if x <= y.
func LeWord(x, y uint) Choice {
	return LtWord(y, x).Not()
}

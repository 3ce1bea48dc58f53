//
// sink.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package codec

import (
	"github.com/markkurossi/mpint/limb"
)

// LimbSink is the destination of radix decoding. The decoder
// multiplies and adds into the limbs returned by Limbs and pushes new
// most significant limbs with Push.
type LimbSink interface {
	// Limbs returns the current limbs, least significant first. The
	// decoder modifies the limbs in place.
	Limbs() []limb.Limb

	// Push appends a new most significant limb. It returns false if
	// the sink can't hold more limbs.
	Push(l limb.Limb) bool
}

var (
	_ LimbSink = &VecSink{}
	_ LimbSink = &SliceSink{}
)

// VecSink is a growable limb sink. It accepts any number of limbs and
// its size therefore depends on the decoded value.
type VecSink struct {
	limbs []limb.Limb
}

// Limbs implements LimbSink.Limbs.
func (s *VecSink) Limbs() []limb.Limb {
	return s.limbs
}

// Push implements LimbSink.Push.
func (s *VecSink) Push(l limb.Limb) bool {
	s.limbs = append(s.limbs, l)
	return true
}

// SliceSink is a fixed capacity limb sink backed by a caller owned
// slice.
type SliceSink struct {
	limbs []limb.Limb
	used  int
}

// NewSliceSink creates a new sink for the limbs. The limbs are zeroed
// and the sink starts empty.
func NewSliceSink(limbs []limb.Limb) *SliceSink {
	clear(limbs)
	return &SliceSink{
		limbs: limbs,
	}
}

// Limbs implements LimbSink.Limbs.
func (s *SliceSink) Limbs() []limb.Limb {
	return s.limbs[:s.used]
}

// Push implements LimbSink.Push.
func (s *SliceSink) Push(l limb.Limb) bool {
	if s.used >= len(s.limbs) {
		return false
	}
	s.limbs[s.used] = l
	s.used++
	return true
}

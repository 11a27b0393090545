// Package viterbi decodes the DAB mother convolutional code: constraint
// length 7, rate 1/4, generator polynomials 133, 171, 145, 133 (octal).
// The decoder is soft-decision with u16 path metrics and supports the
// cyclic depuncturing used by both the FIC and the MSC protection
// profiles.
package viterbi

import (
	"math"
	"math/bits"
	"sync"
)

// SoftBit is one soft-decision value from the OFDM demodulator.
type SoftBit = int8

// Soft-decision range. SoftPunctured sits outside [SoftLow, SoftHigh]
// and contributes nothing to any branch metric.
const (
	SoftLow       SoftBit = -127
	SoftHigh      SoftBit = 127
	SoftPunctured SoftBit = -128
)

// Code parameters of the mother code.
const (
	ConstraintLength = 7
	Rate             = 4

	numStates = 1 << (ConstraintLength - 1)
)

// Generator polynomials in reversed-bit decimal form (octal 133, 171,
// 145, 133 with the newest input bit at bit 0 of the register).
var polys = [Rate]uint8{109, 79, 83, 109}

// Path-metric configuration. Renormalisation subtracts the minimum
// surviving metric whenever any metric crosses the threshold, so the
// accumulated error stays exact across arbitrarily long blocks.
const (
	maxBranchError  = uint16(int(SoftHigh)-int(SoftLow)) * Rate
	errorMargin     = maxBranchError * 5
	initialError    = uint16(0)
	nonStartError   = initialError + errorMargin
	renormThreshold = math.MaxUint16 - errorMargin
)

// branchTable returns the process-wide immutable table of expected
// output bits: entry [r][i] is the i-th symbol the encoder emits when
// its seven-bit register holds r. Built once, shared by every decoder.
var branchTable = sync.OnceValue(func() *[2 * numStates][Rate]bool {
	var tbl [2 * numStates][Rate]bool
	for r := 0; r < 2*numStates; r++ {
		for i, p := range polys {
			tbl[r][i] = bits.OnesCount8(uint8(r)&p)&1 == 1
		}
	}
	return &tbl
})

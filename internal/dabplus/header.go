// Package dabplus reassembles DAB+ audio super-frames from decoded
// logical frames: firecode-protected header, access-unit directory,
// Reed-Solomon correction and per-AU CRC verification.
package dabplus

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// headerLength covers the firecode word and the fixed header fields.
const headerLength = 11

// Header is the decoded super-frame header.
//
//	byte 0..1  firecode
//	byte 2     rfa(1) dac_rate(1) sbr(1) aac_mode(1) ps(1) surround(3)
//	byte 3..   12-bit AU start addresses for AUs 1..n-1
type Header struct {
	DACRate        bool // 48 kHz family when set, 32 kHz otherwise
	SBR            bool
	PS             bool
	Stereo         bool
	SurroundConfig uint8

	SamplingRateHz int
	NumAUs         int
	AUStarts       []int
}

// auLayout returns AU count and the first AU's start byte for a
// (dac_rate, sbr) combination.
func auLayout(dacRate, sbr bool) (numAUs, firstStart int) {
	switch {
	case dacRate && sbr:
		return 3, 6
	case dacRate && !sbr:
		return 6, 11
	case !dacRate && sbr:
		return 2, 5
	default:
		return 4, 8
	}
}

// coreSamplingRate is the AAC core sampling rate: half the output rate
// when SBR upsamples.
func coreSamplingRate(dacRate, sbr bool) int {
	rate := 32_000
	if dacRate {
		rate = 48_000
	}
	if sbr {
		rate /= 2
	}
	return rate
}

// parseHeader decodes the fixed fields and AU directory of a
// super-frame whose payload region ends at dataLen bytes.
func parseHeader(sf []byte, dataLen int) (Header, error) {
	if len(sf) < headerLength {
		return Header{}, fmt.Errorf("dabplus: super-frame shorter than header (%d)", len(sf))
	}

	r := bitio.NewReader(bytes.NewReader(sf[2:]))
	r.TryReadBool() // rfa
	h := Header{
		DACRate: r.TryReadBool(),
		SBR:     r.TryReadBool(),
	}
	aacMode := r.TryReadBool()
	h.PS = r.TryReadBool()
	h.SurroundConfig = uint8(r.TryReadBits(3))
	if r.TryError != nil {
		return Header{}, fmt.Errorf("dabplus: header read: %w", r.TryError)
	}
	h.Stereo = aacMode
	h.SamplingRateHz = coreSamplingRate(h.DACRate, h.SBR)

	numAUs, firstStart := auLayout(h.DACRate, h.SBR)
	h.NumAUs = numAUs
	h.AUStarts = make([]int, 0, numAUs)
	h.AUStarts = append(h.AUStarts, firstStart)
	for i := 1; i < numAUs; i++ {
		start := int(r.TryReadBits(12))
		if r.TryError != nil {
			return Header{}, fmt.Errorf("dabplus: au directory read: %w", r.TryError)
		}
		h.AUStarts = append(h.AUStarts, start)
	}

	prev := firstStart
	for _, start := range h.AUStarts[1:] {
		if start <= prev || start > dataLen {
			return Header{}, fmt.Errorf("dabplus: au directory not monotonic (%v, payload %d)", h.AUStarts, dataLen)
		}
		prev = start
	}
	return h, nil
}

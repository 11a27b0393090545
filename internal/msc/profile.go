// Package msc decodes Main Service Channel sub-channels: capacity-unit
// extraction from the CIF, 16-frame time deinterleaving, protection
// profile to puncturing-schedule mapping, Viterbi decoding and energy
// dispersal removal.
package msc

import (
	"fmt"

	"github.com/saxhorn/dabrx/internal/fic"
	"github.com/saxhorn/dabrx/internal/viterbi"
)

// CIF dimensions: 864 capacity units of 64 bits.
const (
	CUBits  = 64
	CIFCUs  = 864
	CIFBits = CIFCUs * CUBits
)

// Span is one contiguous run of the puncturing schedule: OutputSymbols
// depunctured mother symbols under the given cyclic vector.
type Span struct {
	Vector        []byte
	OutputSymbols int
}

// Profile is a resolved protection profile: the puncturing schedule of
// one logical frame plus its derived dimensions.
type Profile struct {
	BitrateKbps int
	SizeCU      int
	FrameBytes  int
	Spans       []Span
}

// TransmittedSymbols is the number of sub-channel symbols one logical
// frame occupies after puncturing. It never exceeds SizeCU*CUBits; for
// UEP profiles the difference is padding.
func (p *Profile) TransmittedSymbols() int {
	n := 0
	for _, s := range p.Spans {
		n += viterbi.TransmittedSymbols(s.Vector, s.OutputSymbols)
	}
	return n
}

func (p *Profile) totalOutputSymbols() int {
	n := 0
	for _, s := range p.Spans {
		n += s.OutputSymbols
	}
	return n
}

// regions builds the schedule from 128-symbol block counts and puncture
// indexes, terminated by the 24-symbol tail span. Zero-length blocks
// (three-region UEP profiles) are skipped.
func regions(blocks []int, indexes []int) []Span {
	spans := make([]Span, 0, len(blocks)+1)
	for i, l := range blocks {
		if l == 0 {
			continue
		}
		spans = append(spans, Span{
			Vector:        viterbi.Vector(indexes[i]),
			OutputSymbols: l * 128,
		})
	}
	return append(spans, Span{Vector: viterbi.TailVector, OutputSymbols: 24})
}

// Size divisors: sub-channel size in CUs is n times this per level.
var (
	eepASizePerN = [4]int{12, 8, 6, 4}
	eepBSizePerN = [4]int{27, 21, 18, 15}
	eepBVectors  = [4][2]int{{10, 9}, {6, 5}, {4, 3}, {2, 1}}
)

// EEPProfile resolves an equal-error-protection profile from the FIG
// 0/1 long form. option 0 is set A (8n kbit/s), option 1 set B
// (32n kbit/s); level is the two-bit protection level (0 = 1-A/1-B).
func EEPProfile(option, level uint8, sizeCU int) (*Profile, error) {
	if level > 3 {
		return nil, fmt.Errorf("msc: eep protection level %d out of range", level)
	}

	switch option {
	case 0:
		div := eepASizePerN[level]
		n := sizeCU / div
		if n < 1 || n*div != sizeCU {
			return nil, fmt.Errorf("msc: eep set a level %d size %d not a multiple of %d", level+1, sizeCU, div)
		}
		var spans []Span
		switch level {
		case 0:
			spans = regions([]int{6*n - 3, 3}, []int{24, 23})
		case 1:
			if n == 1 {
				spans = regions([]int{5, 1}, []int{13, 12})
			} else {
				spans = regions([]int{2*n - 3, 4*n + 3}, []int{14, 13})
			}
		case 2:
			spans = regions([]int{6*n - 3, 3}, []int{8, 7})
		case 3:
			spans = regions([]int{4*n - 3, 2*n + 3}, []int{3, 2})
		}
		return &Profile{
			BitrateKbps: 8 * n,
			SizeCU:      sizeCU,
			FrameBytes:  24 * n,
			Spans:       spans,
		}, nil

	case 1:
		div := eepBSizePerN[level]
		n := sizeCU / div
		if n < 1 || n*div != sizeCU {
			return nil, fmt.Errorf("msc: eep set b level %d size %d not a multiple of %d", level+1, sizeCU, div)
		}
		v := eepBVectors[level]
		return &Profile{
			BitrateKbps: 32 * n,
			SizeCU:      sizeCU,
			FrameBytes:  96 * n,
			Spans:       regions([]int{24*n - 3, 3}, []int{v[0], v[1]}),
		}, nil

	default:
		return nil, fmt.Errorf("msc: eep option %d not supported", option)
	}
}

// UEPProfile resolves an unequal-error-protection profile from the FIG
// 0/1 short-form table index.
func UEPProfile(tableIndex int) (*Profile, error) {
	if tableIndex < 0 || tableIndex >= len(uepTable) {
		return nil, fmt.Errorf("msc: uep table index %d out of range", tableIndex)
	}
	e := uepTable[tableIndex]
	return &Profile{
		BitrateKbps: e.Bitrate,
		SizeCU:      e.SizeCU,
		FrameBytes:  3 * e.Bitrate,
		Spans:       regions(e.L[:], e.PI[:]),
	}, nil
}

// FromDescriptor resolves the profile signalled in a FIG 0/1 record.
func FromDescriptor(org fic.SubchannelOrg) (*Profile, error) {
	if !org.IsLongForm {
		return UEPProfile(int(org.TableIndex))
	}
	return EEPProfile(org.Option, org.ProtLevel, int(org.SizeCU))
}

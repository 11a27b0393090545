package msc

import (
	"fmt"
	"log/slog"

	"github.com/saxhorn/dabrx/internal/fec"
	"github.com/saxhorn/dabrx/internal/viterbi"
)

// Decoder recovers one sub-channel's logical frames from successive
// CIFs. It is owned by a single worker and not safe for concurrent use.
type Decoder struct {
	startCU int
	profile *Profile

	deint     *TimeDeinterleaver
	vitdec    *viterbi.Decoder
	scrambler *fec.Scrambler
	frame     []byte

	lastPathError uint64
	log           *slog.Logger
}

// NewDecoder builds a decoder for a sub-channel occupying
// [startCU, startCU+profile.SizeCU) of every CIF.
func NewDecoder(profile *Profile, startCU int, logger *slog.Logger) (*Decoder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if startCU < 0 || startCU+profile.SizeCU > CIFCUs {
		return nil, fmt.Errorf("msc: sub-channel span [%d, %d) outside cif", startCU, startCU+profile.SizeCU)
	}
	if got, want := profile.totalOutputSymbols(), (profile.FrameBytes*8+viterbi.ConstraintLength-1)*viterbi.Rate; got != want {
		return nil, fmt.Errorf("msc: profile schedule covers %d symbols, frame needs %d", got, want)
	}
	if tx := profile.TransmittedSymbols(); tx > profile.SizeCU*CUBits {
		return nil, fmt.Errorf("msc: profile transmits %d symbols into %d bits", tx, profile.SizeCU*CUBits)
	}
	return &Decoder{
		startCU:   startCU,
		profile:   profile,
		deint:     NewTimeDeinterleaver(profile.SizeCU * CUBits),
		vitdec:    viterbi.NewDecoder(),
		scrambler: fec.NewScrambler(),
		frame:     make([]byte, profile.FrameBytes),
		log:       logger.With("component", "msc"),
	}, nil
}

// Profile returns the decoder's resolved protection profile.
func (d *Decoder) Profile() *Profile { return d.profile }

// PathError returns the Viterbi path error of the last decoded frame.
func (d *Decoder) PathError() uint64 { return d.lastPathError }

// ProcessCIF consumes one CIF and returns the next logical frame, or
// nil while the time deinterleaver is still priming. The returned slice
// is valid until the next call.
func (d *Decoder) ProcessCIF(cif []viterbi.SoftBit) ([]byte, error) {
	lo := d.startCU * CUBits
	hi := lo + d.profile.SizeCU*CUBits
	if hi > len(cif) {
		return nil, fmt.Errorf("msc: cif has %d symbols, sub-channel needs %d", len(cif), hi)
	}

	deinterleaved := d.deint.Push(cif[lo:hi])
	if deinterleaved == nil {
		return nil, nil
	}

	d.vitdec.Reset(0)
	consumed := 0
	for _, span := range d.profile.Spans {
		n := d.vitdec.Update(deinterleaved[consumed:], span.Vector, span.OutputSymbols)
		if n == 0 {
			return nil, fmt.Errorf("msc: puncture schedule exhausted sub-channel span at symbol %d", consumed)
		}
		consumed += n
	}

	d.lastPathError = d.vitdec.Chainback(d.frame, 0)

	d.scrambler.Reset()
	d.scrambler.Descramble(d.frame)
	return d.frame, nil
}

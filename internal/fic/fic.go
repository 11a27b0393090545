// Package fic decodes the Fast Information Channel: the Viterbi and
// descrambling front-end over each FIB group, FIB CRC verification, and
// the FIG signalling parser that feeds the ensemble database.
package fic

import (
	"log/slog"

	"github.com/saxhorn/dabrx/internal/fec"
	"github.com/saxhorn/dabrx/internal/viterbi"
)

// One FIB group carries 2304 encoded symbols per CIF which decode into
// three 32-byte FIBs.
const (
	EncodedSymbols = 2304

	fibLength     = 32
	fibDataLength = 30
	fibsPerGroup  = 3
	decodedBytes  = fibsPerGroup * fibLength
)

// GroupStats summarises one decoded FIB group for observability hooks.
type GroupStats struct {
	CIF       int
	PathError uint64
	FIBValid  [fibsPerGroup]bool
}

// Processor turns FIB-group symbol spans into signalling records. It is
// owned by the FIC worker and is not safe for concurrent use.
type Processor struct {
	vitdec    *viterbi.Decoder
	scrambler *fec.Scrambler
	sink      Sink
	log       *slog.Logger

	// OnGroup, when set, observes every processed FIB group.
	OnGroup func(GroupStats)
}

// NewProcessor returns a processor publishing parsed records to sink.
func NewProcessor(sink Sink, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		vitdec:    viterbi.NewDecoder(),
		scrambler: fec.NewScrambler(),
		sink:      sink,
		log:       logger.With("component", "fic"),
	}
}

// ProcessFIBGroup decodes one FIB group of soft symbols: three Viterbi
// spans under PI_16, PI_15 and the tail vector, energy-dispersal
// descrambling, then per-FIB CRC16 and FIG dispatch. cifIndex is the
// CIF number within the transmission frame, used only for logging.
func (p *Processor) ProcessFIBGroup(symbols []viterbi.SoftBit, cifIndex int) {
	if len(symbols) != EncodedSymbols {
		p.log.Warn("bad fib group length", "len", len(symbols), "want", EncodedSymbols)
		return
	}

	// Depunctured spans: 21 blocks of 128 symbols under PI_16, 3 blocks
	// under PI_15, then 24 tail symbols under the tail vector.
	p.vitdec.Reset(0)
	consumed := 0
	consumed += p.vitdec.Update(symbols, viterbi.Vector(16), 128*21)
	consumed += p.vitdec.Update(symbols[consumed:], viterbi.Vector(15), 128*3)
	consumed += p.vitdec.Update(symbols[consumed:], viterbi.TailVector, 24)
	if consumed != EncodedSymbols {
		p.log.Warn("fib group symbol count mismatch", "consumed", consumed)
		return
	}

	var group [decodedBytes]byte
	pathError := p.vitdec.Chainback(group[:], 0)

	p.scrambler.Reset()
	p.scrambler.Descramble(group[:])

	stats := GroupStats{CIF: cifIndex, PathError: pathError}
	for i := 0; i < fibsPerGroup; i++ {
		fib := group[i*fibLength : (i+1)*fibLength]
		if !fec.CheckInvertedCRC(fib) {
			p.log.Debug("fib crc mismatch", "cif", cifIndex, "fib", i)
			continue
		}
		stats.FIBValid[i] = true
		p.ProcessFIG(fib[:fibDataLength], cifIndex)
	}
	if p.OnGroup != nil {
		p.OnGroup(stats)
	}
}

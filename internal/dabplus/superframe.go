package dabplus

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/saxhorn/dabrx/internal/fec"
)

const (
	framesPerSuperFrame = 5
	rsCodewordLength    = 120
	rsDataLength        = 110
)

// AU is one access unit recovered from a super-frame, with its trailing
// CRC already verified and stripped.
type AU struct {
	Index int
	Total int
	Data  []byte
}

// Processor accumulates logical frames into DAB+ super-frames,
// establishes sync on the firecode, applies the Reed-Solomon outer code
// and hands verified access units to its listeners. It is owned by a
// single worker and not safe for concurrent use, except for the error
// latches, which other goroutines may read at any time.
type Processor struct {
	frameBytes int
	buf        []byte
	synced     bool
	log        *slog.Logger

	headerListeners   []func(Header)
	auListeners       []func(AU)
	firecodeListeners []func()
	rsListeners       []func(codeword int)
	auErrorListeners  []func(index int)

	firecodeError atomic.Bool
	rsError       atomic.Bool
	auError       atomic.Bool
}

// NewProcessor builds a processor for a sub-channel delivering logical
// frames of frameBytes bytes. Five frames form one super-frame, which
// must split into whole Reed-Solomon codewords.
func NewProcessor(frameBytes int, logger *slog.Logger) (*Processor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if frameBytes <= 0 || (framesPerSuperFrame*frameBytes)%rsCodewordLength != 0 {
		return nil, fmt.Errorf("dabplus: frame length %d does not form rs codewords", frameBytes)
	}
	return &Processor{
		frameBytes: frameBytes,
		buf:        make([]byte, 0, framesPerSuperFrame*frameBytes),
		log:        logger.With("component", "dabplus"),
	}, nil
}

// OnHeader registers a listener for every successfully parsed
// super-frame header.
func (p *Processor) OnHeader(fn func(Header)) {
	p.headerListeners = append(p.headerListeners, fn)
}

// OnAU registers a listener for access units whose CRC verified.
func (p *Processor) OnAU(fn func(AU)) {
	p.auListeners = append(p.auListeners, fn)
}

// OnFirecodeError registers a listener for firecode failures while
// synchronised.
func (p *Processor) OnFirecodeError(fn func()) {
	p.firecodeListeners = append(p.firecodeListeners, fn)
}

// OnRSError registers a listener for uncorrectable Reed-Solomon
// codewords, identified by their column index.
func (p *Processor) OnRSError(fn func(codeword int)) {
	p.rsListeners = append(p.rsListeners, fn)
}

// OnAUError registers a listener for access units whose CRC failed.
func (p *Processor) OnAUError(fn func(index int)) {
	p.auErrorListeners = append(p.auErrorListeners, fn)
}

// IsFirecodeError reports whether the last super-frame boundary failed
// its firecode. A valid header clears it.
func (p *Processor) IsFirecodeError() bool { return p.firecodeError.Load() }

// IsRSError reports whether the last super-frame had an uncorrectable
// Reed-Solomon codeword.
func (p *Processor) IsRSError() bool { return p.rsError.Load() }

// IsAUError reports whether an access-unit CRC failed since the start
// of the last super-frame.
func (p *Processor) IsAUError() bool { return p.auError.Load() }

// ProcessFrame consumes one logical frame. Until sync is found the
// window slides one frame at a time looking for a valid firecode.
func (p *Processor) ProcessFrame(frame []byte) error {
	if len(frame) != p.frameBytes {
		return fmt.Errorf("dabplus: frame length %d, expected %d", len(frame), p.frameBytes)
	}
	p.buf = append(p.buf, frame...)
	if len(p.buf) < framesPerSuperFrame*p.frameBytes {
		return nil
	}

	if !fec.CheckFirecode(p.buf) {
		p.firecodeError.Store(true)
		if p.synced {
			p.synced = false
			p.log.Warn("firecode failed, resynchronising")
			for _, fn := range p.firecodeListeners {
				fn()
			}
		}
		// Slide the window by one frame and keep searching.
		p.buf = p.buf[:copy(p.buf, p.buf[p.frameBytes:])]
		return nil
	}

	p.processSuperFrame(p.buf)
	p.buf = p.buf[:0]
	return nil
}

func (p *Processor) processSuperFrame(sf []byte) {
	p.correctSuperFrame(sf)

	numCodewords := len(sf) / rsCodewordLength
	dataLen := numCodewords * rsDataLength
	header, err := parseHeader(sf, dataLen)
	if err != nil {
		p.log.Warn("dropping super-frame", "err", err)
		return
	}

	if !p.synced {
		p.synced = true
		p.log.Info("super-frame sync acquired",
			"sampling_rate", header.SamplingRateHz, "aus", header.NumAUs)
	}
	p.firecodeError.Store(false)
	p.auError.Store(false)
	for _, fn := range p.headerListeners {
		fn(header)
	}

	for i, start := range header.AUStarts {
		end := dataLen
		if i+1 < len(header.AUStarts) {
			end = header.AUStarts[i+1]
		}
		au := sf[start:end]
		if !fec.CheckInvertedCRC(au) {
			p.auError.Store(true)
			p.log.Debug("access unit crc failed", "au", i)
			for _, fn := range p.auErrorListeners {
				fn(i)
			}
			continue
		}
		for _, fn := range p.auListeners {
			fn(AU{Index: i, Total: header.NumAUs, Data: au[:len(au)-2]})
		}
	}
}

// correctSuperFrame applies RS(120,110) to each of the column-interleaved
// codewords: byte i of codeword j sits at sf[i*n+j] for n codewords.
func (p *Processor) correctSuperFrame(sf []byte) {
	n := len(sf) / rsCodewordLength
	p.rsError.Store(false)
	cw := make([]byte, rsCodewordLength)
	for j := 0; j < n; j++ {
		for i := range cw {
			cw[i] = sf[i*n+j]
		}
		corrected, err := fec.RSDecode(cw)
		if err != nil {
			p.rsError.Store(true)
			p.log.Debug("uncorrectable rs codeword", "codeword", j, "err", err)
			for _, fn := range p.rsListeners {
				fn(j)
			}
			continue
		}
		if corrected > 0 {
			for i := range cw {
				sf[i*n+j] = cw[i]
			}
		}
	}
}

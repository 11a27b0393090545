package pad

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"

	"github.com/saxhorn/dabrx/internal/fec"
)

// DataGroup is a parsed MSC data group recovered from the X-PAD
// stream. Data excludes the header and any trailing CRC.
type DataGroup struct {
	Type            uint8
	ContinuityIndex uint8
	RepetitionIndex uint8

	Last          bool
	SegmentNumber int

	HasTransportID bool
	TransportID    uint16

	Data []byte
}

// parseDataGroupLength decodes the data-group-length indicator
// subfield: rfa(2) length(14) crc(16).
func parseDataGroupLength(sub []byte) (int, bool) {
	if len(sub) < 4 || !fec.CheckInvertedCRC(sub[:4]) {
		return 0, false
	}
	return int(sub[0]&0x3F)<<8 | int(sub[1]), true
}

type dgState int

const (
	dgWaitLength dgState = iota
	dgWaitStart
	dgReadData
)

// dataGroupAssembler reassembles one MSC data group from X-PAD
// subfield chunks. It only starts collecting once the group's length
// indicator has arrived, and a fresh start chunk discards any partial
// group.
type dataGroupAssembler struct {
	state  dgState
	length int
	buf    []byte
}

func (a *dataGroupAssembler) SetLength(n int) {
	a.length = n
	if a.state == dgWaitLength {
		a.state = dgWaitStart
	}
}

func (a *dataGroupAssembler) consume(start bool, chunk []byte) ([]byte, bool) {
	switch a.state {
	case dgWaitLength:
		return nil, false
	case dgWaitStart:
		if !start {
			return nil, false
		}
		a.buf = append(a.buf[:0], chunk...)
		a.state = dgReadData
	case dgReadData:
		if start {
			a.buf = append(a.buf[:0], chunk...)
		} else {
			a.buf = append(a.buf, chunk...)
		}
	}

	if len(a.buf) < a.length {
		return nil, false
	}
	// The final subfield may carry padding past the declared length.
	group := a.buf[:a.length]
	a.state = dgWaitLength
	return group, true
}

// consumeMOTChunk advances the data-group assembler and publishes a
// parsed group once its CRC verifies.
func (p *Processor) consumeMOTChunk(start bool, chunk []byte) {
	group, ok := p.group.consume(start, chunk)
	if !ok {
		return
	}
	if !fec.CheckInvertedCRC(group) {
		p.log.Debug("msc data group crc failed", "length", len(group))
		return
	}
	dg, err := ParseDataGroup(group)
	if err != nil {
		p.log.Debug("msc data group rejected", "err", err)
		return
	}
	for _, fn := range p.groupListeners {
		fn(dg)
	}
}

// ParseDataGroup decodes an MSC data group header:
//
//	extension(1) crc(1) segment(1) user_access(1) type(4)
//	continuity(4) repetition(4)
//	[extension 16] [last(1) segment_number(15)]
//	[rfa(3) tid_flag(1) length_indicator(4) [transport_id(16)] address...]
func ParseDataGroup(b []byte) (DataGroup, error) {
	r := bitio.NewReader(bytes.NewReader(b))
	hasExtension := r.TryReadBool()
	hasCRC := r.TryReadBool()
	hasSegment := r.TryReadBool()
	hasUserAccess := r.TryReadBool()

	dg := DataGroup{Type: uint8(r.TryReadBits(4))}
	dg.ContinuityIndex = uint8(r.TryReadBits(4))
	dg.RepetitionIndex = uint8(r.TryReadBits(4))

	headerLen := 2
	if hasExtension {
		r.TryReadBits(16)
		headerLen += 2
	}
	if hasSegment {
		dg.Last = r.TryReadBool()
		dg.SegmentNumber = int(r.TryReadBits(15))
		headerLen += 2
	}
	if hasUserAccess {
		r.TryReadBits(3)
		hasTID := r.TryReadBool()
		indicator := int(r.TryReadBits(4))
		headerLen += 1 + indicator
		if hasTID {
			if indicator < 2 {
				return DataGroup{}, fmt.Errorf("pad: user access field too short for transport id")
			}
			dg.TransportID = uint16(r.TryReadBits(16))
			dg.HasTransportID = true
		}
	}
	if r.TryError != nil {
		return DataGroup{}, fmt.Errorf("pad: data group header: %w", r.TryError)
	}

	end := len(b)
	if hasCRC {
		end -= 2
	}
	if headerLen > end {
		return DataGroup{}, fmt.Errorf("pad: data group header (%d bytes) overruns group (%d)", headerLen, end)
	}
	dg.Data = b[headerLen:end]
	return dg, nil
}

package pad

import (
	"github.com/saxhorn/dabrx/internal/charset"
	"github.com/saxhorn/dabrx/internal/fec"
)

const maxLabelSegments = 8

// labelSegmentAssembler collects one dynamic label segment across
// X-PAD subfields. The segment length is self-describing: prefix byte,
// declared character count and trailing CRC.
type labelSegmentAssembler struct {
	buf    []byte
	active bool
}

func (a *labelSegmentAssembler) consume(start bool, chunk []byte) ([]byte, bool) {
	if start {
		a.buf = a.buf[:0]
		a.active = true
	}
	if !a.active {
		return nil, false
	}
	a.buf = append(a.buf, chunk...)
	if len(a.buf) < 2 {
		return nil, false
	}

	expected := 4 // command segment: two prefix bytes plus crc
	if a.buf[0]&0x10 == 0 {
		expected = 2 + int(a.buf[0]&0x0F) + 1 + 2
	}
	if len(a.buf) < expected {
		return nil, false
	}
	a.active = false
	return a.buf[:expected], true
}

// labelAssembler rebuilds the full dynamic label from its segments.
// A toggle-bit change discards the label under construction.
type labelAssembler struct {
	haveToggle bool
	toggle     bool
	charsetID  uint8
	segments   [maxLabelSegments][]byte
	present    [maxLabelSegments]bool
	lastSeg    int
	published  bool
}

func (a *labelAssembler) reset(toggle bool) {
	*a = labelAssembler{haveToggle: true, toggle: toggle, lastSeg: -1}
}

// add stores one segment and returns the completed label once every
// segment up to the last one has arrived.
func (a *labelAssembler) add(toggle, last bool, segNum int, charsetID uint8, text []byte) (string, uint8, bool) {
	if !a.haveToggle || toggle != a.toggle {
		a.reset(toggle)
	}
	if segNum >= maxLabelSegments {
		return "", 0, false
	}
	if segNum == 0 {
		a.charsetID = charsetID
	}
	a.segments[segNum] = append([]byte{}, text...)
	a.present[segNum] = true
	if last {
		a.lastSeg = segNum
	}

	if a.published || a.lastSeg < 0 {
		return "", 0, false
	}
	var full []byte
	for i := 0; i <= a.lastSeg; i++ {
		if !a.present[i] {
			return "", 0, false
		}
		full = append(full, a.segments[i]...)
	}
	a.published = true
	return charset.Decode(a.charsetID, full), a.charsetID, true
}

// consumeLabelSegment advances the segment assembler, verifies the
// segment CRC and feeds the label assembler.
func (p *Processor) consumeLabelSegment(start bool, chunk []byte) {
	seg, ok := p.labelSeg.consume(start, chunk)
	if !ok {
		return
	}
	if !fec.CheckInvertedCRC(seg) {
		p.log.Debug("dynamic label segment crc failed")
		return
	}

	prefix := seg[0]
	toggle := prefix&0x80 != 0
	first := prefix&0x40 != 0
	last := prefix&0x20 != 0
	command := prefix&0x10 != 0

	if command {
		// Command 1 clears the display.
		if prefix&0x0F == 1 {
			p.label.reset(toggle)
			p.notifyLabel("", p.label.charsetID)
		}
		return
	}

	segNum := 0
	var charsetID uint8
	if first {
		charsetID = seg[1] >> 4
	} else {
		segNum = int(seg[1] >> 4)
	}

	text, charsetID, done := p.label.add(toggle, last, segNum, charsetID, seg[2:len(seg)-2])
	if !done {
		return
	}
	p.log.Debug("dynamic label", "text", text, "charset", charsetID)
	p.notifyLabel(text, charsetID)
}

func (p *Processor) notifyLabel(text string, charsetID uint8) {
	for _, fn := range p.labelListeners {
		fn(text, charsetID)
	}
}

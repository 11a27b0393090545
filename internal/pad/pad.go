// Package pad extracts programme-associated data from DAB+ access
// units: the data stream element carrying the PAD field, the F-PAD and
// X-PAD structure, dynamic label segments and MSC data groups bound for
// MOT assembly.
package pad

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/icza/bitio"
)

// X-PAD application types.
const (
	appEndMarker         = 0
	appDataGroupLength   = 1
	appLabelStart        = 2
	appLabelContinuation = 3
	appMOTStart          = 12
	appMOTContinuation   = 13
)

// subfieldLengths maps the 3-bit contents-indicator length index to the
// X-PAD subfield length in bytes.
var subfieldLengths = [8]int{4, 6, 8, 12, 16, 24, 32, 48}

type contentIndicator struct {
	appType uint8
	length  int
}

// Processor decodes the PAD field of successive access units and
// publishes dynamic labels and completed MSC data groups. It is owned
// by a single worker and not safe for concurrent use.
type Processor struct {
	log *slog.Logger

	labelSeg labelSegmentAssembler
	label    labelAssembler
	group    dataGroupAssembler

	lastCI []contentIndicator

	labelListeners []func(text string, charsetID uint8)
	groupListeners []func(DataGroup)
}

func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{log: logger.With("component", "pad")}
}

// OnLabel registers a listener for completed dynamic labels. The
// charset identifier accompanies the already-converted UTF-8 text.
func (p *Processor) OnLabel(fn func(text string, charsetID uint8)) {
	p.labelListeners = append(p.labelListeners, fn)
}

// OnDataGroup registers a listener for CRC-verified MSC data groups.
func (p *Processor) OnDataGroup(fn func(DataGroup)) {
	p.groupListeners = append(p.groupListeners, fn)
}

// ProcessAU extracts the PAD field from one access unit, if present.
func (p *Processor) ProcessAU(au []byte) {
	pad, ok := extractDSE(au)
	if !ok {
		return
	}
	p.ProcessPAD(pad)
}

// extractDSE reads a leading AAC data stream element:
//
//	id_syn_ele(3)=100 instance_tag(4) byte_align(1) count(8) [esc(8)]
func extractDSE(au []byte) ([]byte, bool) {
	if len(au) < 3 {
		return nil, false
	}
	r := bitio.NewReader(bytes.NewReader(au))
	if r.TryReadBits(3) != 0b100 {
		return nil, false
	}
	r.TryReadBits(4) // element_instance_tag
	r.TryReadBool()  // data_byte_align_flag; header is byte aligned either way
	count := int(r.TryReadBits(8))
	if count == 255 {
		count += int(r.TryReadBits(8))
	}
	if r.TryError != nil {
		return nil, false
	}
	data := make([]byte, count)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, false
	}
	return data, true
}

// ProcessPAD handles one PAD field: the last two bytes are the F-PAD,
// everything before is the X-PAD.
func (p *Processor) ProcessPAD(pad []byte) {
	if len(pad) < 2 {
		return
	}
	fpad := pad[len(pad)-2:]
	xpad := pad[:len(pad)-2]

	xpadInd := fpad[0] >> 4 & 0x3
	ciPresent := fpad[1]>>1&0x1 == 1

	switch xpadInd {
	case 1: // short X-PAD: one CI byte, three data bytes
		if len(xpad) != 4 {
			return
		}
		if ciPresent {
			p.lastCI = []contentIndicator{{appType: xpad[0] & 0x1F, length: 3}}
			p.dispatch(p.lastCI, xpad[1:])
		} else {
			p.dispatch(continuationOf(p.lastCI), xpad)
		}
	case 2: // variable-size X-PAD
		if ciPresent {
			ci, rest := parseContentIndicators(xpad)
			p.lastCI = ci
			p.dispatch(ci, rest)
		} else {
			p.dispatch(continuationOf(p.lastCI), xpad)
		}
	}
}

// parseContentIndicators reads up to four CI bytes; application type 0
// terminates the list.
func parseContentIndicators(xpad []byte) ([]contentIndicator, []byte) {
	var ci []contentIndicator
	i := 0
	for ; i < len(xpad) && i < 4; i++ {
		b := xpad[i]
		if b&0x1F == appEndMarker {
			i++
			break
		}
		ci = append(ci, contentIndicator{
			appType: b & 0x1F,
			length:  subfieldLengths[b>>5],
		})
	}
	return ci, xpad[i:]
}

// continuationOf maps a remembered CI list to the continuation
// application types used when the CI flag is absent.
func continuationOf(ci []contentIndicator) []contentIndicator {
	out := make([]contentIndicator, len(ci))
	for i, c := range ci {
		out[i] = c
		switch c.appType {
		case appLabelStart:
			out[i].appType = appLabelContinuation
		case appMOTStart:
			out[i].appType = appMOTContinuation
		}
	}
	return out
}

// dispatch slices the X-PAD data into subfields per the CI list and
// routes each to its application.
func (p *Processor) dispatch(ci []contentIndicator, data []byte) {
	for _, c := range ci {
		n := min(c.length, len(data))
		if n == 0 {
			return
		}
		sub := data[:n]
		data = data[n:]

		switch c.appType {
		case appDataGroupLength:
			if length, ok := parseDataGroupLength(sub); ok {
				p.group.SetLength(length)
			} else {
				p.log.Debug("data group length indicator crc failed")
			}
		case appLabelStart, appLabelContinuation:
			p.consumeLabelSegment(c.appType == appLabelStart, sub)
		case appMOTStart, appMOTContinuation:
			p.consumeMOTChunk(c.appType == appMOTStart, sub)
		}
	}
}

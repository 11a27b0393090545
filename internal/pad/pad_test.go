package pad

import (
	"bytes"
	"testing"

	"github.com/saxhorn/dabrx/internal/fec"
)

// sealInverted appends the TX-inverted CRC16 used by label segments
// and MSC data groups.
func sealInverted(b []byte) []byte {
	crc := fec.CCITT.Checksum(b) ^ 0xFFFF
	return append(b, byte(crc>>8), byte(crc))
}

// padField wraps an X-PAD body in a PAD field with a variable-size
// X-PAD F-PAD trailer.
func padField(xpad []byte, ciPresent bool) []byte {
	fpad := []byte{0x20, 0x00}
	if ciPresent {
		fpad[1] = 0x02
	}
	return append(append([]byte{}, xpad...), fpad...)
}

// subfield pads data out to the subfield length for a CI length index.
func subfield(lenIdx int, data []byte) []byte {
	out := make([]byte, subfieldLengths[lenIdx])
	copy(out, data)
	return out
}

func labelSegment(toggle, first, last bool, segNum int, charsetID uint8, text string) []byte {
	b0 := byte(len(text) - 1)
	if toggle {
		b0 |= 0x80
	}
	if first {
		b0 |= 0x40
	}
	if last {
		b0 |= 0x20
	}
	b1 := byte(segNum) << 4
	if first {
		b1 = charsetID << 4
	}
	return sealInverted(append([]byte{b0, b1}, text...))
}

func TestDynamicLabelTwoSegments(t *testing.T) {
	t.Parallel()
	p := NewProcessor(nil)
	var labels []string
	var charsets []uint8
	p.OnLabel(func(text string, id uint8) {
		labels = append(labels, text)
		charsets = append(charsets, id)
	})

	seg0 := labelSegment(false, true, false, 0, 0, "Hello, DAB ")
	seg1 := labelSegment(false, false, true, 1, 0, "radio!")

	ci := byte(4<<5 | appLabelStart) // 16-byte subfield
	p.ProcessPAD(padField(append([]byte{ci, 0x00}, subfield(4, seg0)...), true))
	if len(labels) != 0 {
		t.Fatal("label published before last segment")
	}

	ci = byte(3<<5 | appLabelStart) // 12-byte subfield
	p.ProcessPAD(padField(append([]byte{ci, 0x00}, subfield(3, seg1)...), true))

	if len(labels) != 1 || labels[0] != "Hello, DAB radio!" {
		t.Fatalf("labels = %q", labels)
	}
	if charsets[0] != 0 {
		t.Errorf("charset = %d, want 0", charsets[0])
	}

	// Repeats of the same toggle are not republished.
	p.ProcessPAD(padField(append([]byte{byte(3<<5 | appLabelStart), 0x00}, subfield(3, seg1)...), true))
	if len(labels) != 1 {
		t.Errorf("repeat republished, labels = %q", labels)
	}
}

func TestDynamicLabelSegmentSpansFields(t *testing.T) {
	t.Parallel()
	p := NewProcessor(nil)
	var labels []string
	p.OnLabel(func(text string, _ uint8) { labels = append(labels, text) })

	seg := labelSegment(true, true, true, 0, 0, "News at 9")
	if len(seg) != 13 {
		t.Fatalf("segment length %d", len(seg))
	}

	// First 8 bytes under a CI, remainder as a CI-less continuation.
	ci := byte(2<<5 | appLabelStart)
	p.ProcessPAD(padField(append([]byte{ci, 0x00}, seg[:8]...), true))
	p.ProcessPAD(padField(subfield(2, seg[8:]), false))

	if len(labels) != 1 || labels[0] != "News at 9" {
		t.Fatalf("labels = %q", labels)
	}
}

func TestDynamicLabelCorruptSegmentDropped(t *testing.T) {
	t.Parallel()
	p := NewProcessor(nil)
	var labels []string
	p.OnLabel(func(text string, _ uint8) { labels = append(labels, text) })

	seg := labelSegment(false, true, true, 0, 0, "x")
	seg[2] ^= 0x01
	ci := byte(1<<5 | appLabelStart)
	p.ProcessPAD(padField(append([]byte{ci, 0x00}, subfield(1, seg)...), true))

	if len(labels) != 0 {
		t.Fatalf("corrupt segment published %q", labels)
	}
}

// motDataGroup builds an MSC data group carrying one MOT segment.
func motDataGroup(dgType uint8, segNum int, last bool, tid uint16, payload []byte) []byte {
	b0 := byte(0x70) | dgType&0x0F // crc, segment, user access
	header := []byte{b0, 0x00}
	segField := uint16(segNum) & 0x7FFF
	if last {
		segField |= 0x8000
	}
	header = append(header, byte(segField>>8), byte(segField))
	header = append(header, 0x12, byte(tid>>8), byte(tid)) // tid flag, li=2
	return sealInverted(append(header, payload...))
}

func TestMOTDataGroupDelivery(t *testing.T) {
	t.Parallel()
	p := NewProcessor(nil)
	var groups []DataGroup
	p.OnDataGroup(func(dg DataGroup) {
		dg.Data = append([]byte{}, dg.Data...)
		groups = append(groups, dg)
	})

	group := motDataGroup(3, 0, false, 300, []byte("aa"))
	dgli := sealInverted([]byte{byte(len(group) >> 8), byte(len(group))})

	xpad := []byte{
		byte(0<<5 | appDataGroupLength), // 4-byte subfield
		byte(3<<5 | appMOTStart),        // 12-byte subfield
		0x00,
	}
	xpad = append(xpad, dgli...)
	xpad = append(xpad, subfield(3, group)...)
	p.ProcessPAD(padField(xpad, true))

	if len(groups) != 1 {
		t.Fatalf("%d data groups, want 1", len(groups))
	}
	dg := groups[0]
	if dg.Type != 3 || dg.SegmentNumber != 0 || dg.Last || !dg.HasTransportID || dg.TransportID != 300 {
		t.Errorf("data group = %+v", dg)
	}
	if !bytes.Equal(dg.Data, []byte("aa")) {
		t.Errorf("payload = %q", dg.Data)
	}
}

func TestMOTDataGroupRestartDiscardsPartial(t *testing.T) {
	t.Parallel()
	p := NewProcessor(nil)
	var groups []DataGroup
	p.OnDataGroup(func(dg DataGroup) { groups = append(groups, dg) })

	group := motDataGroup(4, 1, true, 300, []byte("bb"))
	dgli := sealInverted([]byte{byte(len(group) >> 8), byte(len(group))})

	// Length indicator, then a truncated start that a second start
	// supersedes.
	p.ProcessPAD(padField(append([]byte{byte(0<<5 | appDataGroupLength), 0x00}, dgli...), true))
	p.ProcessPAD(padField(append([]byte{byte(0<<5 | appMOTStart), 0x00}, subfield(0, group[:4])...), true))
	p.ProcessPAD(padField(append([]byte{byte(3<<5 | appMOTStart), 0x00}, subfield(3, group)...), true))

	if len(groups) != 1 {
		t.Fatalf("%d data groups, want 1", len(groups))
	}
	if groups[0].SegmentNumber != 1 || !groups[0].Last {
		t.Errorf("data group = %+v", groups[0])
	}
}

func TestExtractDSE(t *testing.T) {
	t.Parallel()
	au := []byte{0x80, 0x03, 0xAA, 0xBB, 0xCC, 0x01, 0x02}
	pad, ok := extractDSE(au)
	if !ok || !bytes.Equal(pad, []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("extractDSE = % X, %v", pad, ok)
	}

	if _, ok := extractDSE([]byte{0x20, 0x03, 0xAA, 0xBB, 0xCC}); ok {
		t.Error("non-dse element yielded pad")
	}
	if _, ok := extractDSE([]byte{0x80, 0x10, 0xAA}); ok {
		t.Error("truncated dse yielded pad")
	}
}

func TestParseDataGroupBounds(t *testing.T) {
	t.Parallel()
	if _, err := ParseDataGroup([]byte{0x10, 0x00}); err == nil {
		t.Error("extension flag with no extension bytes accepted")
	}
	dg, err := ParseDataGroup([]byte{0x00, 0x00, 0xAB})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dg.Data, []byte{0xAB}) {
		t.Errorf("minimal group data = % X", dg.Data)
	}
}

package fic

import (
	"log/slog"
	"testing"

	"github.com/saxhorn/dabrx/internal/fec"
	"github.com/saxhorn/dabrx/internal/viterbi"
)

// sealFIB appends the inverted big-endian CRC16 to 30 data bytes.
func sealFIB(data []byte) []byte {
	crc := fec.CCITT.Checksum(data) ^ 0xFFFF
	return append(append([]byte{}, data...), byte(crc>>8), byte(crc))
}

// encodeFIBGroup runs three sealed FIBs through the transmitter chain:
// energy dispersal, mother encoding and the FIC puncturing schedule.
func encodeFIBGroup(t *testing.T, fibs [3][]byte) []viterbi.SoftBit {
	t.Helper()
	group := make([]byte, 0, decodedBytes)
	for _, f := range fibs {
		if len(f) != fibLength {
			t.Fatalf("fib length %d, want %d", len(f), fibLength)
		}
		group = append(group, f...)
	}

	s := fec.NewScrambler()
	s.Descramble(group) // scrambling is its own inverse

	syms := viterbi.Encode(group)
	body1 := viterbi.PunctureSymbols(syms[:128*21], viterbi.Vector(16))
	body2 := viterbi.PunctureSymbols(syms[128*21:128*24], viterbi.Vector(15))
	tail := viterbi.PunctureSymbols(syms[128*24:], viterbi.TailVector)

	tx := append(append(body1, body2...), tail...)
	return viterbi.ToSoft(tx)
}

func TestProcessFIBGroupRoundTrip(t *testing.T) {
	t.Parallel()
	fibs := [3][]byte{
		sealFIB(fib(0x05, 0x00, 0x40, 0x12, 0xC0, 0x7B)),
		sealFIB(fib(0x04, 0x01, 5<<2, 0x00, 0x08)),
		sealFIB(fib(0x03, 0x07, 12<<2|0x01, 0x2C)),
	}

	sink := &recordingSink{}
	p := NewProcessor(sink, slog.Default())
	var stats []GroupStats
	p.OnGroup = func(s GroupStats) { stats = append(stats, s) }

	p.ProcessFIBGroup(encodeFIBGroup(t, fibs), 0)

	if len(stats) != 1 {
		t.Fatalf("group stats = %+v, want 1 entry", stats)
	}
	if stats[0].PathError != 0 {
		t.Errorf("noise-free path error = %d, want 0", stats[0].PathError)
	}
	if stats[0].FIBValid != [3]bool{true, true, true} {
		t.Errorf("fib validity = %v, want all valid", stats[0].FIBValid)
	}

	if len(sink.ensembles) != 1 || sink.ensembles[0].CIFLower != 123 {
		t.Errorf("ensembles = %+v", sink.ensembles)
	}
	if len(sink.subchannels) != 1 || sink.subchannels[0].ID != 5 || sink.subchannels[0].TableIndex != 8 {
		t.Errorf("subchannels = %+v", sink.subchannels)
	}
	if len(sink.configs) != 1 || sink.configs[0].ServiceCount != 12 {
		t.Errorf("configs = %+v", sink.configs)
	}
}

func TestProcessFIBGroupCorruptFIB(t *testing.T) {
	t.Parallel()
	second := sealFIB(fib(0x04, 0x01, 5<<2, 0x00, 0x08))
	second[10] ^= 0x01 // break the crc after sealing
	fibs := [3][]byte{
		sealFIB(fib(0x05, 0x00, 0x40, 0x12, 0xC0, 0x7B)),
		second,
		sealFIB(fib(0x03, 0x07, 12<<2|0x01, 0x2C)),
	}

	sink := &recordingSink{}
	p := NewProcessor(sink, slog.Default())
	var got GroupStats
	p.OnGroup = func(s GroupStats) { got = s }

	p.ProcessFIBGroup(encodeFIBGroup(t, fibs), 0)

	if got.FIBValid != [3]bool{true, false, true} {
		t.Errorf("fib validity = %v, want middle fib rejected", got.FIBValid)
	}
	if len(sink.subchannels) != 0 {
		t.Errorf("records from a corrupt fib reached the sink: %+v", sink.subchannels)
	}
	if len(sink.ensembles) != 1 || len(sink.configs) != 1 {
		t.Errorf("valid fibs not processed: ensembles=%+v configs=%+v", sink.ensembles, sink.configs)
	}
}

func TestProcessFIBGroupBadLength(t *testing.T) {
	t.Parallel()
	sink := &recordingSink{}
	p := NewProcessor(sink, slog.Default())
	fired := false
	p.OnGroup = func(GroupStats) { fired = true }

	p.ProcessFIBGroup(make([]viterbi.SoftBit, 100), 0)
	if fired {
		t.Error("short symbol span processed")
	}
}

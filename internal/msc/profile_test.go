package msc

import (
	"testing"

	"github.com/saxhorn/dabrx/internal/fic"
	"github.com/saxhorn/dabrx/internal/viterbi"
)

func TestUEPTableBudgets(t *testing.T) {
	t.Parallel()
	for i, e := range uepTable {
		p, err := UEPProfile(i)
		if err != nil {
			t.Fatalf("index %d: %v", i, err)
		}

		decoded := 0
		for _, l := range e.L {
			decoded += l * 32
		}
		if decoded != 24*e.Bitrate {
			t.Errorf("index %d: %d decoded bits, want %d", i, decoded, 24*e.Bitrate)
		}

		if tx := p.TransmittedSymbols(); tx+e.Pad != e.SizeCU*CUBits {
			t.Errorf("index %d: %d transmitted + %d pad, want %d bits",
				i, tx, e.Pad, e.SizeCU*CUBits)
		}
		if p.FrameBytes != 3*e.Bitrate {
			t.Errorf("index %d: frame bytes %d, want %d", i, p.FrameBytes, 3*e.Bitrate)
		}
	}
}

func TestUEPTableKnownRows(t *testing.T) {
	t.Parallel()
	cases := []struct {
		index int
		want  uepEntry
	}{
		// Lowest rate, most robust three-region profile.
		{0, uepEntry{Bitrate: 32, Level: 5, SizeCU: 16, L: [4]int{3, 4, 17, 0}, PI: [4]int{5, 3, 2, 0}}},
		{4, uepEntry{Bitrate: 32, Level: 1, SizeCU: 35, L: [4]int{3, 5, 13, 3}, PI: [4]int{24, 17, 12, 17}, Pad: 4}},
		// The common stereo MP2 configuration.
		{35, uepEntry{Bitrate: 128, Level: 3, SizeCU: 96, L: [4]int{11, 22, 60, 3}, PI: [4]int{16, 9, 6, 10}, Pad: 4}},
		{55, uepEntry{Bitrate: 256, Level: 3, SizeCU: 192, L: [4]int{11, 27, 151, 3}, PI: [4]int{16, 10, 7, 10}}},
	}
	for _, tc := range cases {
		if got := uepTable[tc.index]; got != tc.want {
			t.Errorf("index %d = %+v, want %+v", tc.index, got, tc.want)
		}
	}
}

func TestUEPTableThreeRegionProfiles(t *testing.T) {
	t.Parallel()
	for i, e := range uepTable {
		p, err := UEPProfile(i)
		if err != nil {
			t.Fatalf("index %d: %v", i, err)
		}
		want := 5 // four regions plus the tail
		if e.L[3] == 0 {
			want = 4
		}
		if len(p.Spans) != want {
			t.Errorf("index %d: %d spans, want %d", i, len(p.Spans), want)
		}
	}
}

func TestUEPTableIndexRange(t *testing.T) {
	t.Parallel()
	if _, err := UEPProfile(64); err == nil {
		t.Error("index 64 accepted")
	}
	if _, err := UEPProfile(-1); err == nil {
		t.Error("negative index accepted")
	}
}

func TestEEPProfiles(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name        string
		option      uint8
		level       uint8
		n           int
		sizePerN    int
		bitratePerN int
	}{
		{"1-A", 0, 0, 4, 12, 8},
		{"2-A", 0, 1, 4, 8, 8},
		{"2-A n=1", 0, 1, 1, 8, 8},
		{"3-A", 0, 2, 4, 6, 8},
		{"4-A", 0, 3, 4, 4, 8},
		{"1-B", 1, 0, 2, 27, 32},
		{"2-B", 1, 1, 2, 21, 32},
		{"3-B", 1, 2, 2, 18, 32},
		{"4-B", 1, 3, 2, 15, 32},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			size := tc.n * tc.sizePerN
			p, err := EEPProfile(tc.option, tc.level, size)
			if err != nil {
				t.Fatal(err)
			}
			if p.BitrateKbps != tc.n*tc.bitratePerN {
				t.Errorf("bitrate = %d, want %d", p.BitrateKbps, tc.n*tc.bitratePerN)
			}
			if p.FrameBytes != 3*p.BitrateKbps {
				t.Errorf("frame bytes = %d, want %d", p.FrameBytes, 3*p.BitrateKbps)
			}
			// EEP fills the sub-channel exactly.
			if tx := p.TransmittedSymbols(); tx != size*CUBits {
				t.Errorf("transmitted = %d, want %d", tx, size*CUBits)
			}
			want := (p.FrameBytes*8 + viterbi.ConstraintLength - 1) * viterbi.Rate
			if got := p.totalOutputSymbols(); got != want {
				t.Errorf("schedule output = %d symbols, want %d", got, want)
			}
		})
	}
}

func TestEEPRejectsBadSizes(t *testing.T) {
	t.Parallel()
	if _, err := EEPProfile(0, 2, 7); err == nil {
		t.Error("3-A with size 7 accepted")
	}
	if _, err := EEPProfile(2, 0, 12); err == nil {
		t.Error("unknown option accepted")
	}
}

func TestFromDescriptor(t *testing.T) {
	t.Parallel()
	p, err := FromDescriptor(fic.SubchannelOrg{ID: 5, TableIndex: 8})
	if err != nil {
		t.Fatal(err)
	}
	if p.BitrateKbps != uepTable[8].Bitrate || p.SizeCU != uepTable[8].SizeCU {
		t.Errorf("uep profile = %+v, want table entry 8", p)
	}

	p, err = FromDescriptor(fic.SubchannelOrg{
		ID: 6, IsLongForm: true, Option: 0, ProtLevel: 2, SizeCU: 84,
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.BitrateKbps != 112 { // 3-A, n = 84/6
		t.Errorf("eep bitrate = %d, want 112", p.BitrateKbps)
	}
}

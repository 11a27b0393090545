package ingest

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

func TestModeParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode      Mode
		fibs      int
		cifs      int
		ficGroups int
	}{
		{ModeI, 12, 4, 4},
		{ModeII, 3, 1, 1},
		{ModeIII, 4, 1, 0},
		{ModeIV, 6, 2, 2},
	}
	for _, tc := range cases {
		p, err := tc.mode.Params()
		if err != nil {
			t.Fatalf("mode %d: %v", tc.mode, err)
		}
		if p.FIBs != tc.fibs || p.CIFs != tc.cifs || p.FICGroups != tc.ficGroups {
			t.Errorf("mode %d: params = %+v", tc.mode, p)
		}
		if p.MSCBits != tc.cifs*55296 {
			t.Errorf("mode %d: msc bits = %d, want %d", tc.mode, p.MSCBits, tc.cifs*55296)
		}
		if p.FICGroups != 0 && p.FICBits != tc.ficGroups*2304 {
			t.Errorf("mode %d: fic bits = %d", tc.mode, p.FICBits)
		}
	}

	if _, err := Mode(9).Params(); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestSourceReadFrame(t *testing.T) {
	t.Parallel()

	params, _ := ModeII.Params()
	frameLen := params.FICBits + params.MSCBits
	raw := make([]byte, 2*frameLen)
	raw[0] = 0x81 // -127
	raw[1] = 0x7F // +127
	raw[params.FICBits] = 0x05

	s, err := NewSource(bytes.NewReader(raw), ModeII)
	if err != nil {
		t.Fatal(err)
	}

	f, err := s.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if len(f.FIC) != params.FICBits || len(f.MSC) != params.MSCBits {
		t.Fatalf("span lengths %d/%d", len(f.FIC), len(f.MSC))
	}
	if f.FIC[0] != -127 || f.FIC[1] != 127 || f.MSC[0] != 5 {
		t.Errorf("soft values %d %d %d", f.FIC[0], f.FIC[1], f.MSC[0])
	}

	if _, err := s.ReadFrame(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ReadFrame(); err != io.EOF {
		t.Fatalf("err = %v, want io.EOF", err)
	}

	stats := s.Stats()
	if stats.FramesRead != 2 || stats.BytesRead != int64(2*frameLen) {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSourceTornFrame(t *testing.T) {
	t.Parallel()

	params, _ := ModeII.Params()
	raw := make([]byte, params.FICBits+params.MSCBits-1)
	s, err := NewSource(bytes.NewReader(raw), ModeII)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.ReadFrame(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err = %v, want unexpected EOF", err)
	}
	if s.Stats().FramesRead != 0 {
		t.Error("torn frame counted")
	}
}

func TestSourceStatsUptime(t *testing.T) {
	t.Parallel()

	s, err := NewSource(bytes.NewReader(nil), ModeI)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	stats := s.Stats()
	if stats.UptimeMs < 10 {
		t.Fatalf("UptimeMs = %d, expected at least 10", stats.UptimeMs)
	}
	if stats.StartedAt == 0 {
		t.Fatal("StartedAt is zero")
	}
}

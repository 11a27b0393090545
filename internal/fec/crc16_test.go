package fec

import "testing"

func TestCCITTKnownVector(t *testing.T) {
	t.Parallel()
	// CRC16/CCITT-FALSE check value.
	got := CCITT.Checksum([]byte("123456789"))
	if got != 0x29B1 {
		t.Errorf("CCITT checksum = 0x%04X, want 0x29B1", got)
	}
}

func TestCheckInvertedCRC(t *testing.T) {
	t.Parallel()
	data := make([]byte, 30)
	for i := range data {
		data[i] = byte(i + 1)
	}
	crc := CCITT.Checksum(data) ^ 0xFFFF
	fib := append(append([]byte{}, data...), byte(crc>>8), byte(crc))

	if !CheckInvertedCRC(fib) {
		t.Fatal("valid FIB rejected")
	}

	// Any single bit flip in the payload must be caught.
	for i := 0; i < 30*8; i += 17 {
		bad := append([]byte{}, fib...)
		bad[i/8] ^= 1 << (i % 8)
		if CheckInvertedCRC(bad) {
			t.Errorf("bit flip at %d not detected", i)
		}
	}
}

func TestCheckInvertedCRCShort(t *testing.T) {
	t.Parallel()
	if CheckInvertedCRC([]byte{0x01}) {
		t.Error("single byte buffer accepted")
	}
}

func TestFirecode(t *testing.T) {
	t.Parallel()
	header := make([]byte, 11)
	for i := 2; i < 11; i++ {
		header[i] = byte(0x30 + i)
	}
	crc := Firecode.Checksum(header[2:11])
	header[0] = byte(crc >> 8)
	header[1] = byte(crc)

	if !CheckFirecode(header) {
		t.Fatal("valid firecode rejected")
	}
	header[5] ^= 0x40
	if CheckFirecode(header) {
		t.Error("corrupted firecode accepted")
	}
}

func TestScramblerResetRepeats(t *testing.T) {
	t.Parallel()
	s := NewScrambler()
	first := make([]byte, 96)
	for i := range first {
		first[i] = s.NextByte()
	}
	s.Reset()
	for i := range first {
		if b := s.NextByte(); b != first[i] {
			t.Fatalf("byte %d after reset = 0x%02X, want 0x%02X", i, b, first[i])
		}
	}
}

func TestScramblerInvolution(t *testing.T) {
	t.Parallel()
	payload := []byte("energy dispersal removes DC bias")
	buf := append([]byte{}, payload...)

	s := NewScrambler()
	s.Descramble(buf)
	s.Reset()
	s.Descramble(buf)

	for i := range payload {
		if buf[i] != payload[i] {
			t.Fatalf("byte %d = 0x%02X, want 0x%02X", i, buf[i], payload[i])
		}
	}
}

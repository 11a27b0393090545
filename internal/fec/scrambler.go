package fec

// Scrambler removes the energy-dispersal PRBS applied by the transmitter.
// The generator is the standard nine-stage LFSR (x^9 + x^5 + 1) seeded
// with all ones; the same sequence scrambles FIBs and MSC logical frames.
type Scrambler struct {
	reg uint16
}

// NewScrambler returns a scrambler reset to the start of the sequence.
func NewScrambler() *Scrambler {
	s := &Scrambler{}
	s.Reset()
	return s
}

// Reset rewinds the PRBS to its seed. Called at the start of every FIB
// group and every MSC logical frame.
func (s *Scrambler) Reset() {
	s.reg = 0x01FF
}

// NextByte returns the next eight PRBS bits packed MSB-first.
func (s *Scrambler) NextByte() byte {
	var b byte
	for i := 0; i < 8; i++ {
		bit := ((s.reg >> 8) ^ (s.reg >> 4)) & 1
		s.reg = (s.reg<<1 | bit) & 0x01FF
		b = b<<1 | byte(bit)
	}
	return b
}

// Descramble XORs the PRBS over buf in place.
func (s *Scrambler) Descramble(buf []byte) {
	for i := range buf {
		buf[i] ^= s.NextByte()
	}
}

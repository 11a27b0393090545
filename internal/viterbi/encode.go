package viterbi

import "math/bits"

// Encode runs the rate-1/4 mother encoder over data (bits taken
// MSB-first within each byte), appends the six zero tail bits that
// return the encoder to state 0, and emits one hard symbol (0 or 1) per
// coded bit. It is the reference encoder for loopback tests and for
// synthesising transmission frames.
func Encode(data []byte) []byte {
	out := make([]byte, 0, (len(data)*8+ConstraintLength-1)*Rate)
	state := 0
	emit := func(bit int) {
		r := state<<1 | bit
		for _, p := range polys {
			out = append(out, byte(bits.OnesCount8(uint8(r)&p)&1))
		}
		state = r & (numStates - 1)
	}
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			emit(int(b>>i) & 1)
		}
	}
	for i := 0; i < ConstraintLength-1; i++ {
		emit(0)
	}
	return out
}

// PunctureSymbols keeps the symbols that vec (cycled) marks as
// transmitted, mirroring what the transmitter does before modulation.
func PunctureSymbols(symbols []byte, vec []byte) []byte {
	out := make([]byte, 0, len(symbols))
	for i, s := range symbols {
		if vec[i%len(vec)] != 0 {
			out = append(out, s)
		}
	}
	return out
}

// ToSoft maps hard symbols to noise-free soft bits.
func ToSoft(symbols []byte) []SoftBit {
	out := make([]SoftBit, len(symbols))
	for i, s := range symbols {
		if s != 0 {
			out[i] = SoftHigh
		} else {
			out[i] = SoftLow
		}
	}
	return out
}

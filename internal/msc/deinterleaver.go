package msc

import "github.com/saxhorn/dabrx/internal/viterbi"

// interleaveDelay maps bit index mod 16 to the transmit delay in CIFs.
var interleaveDelay = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

// TimeDeinterleaver reverses the 16-frame convolutional time
// interleaver of one sub-channel. It holds the last 16 received frames
// and reconstructs logical frames with a fixed 15-frame latency.
type TimeDeinterleaver struct {
	size  int
	hist  [16][]viterbi.SoftBit
	head  int
	count int
	out   []viterbi.SoftBit
}

// NewTimeDeinterleaver returns a deinterleaver for frames of size
// symbols (the sub-channel's CU span per CIF).
func NewTimeDeinterleaver(size int) *TimeDeinterleaver {
	d := &TimeDeinterleaver{size: size, head: -1}
	for i := range d.hist {
		d.hist[i] = make([]viterbi.SoftBit, size)
	}
	d.out = make([]viterbi.SoftBit, size)
	return d
}

// Push stores one received frame and, once 16 frames of history have
// accumulated, returns the reconstructed logical frame (valid until the
// next call). It returns nil while the history is still priming.
func (d *TimeDeinterleaver) Push(frame []viterbi.SoftBit) []viterbi.SoftBit {
	if len(frame) != d.size {
		return nil
	}
	d.head = (d.head + 1) % len(d.hist)
	copy(d.hist[d.head], frame)
	if d.count < len(d.hist) {
		d.count++
		if d.count < len(d.hist) {
			return nil
		}
	}

	// The frame being completed is the one received 15 CIFs ago: its
	// bit i arrived delay[i%16] CIFs after that.
	for i := range d.out {
		src := (d.head + 1 + interleaveDelay[i%16]) % len(d.hist)
		d.out[i] = d.hist[src][i]
	}
	return d.out
}

// Primed reports whether 16 frames of history are available.
func (d *TimeDeinterleaver) Primed() bool { return d.count == len(d.hist) }

package viterbi

// Decoder is a soft-decision Viterbi decoder over the DAB mother code.
// It is not safe for concurrent use; each sub-channel worker owns its
// own instance. The branch table behind it is shared and immutable.
type Decoder struct {
	metrics   [2][numStates]uint16
	cur       int
	decisions []uint64
	renormSum uint64
	depunct   []int16
}

// NewDecoder returns a decoder reset to start in state 0.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.Reset(0)
	return d
}

// Reset clears the trellis so that only startingState carries the low
// initial metric.
func (d *Decoder) Reset(startingState int) {
	d.cur = 0
	d.decisions = d.decisions[:0]
	d.renormSum = 0
	for s := range d.metrics[0] {
		d.metrics[0][s] = nonStartError
	}
	d.metrics[0][startingState&(numStates-1)] = initialError
}

// Update depunctures symbols through the cyclic punctureCode (1 = take
// the next input symbol, 0 = insert a punctured symbol) until
// requestedOutputSymbols symbols have been produced, then advances the
// trellis. requestedOutputSymbols must be a multiple of the code rate.
// It returns the number of input symbols consumed; if the input is
// exhausted mid-way the call consumes nothing and returns 0.
func (d *Decoder) Update(symbols []SoftBit, punctureCode []byte, requestedOutputSymbols int) int {
	if requestedOutputSymbols%Rate != 0 || len(punctureCode) == 0 {
		return 0
	}
	if cap(d.depunct) < requestedOutputSymbols {
		d.depunct = make([]int16, requestedOutputSymbols)
	}
	depunct := d.depunct[:requestedOutputSymbols]

	consumed := 0
	pc := 0
	for i := 0; i < requestedOutputSymbols; i++ {
		if punctureCode[pc] != 0 {
			if consumed >= len(symbols) {
				// Input under-run: treat the whole span as lost.
				return 0
			}
			depunct[i] = int16(symbols[consumed])
			consumed++
		} else {
			depunct[i] = int16(SoftPunctured)
		}
		pc++
		if pc == len(punctureCode) {
			pc = 0
		}
	}

	for i := 0; i < requestedOutputSymbols; i += Rate {
		d.step(depunct[i : i+Rate])
	}
	return consumed
}

// step advances the trellis by one decoded bit over Rate symbols.
func (d *Decoder) step(syms []int16) {
	tbl := branchTable()

	var bm [2 * numStates]uint16
	for r := range bm {
		var e uint16
		for i := 0; i < Rate; i++ {
			v := syms[i]
			if v == int16(SoftPunctured) {
				continue
			}
			if tbl[r][i] {
				e += uint16(int16(SoftHigh) - v)
			} else {
				e += uint16(v - int16(SoftLow))
			}
		}
		bm[r] = e
	}

	prev := &d.metrics[d.cur]
	next := &d.metrics[1-d.cur]
	var dec uint64
	var maxMetric uint16
	for ns := 0; ns < numStates; ns++ {
		bit := ns & 1
		p0 := ns >> 1
		p1 := p0 | numStates/2
		m0 := prev[p0] + bm[p0<<1|bit]
		m1 := prev[p1] + bm[p1<<1|bit]
		if m1 < m0 {
			next[ns] = m1
			dec |= 1 << uint(ns)
		} else {
			next[ns] = m0
		}
		if next[ns] > maxMetric {
			maxMetric = next[ns]
		}
	}
	d.decisions = append(d.decisions, dec)
	d.cur = 1 - d.cur

	if maxMetric > renormThreshold {
		d.renormalise()
	}
}

func (d *Decoder) renormalise() {
	m := &d.metrics[d.cur]
	min := m[0]
	for _, v := range m[1:] {
		if v < min {
			min = v
		}
	}
	for s := range m {
		m[s] -= min
	}
	d.renormSum += uint64(min)
}

// Chainback traces the survivor ending in endState over len(out)*8 bits,
// packing decoded bits MSB-first, and returns the accumulated path
// error. Trellis steps beyond len(out)*8 (the flush tail) steer the
// traceback but produce no output.
func (d *Decoder) Chainback(out []byte, endState int) uint64 {
	outBits := len(out) * 8
	for i := range out {
		out[i] = 0
	}
	state := endState & (numStates - 1)
	for t := len(d.decisions) - 1; t >= 0; t-- {
		if t < outBits {
			out[t/8] |= byte(state&1) << (7 - t%8)
		}
		sel := (d.decisions[t] >> uint(state)) & 1
		state = state>>1 | int(sel)<<(ConstraintLength-2)
	}
	return uint64(d.metrics[d.cur][endState&(numStates-1)]) + d.renormSum
}

// Package mot assembles MOT entities from MSC data-group segments and
// surfaces slideshow images to their own observer.
package mot

// segment records where one segment landed in the unordered buffer.
type segment struct {
	unorderedIndex int
	length         int
	present        bool
}

// Assembler collects the segments of one MOT object part (header or
// body) in arrival order and reconstructs the ordered payload on
// demand.
type Assembler struct {
	unordered     []byte
	ordered       []byte
	segments      []segment
	totalSegments int
	dirty         bool
}

func (a *Assembler) Reset() {
	a.unordered = a.unordered[:0]
	a.ordered = a.ordered[:0]
	a.segments = a.segments[:0]
	a.totalSegments = 0
	a.dirty = false
}

// SetTotalSegments fixes the expected segment count, learned from the
// last-segment flag.
func (a *Assembler) SetTotalSegments(n int) {
	a.totalSegments = n
	if len(a.segments) < n {
		a.segments = append(a.segments, make([]segment, n-len(a.segments))...)
	}
}

// AddSegment appends one segment to the unordered buffer and records
// its slot. The first writer wins: re-deliveries of a filled slot are
// no-ops and return false.
func (a *Assembler) AddSegment(index int, buf []byte) bool {
	if index < 0 {
		return false
	}
	if index >= len(a.segments) {
		a.segments = append(a.segments, make([]segment, index+1-len(a.segments))...)
	}
	if a.segments[index].present {
		return false
	}
	a.segments[index] = segment{
		unorderedIndex: len(a.unordered),
		length:         len(buf),
		present:        true,
	}
	a.unordered = append(a.unordered, buf...)
	a.dirty = true
	return true
}

// CheckComplete reports whether the total is known and every slot up
// to it is populated.
func (a *Assembler) CheckComplete() bool {
	if a.totalSegments == 0 {
		return false
	}
	for i := 0; i < a.totalSegments; i++ {
		if !a.segments[i].present {
			return false
		}
	}
	return true
}

// GetData reconstructs the ordered payload, reusing the previous
// reconstruction when nothing changed.
func (a *Assembler) GetData() []byte {
	if !a.dirty {
		return a.ordered
	}
	a.ordered = a.ordered[:0]
	for i := 0; i < a.totalSegments; i++ {
		s := a.segments[i]
		a.ordered = append(a.ordered, a.unordered[s.unorderedIndex:s.unorderedIndex+s.length]...)
	}
	a.dirty = false
	return a.ordered
}

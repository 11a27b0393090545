// Package fec implements the inner error-detection and correction
// primitives of the DAB logical layer: table-driven CRC16 variants, the
// energy-dispersal PRBS, and the shortened Reed-Solomon code protecting
// DAB+ super-frames.
package fec

// CRC16 computes 16-bit cyclic redundancy checks with a 256-entry lookup
// table. Bits are processed MSB-first without reflection; the XOR-out
// value is applied by Checksum.
type CRC16 struct {
	table  [256]uint16
	init   uint16
	xorOut uint16
}

// NewCRC16 builds a CRC16 instance for the given polynomial, initial
// register value, and final XOR.
func NewCRC16(poly, init, xorOut uint16) *CRC16 {
	c := &CRC16{init: init, xorOut: xorOut}
	for i := range c.table {
		crc := uint16(i) << 8
		for b := 0; b < 8; b++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		c.table[i] = crc
	}
	return c
}

// Checksum returns the CRC over data.
func (c *CRC16) Checksum(data []byte) uint16 {
	crc := c.init
	for _, b := range data {
		crc = crc<<8 ^ c.table[byte(crc>>8)^b]
	}
	return crc ^ c.xorOut
}

var (
	// CCITT protects FIBs, access units, MSC data groups and dynamic-label
	// segments (poly 0x1021, init 0xFFFF). The transmitted CRC is inverted;
	// callers compare against the received value XOR 0xFFFF.
	CCITT = NewCRC16(0x1021, 0xFFFF, 0x0000)

	// Firecode protects the first eleven bytes of a DAB+ super-frame
	// (poly 0x782F, init 0). The CRC occupies bytes 0-1 and covers bytes 2-10.
	Firecode = NewCRC16(0x782F, 0x0000, 0x0000)
)

// CheckInvertedCRC verifies a trailing TX-inverted CRC16: the last two
// bytes of buf hold the big-endian inverted checksum of everything before
// them.
func CheckInvertedCRC(buf []byte) bool {
	if len(buf) < 2 {
		return false
	}
	n := len(buf) - 2
	rx := uint16(buf[n])<<8 | uint16(buf[n+1])
	return CCITT.Checksum(buf[:n]) == rx^0xFFFF
}

// CheckFirecode verifies the super-frame header firecode: bytes 0-1 hold
// the big-endian checksum of bytes 2-10.
func CheckFirecode(buf []byte) bool {
	if len(buf) < 11 {
		return false
	}
	rx := uint16(buf[0])<<8 | uint16(buf[1])
	return Firecode.Checksum(buf[2:11]) == rx
}

package fec

import "fmt"

// The DAB+ super-frame is protected by a Reed-Solomon (120,110) code,
// shortened from RS(255,245) over GF(2^8) with field polynomial
// x^8 + x^4 + x^3 + x^2 + 1 and first consecutive root alpha^0. Each
// codeword carries 110 data bytes and 10 parity bytes and corrects up to
// 5 byte errors.

const (
	rsCodewordLen = 120
	rsDataLen     = 110
	rsParityLen   = rsCodewordLen - rsDataLen
	gfPoly        = 0x11D
)

var (
	gfExp [512]byte
	gfLog [256]byte
	rsGen [rsParityLen + 1]byte
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(x)
		gfLog[byte(x)] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPoly
		}
	}
	for i := 255; i < 512; i++ {
		gfExp[i] = gfExp[i-255]
	}

	// Generator polynomial (x - alpha^0)(x - alpha^1)...(x - alpha^9),
	// stored ascending, gen[10] = 1.
	rsGen[0] = 1
	for root := 0; root < rsParityLen; root++ {
		alpha := gfExp[root]
		for i := root + 1; i > 0; i-- {
			rsGen[i] = rsGen[i-1] ^ gfMul(rsGen[i], alpha)
		}
		rsGen[0] = gfMul(rsGen[0], alpha)
	}
}

func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+int(gfLog[b])]
}

func gfDiv(a, b byte) byte {
	if a == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+255-int(gfLog[b])]
}

// gfPowLog raises the element with discrete log logX to the n-th power.
func gfPowLog(logX, n int) byte {
	return gfExp[((logX*n)%255+255)%255]
}

// RSEncode appends the 10 parity bytes for a 110-byte data block and
// returns the full 120-byte codeword. Used by tests and by anything that
// synthesises super-frames.
func RSEncode(data []byte) ([]byte, error) {
	if len(data) != rsDataLen {
		return nil, fmt.Errorf("fec: rs data length %d, expected %d", len(data), rsDataLen)
	}
	out := make([]byte, rsCodewordLen)
	copy(out, data)
	for i := 0; i < rsDataLen; i++ {
		coef := out[i]
		if coef == 0 {
			continue
		}
		// Divide by the monic generator; rsGen is ascending so index
		// parityLen-j is the coefficient j steps below the leading term.
		for j := 1; j <= rsParityLen; j++ {
			out[i+j] ^= gfMul(rsGen[rsParityLen-j], coef)
		}
	}
	copy(out, data)
	return out, nil
}

// RSDecode corrects up to 5 byte errors in a 120-byte codeword in place.
// It returns the number of corrected bytes, or an error when the codeword
// is uncorrectable.
func RSDecode(codeword []byte) (int, error) {
	if len(codeword) != rsCodewordLen {
		return 0, fmt.Errorf("fec: rs codeword length %d, expected %d", len(codeword), rsCodewordLen)
	}

	// Syndromes S_i = r(alpha^i), evaluated by Horner over the shortened
	// word. Byte k has polynomial degree 119-k.
	var synd [rsParityLen]byte
	allZero := true
	for i := 0; i < rsParityLen; i++ {
		var s byte
		for _, c := range codeword {
			s = gfMul(s, gfExp[i]) ^ c
		}
		synd[i] = s
		if s != 0 {
			allZero = false
		}
	}
	if allZero {
		return 0, nil
	}

	// Berlekamp-Massey.
	sigma := []byte{1}
	prev := []byte{1}
	var b byte = 1
	l, m := 0, 1
	for n := 0; n < rsParityLen; n++ {
		d := synd[n]
		for i := 1; i <= l && i < len(sigma); i++ {
			d ^= gfMul(sigma[i], synd[n-i])
		}
		if d == 0 {
			m++
			continue
		}
		if 2*l <= n {
			tmp := make([]byte, len(sigma))
			copy(tmp, sigma)
			sigma = polyAddShifted(sigma, prev, gfDiv(d, b), m)
			prev = tmp
			l = n + 1 - l
			b = d
			m = 1
		} else {
			sigma = polyAddShifted(sigma, prev, gfDiv(d, b), m)
			m++
		}
	}
	if l > rsParityLen/2 {
		return 0, fmt.Errorf("fec: rs uncorrectable (locator degree %d)", l)
	}

	// Chien search: position k is in error when sigma(alpha^-(119-k)) = 0.
	var errPos []int
	for k := 0; k < rsCodewordLen; k++ {
		deg := rsCodewordLen - 1 - k
		xInv := gfExp[(255-deg%255)%255]
		if polyEval(sigma, xInv) == 0 {
			errPos = append(errPos, k)
		}
	}
	if len(errPos) != l {
		return 0, fmt.Errorf("fec: rs uncorrectable (%d of %d locator roots)", len(errPos), l)
	}

	// Forney with fcr=0: omega = S*sigma mod x^10,
	// e_k = X * omega(X^-1) / sigma'(X^-1) with X = alpha^deg.
	omega := make([]byte, rsParityLen)
	for i := 0; i < rsParityLen; i++ {
		var sum byte
		for j := 0; j <= i && j < len(sigma); j++ {
			sum ^= gfMul(sigma[j], synd[i-j])
		}
		omega[i] = sum
	}

	for _, k := range errPos {
		deg := rsCodewordLen - 1 - k
		x := gfExp[deg%255]
		xInv := gfExp[(255-deg%255)%255]

		num := polyEval(omega, xInv)

		// Formal derivative of sigma: odd-degree terms only.
		var den byte
		for i := 1; i < len(sigma); i += 2 {
			den ^= gfMul(sigma[i], gfPowLog(int(gfLog[xInv]), i-1))
		}
		if den == 0 {
			return 0, fmt.Errorf("fec: rs uncorrectable (zero locator derivative)")
		}
		codeword[k] ^= gfMul(x, gfDiv(num, den))
	}

	// Recompute syndromes to confirm the correction landed.
	for i := 0; i < rsParityLen; i++ {
		var s byte
		for _, c := range codeword {
			s = gfMul(s, gfExp[i]) ^ c
		}
		if s != 0 {
			return 0, fmt.Errorf("fec: rs uncorrectable (residual syndrome)")
		}
	}
	return len(errPos), nil
}

func polyEval(p []byte, x byte) byte {
	var sum byte
	xp := byte(1)
	for _, c := range p {
		sum ^= gfMul(c, xp)
		xp = gfMul(xp, x)
	}
	return sum
}

// polyAddShifted returns p + scale * x^shift * q.
func polyAddShifted(p, q []byte, scale byte, shift int) []byte {
	size := len(q) + shift
	if len(p) > size {
		size = len(p)
	}
	out := make([]byte, size)
	copy(out, p)
	for i, c := range q {
		out[i+shift] ^= gfMul(c, scale)
	}
	return out
}

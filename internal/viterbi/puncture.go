package viterbi

import "fmt"

// Puncturing vectors PI_1..PI_24 from EN 300 401 clause 11.1.2. Each
// vector covers 32 mother-code symbols arranged as 8 columns of 4 rows;
// PI_k transmits the first row of every column plus k further symbols
// filled column-major from column 0 downward.
var punctureVectors [25][]byte

// TailVector punctures the 24 tail symbols that flush the encoder: the
// first two of every four are transmitted.
var TailVector = []byte{
	1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0,
	1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0,
}

func init() {
	for k := 1; k <= 24; k++ {
		v := make([]byte, 32)
		for col := 0; col < 8; col++ {
			v[col*4] = 1
		}
		for i := 1; i <= k; i++ {
			col := (i - 1) % 8
			row := 1 + (i-1)/8
			v[col*4+row] = 1
		}
		punctureVectors[k] = v
	}
}

// Vector returns puncturing vector PI_index, index in [1, 24]. The
// returned slice is shared and must not be modified.
func Vector(index int) []byte {
	if index < 1 || index > 24 {
		panic(fmt.Sprintf("viterbi: puncture index %d out of range", index))
	}
	return punctureVectors[index]
}

// TransmittedSymbols returns how many of total depunctured symbols
// survive vec, i.e. how many input symbols an Update spanning total
// output symbols will consume.
func TransmittedSymbols(vec []byte, total int) int {
	n := 0
	for i := 0; i < total; i++ {
		if vec[i%len(vec)] != 0 {
			n++
		}
	}
	return n
}

package proof

import (
	"fmt"

	"github.com/takakv/triptych/curvegroup"
)

// Encode serialises proof into its canonical wire format:
//
//	A ‖ B ‖ C ‖ D ‖ X[0..m) ‖ Y[0..m) ‖ f[0..m)[1..n) ‖ z_A ‖ z_C ‖ z
//
// with every point as its 32-byte canonical compression and every scalar as
// its 32-byte canonical little-endian encoding. The vector lengths m and n
// are not themselves encoded; the caller is expected to know the Parameters
// a proof was produced under (as required to call Verify in the first
// place) and pass it to Decode.
func (pf *Proof) Encode() []byte {
	m := len(pf.X)
	n := 0
	if m > 0 {
		n = len(pf.f[0]) + 1
	}

	out := make([]byte, 0, 4*32+2*m*32+m*(n-1)*32+3*32)
	appendPoint := func(p curvegroup.Point) {
		b := p.Compress()
		out = append(out, b[:]...)
	}
	appendScalar := func(s curvegroup.Scalar) {
		b := s.Bytes()
		out = append(out, b[:]...)
	}

	appendPoint(pf.A)
	appendPoint(pf.B)
	appendPoint(pf.C)
	appendPoint(pf.D)
	for _, x := range pf.X {
		appendPoint(x)
	}
	for _, y := range pf.Y {
		appendPoint(y)
	}
	for _, row := range pf.f {
		for _, s := range row {
			appendScalar(s)
		}
	}
	appendScalar(pf.zA)
	appendScalar(pf.zC)
	appendScalar(pf.z)

	return out
}

// Decode parses the canonical wire format produced by Encode, for a proof
// whose base n and exponent m are already known (e.g. from the Parameters
// the proof is to be verified against). It fails if the input length does
// not match exactly, or if any point or scalar encoding is non-canonical.
func Decode(data []byte, n, m uint32) (*Proof, error) {
	if n < 2 || m < 2 {
		return nil, fmt.Errorf("%w: n and m must each be at least 2", ErrInvalidParameter)
	}

	want := 4*32 + 2*int(m)*32 + int(m)*int(n-1)*32 + 3*32
	if len(data) != want {
		return nil, fmt.Errorf("%w: proof is %d bytes, want %d for n=%d, m=%d",
			ErrInvalidParameter, len(data), want, n, m)
	}

	cursor := 0
	readPoint := func() (curvegroup.Point, error) {
		p, err := curvegroup.Decompress(data[cursor : cursor+32])
		cursor += 32
		return p, err
	}
	readScalar := func() (curvegroup.Scalar, error) {
		s, err := curvegroup.SetCanonicalBytes(data[cursor : cursor+32])
		cursor += 32
		return s, err
	}

	pf := &Proof{}
	var err error

	if pf.A, err = readPoint(); err != nil {
		return nil, fmt.Errorf("decode A: %w", err)
	}
	if pf.B, err = readPoint(); err != nil {
		return nil, fmt.Errorf("decode B: %w", err)
	}
	if pf.C, err = readPoint(); err != nil {
		return nil, fmt.Errorf("decode C: %w", err)
	}
	if pf.D, err = readPoint(); err != nil {
		return nil, fmt.Errorf("decode D: %w", err)
	}

	pf.X = make([]curvegroup.Point, m)
	for i := range pf.X {
		if pf.X[i], err = readPoint(); err != nil {
			return nil, fmt.Errorf("decode X[%d]: %w", i, err)
		}
	}
	pf.Y = make([]curvegroup.Point, m)
	for i := range pf.Y {
		if pf.Y[i], err = readPoint(); err != nil {
			return nil, fmt.Errorf("decode Y[%d]: %w", i, err)
		}
	}

	pf.f = make([][]curvegroup.Scalar, m)
	for row := range pf.f {
		pf.f[row] = make([]curvegroup.Scalar, n-1)
		for col := range pf.f[row] {
			if pf.f[row][col], err = readScalar(); err != nil {
				return nil, fmt.Errorf("decode f[%d][%d]: %w", row, col, err)
			}
		}
	}

	if pf.zA, err = readScalar(); err != nil {
		return nil, fmt.Errorf("decode z_A: %w", err)
	}
	if pf.zC, err = readScalar(); err != nil {
		return nil, fmt.Errorf("decode z_C: %w", err)
	}
	if pf.z, err = readScalar(); err != nil {
		return nil, fmt.Errorf("decode z: %w", err)
	}

	return pf, nil
}

// EncodedLen returns the exact byte length Encode will produce for a proof
// over the given base n and exponent m, without constructing a proof.
func EncodedLen(n, m uint32) int {
	return 4*32 + 2*int(m)*32 + int(m)*int(n-1)*32 + 3*32
}

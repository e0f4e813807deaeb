// Package params derives and holds the shared, immutable public parameters
// of a Triptych proof system: the commitment generators, the linking-tag
// generator, and the base-n/exponent-m index decomposition arithmetic used
// to encode which of N = n^m input-set entries the prover knows.
package params

import (
	"errors"
	"fmt"

	"github.com/takakv/triptych/curvegroup"
	"github.com/takakv/triptych/transcript"
)

// ErrInvalidParameter is returned whenever a parameter, witness, or
// decomposition request is out of range or otherwise malformed. It is
// shared across the whole module so callers can check with errors.Is
// regardless of which package raised it.
var ErrInvalidParameter = errors.New("triptych: invalid parameter")

// domainTag fixes the hash-to-group context for every generator derived by
// this package; changing it changes every Parameters value.
const domainTag = "Triptych generators v1"

// Parameters holds the shared public parameters of a Triptych proof
// system for a given base n and exponent m. Values are immutable once
// constructed and intended to be shared (by reference) across many
// witnesses, input sets, statements, and proofs.
type Parameters struct {
	n, m uint32
	size uint32 // N = n^m

	g           curvegroup.Point // base generator G
	u           curvegroup.Point // linking-tag generator U
	commitmentH curvegroup.Point
	commitmentG [][]curvegroup.Point // m rows of n generators each

	hash [32]byte
}

// New derives the Triptych parameters for base n and exponent m. It fails
// with ErrInvalidParameter if n < 2, m < 2, or n^m does not fit in 32 bits.
func New(n, m uint32) (*Parameters, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n must be at least 2, got %d", ErrInvalidParameter, n)
	}
	if m < 2 {
		return nil, fmt.Errorf("%w: m must be at least 2, got %d", ErrInvalidParameter, m)
	}

	N, err := checkedPow(n, m)
	if err != nil {
		return nil, err
	}

	p := &Parameters{n: n, m: m, size: N}
	p.g = curvegroup.BasePoint()
	p.u = curvegroup.HashToPoint([]byte(domainTag), []byte(fmt.Sprintf("U|n=%d|m=%d", n, m)))
	p.commitmentH = curvegroup.HashToPoint([]byte(domainTag), []byte(fmt.Sprintf("H|n=%d|m=%d", n, m)))

	p.commitmentG = make([][]curvegroup.Point, m)
	for j := uint32(0); j < m; j++ {
		row := make([]curvegroup.Point, n)
		for i := uint32(0); i < n; i++ {
			row[i] = curvegroup.HashToPoint([]byte(domainTag),
				[]byte(fmt.Sprintf("G|n=%d|m=%d|j=%d|i=%d", n, m, j, i)))
		}
		p.commitmentG[j] = row
	}

	p.hash = p.computeHash()
	return p, nil
}

// checkedPow computes n^m, failing if the result does not fit in a uint32.
func checkedPow(n, m uint32) (uint32, error) {
	result := uint64(1)
	base := uint64(n)
	for i := uint32(0); i < m; i++ {
		result *= base
		if result > 0xFFFFFFFF {
			return 0, fmt.Errorf("%w: n^m overflows 32 bits for n=%d, m=%d", ErrInvalidParameter, n, m)
		}
	}
	return uint32(result), nil
}

func (p *Parameters) computeHash() [32]byte {
	tr := transcript.New("Triptych parameters")
	tr.AppendUint64("n", uint64(p.n))
	tr.AppendUint64("m", uint64(p.m))
	gb := p.g.Compress()
	tr.Append("G", gb[:])
	ub := p.u.Compress()
	tr.Append("U", ub[:])
	hb := p.commitmentH.Compress()
	tr.Append("H", hb[:])
	for j := range p.commitmentG {
		for i := range p.commitmentG[j] {
			cb := p.commitmentG[j][i].Compress()
			tr.Append("CommitmentG", cb[:])
		}
	}
	var out [32]byte
	tr.ChallengeBytes("params-hash", out[:])
	return out
}

// N returns n^m, the size of the input set this Parameters value supports.
func (p *Parameters) N() uint32 { return p.size }

// Base returns n, the digit base used by index decomposition.
func (p *Parameters) Base() uint32 { return p.n }

// Exponent returns m, the number of digits used by index decomposition.
func (p *Parameters) Exponent() uint32 { return p.m }

// G returns the group's base generator.
func (p *Parameters) G() curvegroup.Point { return p.g }

// U returns the linking-tag generator.
func (p *Parameters) U() curvegroup.Point { return p.u }

// CommitmentH returns the matrix-commitment blinding generator.
func (p *Parameters) CommitmentH() curvegroup.Point { return p.commitmentH }

// CommitmentG returns the (j, i) matrix-commitment generator.
func (p *Parameters) CommitmentG(j, i uint32) curvegroup.Point {
	return p.commitmentG[j][i]
}

// Hash returns the 32-byte domain hash binding every generator above; two
// Parameters values with equal (n, m) always produce the same hash.
func (p *Parameters) Hash() [32]byte { return p.hash }

// Equal reports whether p and other describe the same parameter set, by
// comparing domain hashes rather than pointer identity so that two
// independently constructed Parameters values for the same (n, m) still
// compare equal.
func (p *Parameters) Equal(other *Parameters) bool {
	if p == other {
		return true
	}
	if other == nil {
		return false
	}
	return p.hash == other.hash
}

// Decompose returns the little-endian base-n digits of k (digit 0 is the
// least significant), using exactly m digits. It fails with
// ErrInvalidParameter if k >= N. The loop below never branches on k's
// value, only on the fixed bound m, so it is safe to call with a secret
// index.
func (p *Parameters) Decompose(k uint32) ([]uint32, error) {
	if k >= p.size {
		return nil, fmt.Errorf("%w: index %d out of range for N=%d", ErrInvalidParameter, k, p.size)
	}
	digits := make([]uint32, p.m)
	remaining := k
	for j := uint32(0); j < p.m; j++ {
		digits[j] = remaining % p.n
		remaining /= p.n
	}
	return digits, nil
}

// CommitMatrix computes ρ·CommitmentH + Σ_{j,i} x[j][i]·CommitmentG[j][i]
// using constant-time multi-scalar multiplication, since every caller in
// the prover passes a matrix derived from the secret witness index or mask
// material.
func (p *Parameters) CommitMatrix(x [][]curvegroup.Scalar, rho curvegroup.Scalar) (curvegroup.Point, error) {
	if uint32(len(x)) != p.m {
		return curvegroup.Point{}, fmt.Errorf("%w: matrix has %d rows, want %d", ErrInvalidParameter, len(x), p.m)
	}
	scalars := make([]curvegroup.Scalar, 0, p.m*p.n+1)
	points := make([]curvegroup.Point, 0, p.m*p.n+1)
	for j := uint32(0); j < p.m; j++ {
		if uint32(len(x[j])) != p.n {
			return curvegroup.Point{}, fmt.Errorf("%w: matrix row %d has %d columns, want %d",
				ErrInvalidParameter, j, len(x[j]), p.n)
		}
		for i := uint32(0); i < p.n; i++ {
			scalars = append(scalars, x[j][i])
			points = append(points, p.commitmentG[j][i])
		}
	}
	scalars = append(scalars, rho)
	points = append(points, p.commitmentH)
	return curvegroup.MultiScalarMul(scalars, points), nil
}

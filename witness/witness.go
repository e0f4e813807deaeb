// Package witness holds the secret (index, scalar) pair a Triptych prover
// knows, bound to a specific Parameters value.
package witness

import (
	"fmt"
	"io"

	"github.com/takakv/triptych/curvegroup"
	"github.com/takakv/triptych/params"
)

// Witness is the secret (l, r) pair: l is the index into the input set
// whose verification key r*G the prover knows the discrete log of.
type Witness struct {
	params *params.Parameters
	l      uint32
	r      curvegroup.Scalar
}

// New validates and wraps an (l, r) pair against p. l must lie in [0, N)
// and r must be nonzero.
func New(p *params.Parameters, l uint32, r curvegroup.Scalar) (*Witness, error) {
	if l >= p.N() {
		return nil, fmt.Errorf("%w: index %d out of range for N=%d", params.ErrInvalidParameter, l, p.N())
	}
	if r.IsZero() {
		return nil, fmt.Errorf("%w: witness scalar must be nonzero", params.ErrInvalidParameter)
	}
	return &Witness{params: p, l: l, r: r}, nil
}

// Random samples a uniformly random witness for p: l uniform in [0, N) and
// r a uniform nonzero scalar, drawing entropy from rng. Production callers
// pass crypto/rand.Reader; tests may inject a deterministic reader.
func Random(p *params.Parameters, rng io.Reader) *Witness {
	l := uniformIndex(p.N(), rng)
	r := curvegroup.RandomNonZeroScalar(rng)
	return &Witness{params: p, l: l, r: r}
}

// uniformIndex samples uniformly from [0, n) by rejection sampling over a
// uniform scalar's low bits; n is public (derived from public Parameters),
// so this need not be constant-time.
func uniformIndex(n uint32, rng io.Reader) uint32 {
	if n == 0 {
		panic("witness: uniformIndex called with n == 0")
	}
	limit := (uint64(1) << 32) / uint64(n) * uint64(n)
	for {
		s := curvegroup.RandomScalar(rng).Bytes()
		candidate := uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24
		if candidate < limit {
			return uint32(candidate % uint64(n))
		}
	}
}

// Params returns the Parameters this witness is bound to.
func (w *Witness) Params() *params.Parameters { return w.params }

// Index returns the secret index l.
func (w *Witness) Index() uint32 { return w.l }

// Scalar returns the secret scalar r.
func (w *Witness) Scalar() curvegroup.Scalar { return w.r }

// VerificationKey returns r*G, the public key this witness proves
// knowledge of the discrete log of.
func (w *Witness) VerificationKey() curvegroup.Point {
	return curvegroup.ScalarBaseMul(w.r)
}

// LinkingTag returns r^-1*U, the deterministic tag that lets two proofs over
// the same secret scalar be linked without revealing r or l.
func (w *Witness) LinkingTag() curvegroup.Point {
	return curvegroup.ScalarMul(w.params.U(), curvegroup.InvertScalar(w.r))
}

// Zeroize overwrites the witness's secret scalar. Call this once the
// witness is no longer needed.
func (w *Witness) Zeroize() {
	w.r.Zeroize()
}

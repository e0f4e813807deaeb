// Package statement holds the public input set and statement a Triptych
// proof is verified against.
package statement

import (
	"fmt"

	"github.com/takakv/triptych/curvegroup"
	"github.com/takakv/triptych/params"
	"github.com/takakv/triptych/transcript"
)

// InputSet is the public ordered vector of N group points, together with a
// canonical digest used to bind it into the Fiat-Shamir transcript.
type InputSet struct {
	keys []curvegroup.Point
	hash [32]byte
}

// NewInputSet stores M and computes its canonical digest.
func NewInputSet(M []curvegroup.Point) *InputSet {
	keys := make([]curvegroup.Point, len(M))
	copy(keys, M)

	tr := transcript.New("Triptych input set")
	tr.AppendUint64("len", uint64(len(keys)))
	for _, k := range keys {
		b := k.Compress()
		tr.Append("M", b[:])
	}
	var hash [32]byte
	tr.ChallengeBytes("input-set-hash", hash[:])

	return &InputSet{keys: keys, hash: hash}
}

// Len returns the number of points in the input set.
func (s *InputSet) Len() int { return len(s.keys) }

// At returns the k'th input-set point.
func (s *InputSet) At(k int) curvegroup.Point { return s.keys[k] }

// Keys returns a copy of the full input-set vector.
func (s *InputSet) Keys() []curvegroup.Point {
	out := make([]curvegroup.Point, len(s.keys))
	copy(out, s.keys)
	return out
}

// Hash returns the 32-byte canonical digest of the input set.
func (s *InputSet) Hash() [32]byte { return s.hash }

// Statement is the public claim a Triptych proof attests to: that the
// prover knows the discrete log of exactly one entry of InputSet, and that
// J is that secret's linking tag. J is stored unverified; proof
// verification is what enforces the relationship between J and the
// witness actually used.
type Statement struct {
	params   *params.Parameters
	inputSet *InputSet
	j        curvegroup.Point
}

// New builds a Statement, requiring inputSet to have exactly N = p.N()
// entries.
func New(p *params.Parameters, inputSet *InputSet, j curvegroup.Point) (*Statement, error) {
	if uint32(inputSet.Len()) != p.N() {
		return nil, fmt.Errorf("%w: input set has %d entries, want %d",
			params.ErrInvalidParameter, inputSet.Len(), p.N())
	}
	return &Statement{params: p, inputSet: inputSet, j: j}, nil
}

// Params returns the statement's Parameters.
func (s *Statement) Params() *params.Parameters { return s.params }

// InputSet returns the statement's public input set.
func (s *Statement) InputSet() *InputSet { return s.inputSet }

// LinkingTag returns J.
func (s *Statement) LinkingTag() curvegroup.Point { return s.j }

package curvegroup

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/group"
)

// Point is an element of the Ristretto255 group.
type Point struct {
	val group.Element
}

// Identity returns the group's identity element.
func Identity() Point {
	return Point{val: group.Ristretto255.Identity()}
}

// BasePoint returns the group's distinguished generator G.
func BasePoint() Point {
	return Point{val: group.Ristretto255.Generator()}
}

// RandomPoint samples a point uniformly from the group, drawing entropy
// from rng. Used only for test data generation; it carries no discrete-log
// relationship to any other generator.
func RandomPoint(rng io.Reader) Point {
	return Point{val: group.Ristretto255.RandomElement(rng)}
}

// HashToPoint derives a point deterministically from a domain-separated
// label, with unknown discrete logarithm relative to any other generator.
// This is how every Triptych commitment generator (CommitmentG[j][i],
// CommitmentH, U) is derived from a fixed context string.
func HashToPoint(domainSeparator, label []byte) Point {
	return Point{val: group.Ristretto255.HashToElement(label, domainSeparator)}
}

// AddPoints returns x + y.
func AddPoints(x, y Point) Point {
	out := group.Ristretto255.NewElement()
	out.Add(x.val, y.val)
	return Point{val: out}
}

// SubPoints returns x - y.
func SubPoints(x, y Point) Point {
	neg := group.Ristretto255.NewElement()
	neg.Neg(y.val)
	out := group.Ristretto255.NewElement()
	out.Add(x.val, neg)
	return Point{val: out}
}

// NegatePoint returns -x.
func NegatePoint(x Point) Point {
	out := group.Ristretto255.NewElement()
	out.Neg(x.val)
	return Point{val: out}
}

// ScalarMul returns s*x.
func ScalarMul(x Point, s Scalar) Point {
	out := group.Ristretto255.NewElement()
	out.Mul(x.val, s.val)
	return Point{val: out}
}

// ScalarBaseMul returns s*G for the group's generator G.
func ScalarBaseMul(s Scalar) Point {
	out := group.Ristretto255.NewElement()
	out.MulGen(s.val)
	return Point{val: out}
}

// Equal reports whether p and x represent the same group element.
func (p Point) Equal(x Point) bool {
	return p.val.IsEqual(x.val)
}

// IsIdentity reports whether p is the group's identity element.
func (p Point) IsIdentity() bool {
	return p.val.IsIdentity()
}

// Compress returns the canonical 32-byte encoding of p.
func (p Point) Compress() [32]byte {
	var out [32]byte
	b, err := p.val.MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("curvegroup: point marshal: %v", err))
	}
	copy(out[:], b)
	return out
}

// Decompress recovers a point from its canonical 32-byte encoding,
// rejecting any non-canonical representation.
func Decompress(b []byte) (Point, error) {
	if len(b) != 32 {
		return Point{}, fmt.Errorf("curvegroup: point must be 32 bytes, got %d", len(b))
	}
	e := group.Ristretto255.NewElement()
	if err := e.UnmarshalBinary(b); err != nil {
		return Point{}, fmt.Errorf("curvegroup: non-canonical point encoding: %w", err)
	}
	return Point{val: e}, nil
}

// MultiScalarMul computes Σ scalars[i]*points[i] without branching or
// indexing on the scalar values, for use whenever the scalar vector may
// depend on a secret index (Triptych's X commitment is the only such case).
// It always walks every term in the same fixed order regardless of scalar
// content.
func MultiScalarMul(scalars []Scalar, points []Point) Point {
	if len(scalars) != len(points) {
		panic("curvegroup: mismatched scalar/point vector lengths")
	}
	acc := group.Ristretto255.Identity()
	term := group.Ristretto255.NewElement()
	for i := range scalars {
		term.Mul(points[i].val, scalars[i].val)
		acc.Add(acc, term)
	}
	return Point{val: acc}
}

// VartimeMultiScalarMul computes Σ scalars[i]*points[i] using whatever
// shortcuts are convenient, including skipping terms whose scalar is zero.
// Only safe to call when none of the scalars or points are secret, which
// holds for every verifier computation.
func VartimeMultiScalarMul(scalars []Scalar, points []Point) Point {
	if len(scalars) != len(points) {
		panic("curvegroup: mismatched scalar/point vector lengths")
	}
	acc := group.Ristretto255.Identity()
	for i := range scalars {
		if scalars[i].IsZero() {
			continue
		}
		term := group.Ristretto255.NewElement()
		term.Mul(points[i].val, scalars[i].val)
		acc.Add(acc, term)
	}
	return Point{val: acc}
}

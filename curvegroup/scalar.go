// Package curvegroup adapts the Ristretto255 prime-order group to the
// point/scalar contract the Triptych proof system is built against:
// uniform sampling, canonical 32-byte encodings, wide-reduction of 64-byte
// challenge material, and both constant-time and variable-time multi-scalar
// multiplication.
package curvegroup

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cloudflare/circl/group"
)

// groupOrder is the order of the Ristretto255 prime-order subgroup,
// ℓ = 2^252 + 27742317777372353535851937790883648493.
var groupOrder, _ = new(big.Int).SetString(
	"1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

// Scalar is an element of the scalar field of Ristretto255.
type Scalar struct {
	val group.Scalar
}

// ScalarZero returns the additive identity.
func ScalarZero() Scalar {
	return Scalar{val: group.Ristretto255.NewScalar()}
}

// ScalarOne returns the multiplicative identity.
func ScalarOne() Scalar {
	s := group.Ristretto255.NewScalar()
	s.SetUint64(1)
	return Scalar{val: s}
}

// ScalarFromUint64 lifts a small integer into the scalar field.
func ScalarFromUint64(n uint64) Scalar {
	s := group.Ristretto255.NewScalar()
	s.SetUint64(n)
	return Scalar{val: s}
}

// RandomScalar samples a scalar uniformly from the field, drawing entropy
// from rng. Production callers pass crypto/rand.Reader; tests may inject a
// deterministic reader to reproduce a proof run exactly.
func RandomScalar(rng io.Reader) Scalar {
	return Scalar{val: group.Ristretto255.RandomScalar(rng)}
}

// RandomNonZeroScalar samples a scalar uniformly from the nonzero elements
// of the field, drawing entropy from rng.
func RandomNonZeroScalar(rng io.Reader) Scalar {
	for {
		s := RandomScalar(rng)
		if !s.IsZero() {
			return s
		}
	}
}

// ScalarFromWideBytes reduces 64 bytes of uniform material modulo the group
// order, matching the "wide reduction" contract used to derive the
// Fiat-Shamir challenge from transcript output. The reduction runs over
// public challenge material, so using big.Int arithmetic here does not
// leak anything secret-dependent.
func ScalarFromWideBytes(wide *[64]byte) Scalar {
	n := new(big.Int).SetBytes(wide[:])
	n.Mod(n, groupOrder)
	s := group.Ristretto255.NewScalar().SetBigInt(n)
	return Scalar{val: s}
}

// AddScalars returns x + y.
func AddScalars(x, y Scalar) Scalar {
	out := group.Ristretto255.NewScalar()
	out.Add(x.val, y.val)
	return Scalar{val: out}
}

// SubScalars returns x - y.
func SubScalars(x, y Scalar) Scalar {
	out := group.Ristretto255.NewScalar()
	out.Sub(x.val, y.val)
	return Scalar{val: out}
}

// MulScalars returns x * y.
func MulScalars(x, y Scalar) Scalar {
	out := group.Ristretto255.NewScalar()
	out.Mul(x.val, y.val)
	return Scalar{val: out}
}

// NegateScalar returns -x.
func NegateScalar(x Scalar) Scalar {
	out := group.Ristretto255.NewScalar()
	out.Neg(x.val)
	return Scalar{val: out}
}

// InvertScalar returns x^-1. Panics if x is zero; callers must never invert
// a scalar that can be zero without checking first.
func InvertScalar(x Scalar) Scalar {
	if x.IsZero() {
		panic("curvegroup: inversion of zero scalar")
	}
	out := group.Ristretto255.NewScalar()
	out.Inv(x.val)
	return Scalar{val: out}
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.val.IsZero()
}

// Equal reports whether s and x represent the same field element.
func (s Scalar) Equal(x Scalar) bool {
	return s.val.IsEqual(x.val)
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s Scalar) Bytes() [32]byte {
	var out [32]byte
	b, err := s.val.MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("curvegroup: scalar marshal: %v", err))
	}
	copy(out[:], b)
	return out
}

// SetCanonicalBytes decodes a canonical 32-byte little-endian scalar
// encoding, rejecting any non-reduced representation.
func SetCanonicalBytes(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return Scalar{}, fmt.Errorf("curvegroup: scalar must be 32 bytes, got %d", len(b))
	}
	s := group.Ristretto255.NewScalar()
	if err := s.UnmarshalBinary(b); err != nil {
		return Scalar{}, fmt.Errorf("curvegroup: non-canonical scalar encoding: %w", err)
	}
	return Scalar{val: s}, nil
}

// Zeroize overwrites the scalar's backing storage. Callers should invoke
// this on every secret scalar (witness randomness, masks, blindings) before
// the value goes out of scope.
func (s *Scalar) Zeroize() {
	if s.val == nil {
		return
	}
	s.val.SetUint64(0)
	s.val = nil
}

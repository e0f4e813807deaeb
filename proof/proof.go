// Package proof implements the Triptych one-out-of-many linkable proof of
// knowledge: generation and verification of a non-interactive proof that
// the prover knows the discrete log of exactly one entry of a public input
// set, bound to a deterministic linking tag that lets repeated use of the
// same secret be detected without revealing which entry it is.
package proof

import (
	"fmt"
	"io"

	"github.com/takakv/triptych/curvegroup"
	"github.com/takakv/triptych/statement"
	"github.com/takakv/triptych/witness"
)

// Proof is a Triptych proof. The f matrix stores only columns [1, n) of
// each row; column 0 is reconstructed by the verifier as ξ minus the row
// sum, per the protocol's transcript-binding contract.
type Proof struct {
	A, B, C, D curvegroup.Point
	X, Y       []curvegroup.Point
	f          [][]curvegroup.Scalar
	zA, zC, z  curvegroup.Scalar
}

// delta is the Kronecker delta, returning 1 if x == y and 0 otherwise.
func delta(x, y uint32) curvegroup.Scalar {
	if x == y {
		return curvegroup.ScalarOne()
	}
	return curvegroup.ScalarZero()
}

// zeroizeMatrix overwrites every scalar in a jagged m*n matrix of secret
// material.
func zeroizeMatrix(m [][]curvegroup.Scalar) {
	for _, row := range m {
		for i := range row {
			row[i].Zeroize()
		}
	}
}

// Prove generates a Triptych proof that w knows the discrete log of
// st.InputSet().At(w.Index()) and that st.LinkingTag() is that secret's
// linking tag, optionally binding an arbitrary message into the
// Fiat-Shamir transcript. Every mask and blinding scalar is drawn from rng;
// production callers pass crypto/rand.Reader, while tests may inject a
// deterministic reader to reproduce a run exactly.
//
// The mask matrix a, the one-hot matrix σ, the matrices committed in C and
// D, the blindings r_A..r_D, the mask vector ρ and the final per-index
// polynomial coefficients are zeroized before Prove returns, on both the
// success and error paths. Intermediate values computed along the way (the
// partial convolution vectors, the digits of l, the ρ·ξ sum) are not
// overwritten.
func Prove(w *witness.Witness, st *statement.Statement, message []byte, rng io.Reader) (*Proof, error) {
	p := w.Params()
	if !p.Equal(st.Params()) {
		return nil, fmt.Errorf("%w: witness and statement use different parameters", ErrInvalidParameter)
	}

	r := w.Scalar()
	l := w.Index()
	inputSet := st.InputSet()
	j := st.LinkingTag()

	if l >= uint32(inputSet.Len()) {
		return nil, fmt.Errorf("%w: witness index %d out of range", ErrInvalidParameter, l)
	}
	if !inputSet.At(int(l)).Equal(curvegroup.ScalarBaseMul(r)) {
		return nil, fmt.Errorf("%w: input set entry at witness index does not match r*G", ErrInvalidParameter)
	}
	if !curvegroup.ScalarMul(j, r).Equal(p.U()) {
		return nil, fmt.Errorf("%w: r*J does not match U", ErrInvalidParameter)
	}

	n, m, N := p.Base(), p.Exponent(), p.N()

	tr := newTranscript(message, p.Hash(), inputSet.Hash(), j)

	// Step 1: mask matrix a, each row summing to zero.
	a := make([][]curvegroup.Scalar, m)
	for row := uint32(0); row < m; row++ {
		a[row] = make([]curvegroup.Scalar, n)
		sum := curvegroup.ScalarZero()
		for col := uint32(1); col < n; col++ {
			a[row][col] = curvegroup.RandomScalar(rng)
			sum = curvegroup.AddScalars(sum, a[row][col])
		}
		a[row][0] = curvegroup.NegateScalar(sum)
	}
	defer zeroizeMatrix(a)

	rA := curvegroup.RandomScalar(rng)
	defer rA.Zeroize()
	A, err := p.CommitMatrix(a, rA)
	if err != nil {
		return nil, err
	}

	// Step 2: sigma is the one-hot decomposition of l.
	lDigits, err := p.Decompose(l)
	if err != nil {
		return nil, err
	}
	sigma := make([][]curvegroup.Scalar, m)
	for row := uint32(0); row < m; row++ {
		sigma[row] = make([]curvegroup.Scalar, n)
		for col := uint32(0); col < n; col++ {
			sigma[row][col] = delta(lDigits[row], col)
		}
	}
	defer zeroizeMatrix(sigma)

	rB := curvegroup.RandomScalar(rng)
	defer rB.Zeroize()
	B, err := p.CommitMatrix(sigma, rB)
	if err != nil {
		return nil, err
	}

	// Step 3: C commits to a ⊙ (1 - 2σ), D commits to -a ⊙ a.
	two := curvegroup.ScalarFromUint64(2)
	one := curvegroup.ScalarOne()
	aSigma := make([][]curvegroup.Scalar, m)
	aSquare := make([][]curvegroup.Scalar, m)
	for row := uint32(0); row < m; row++ {
		aSigma[row] = make([]curvegroup.Scalar, n)
		aSquare[row] = make([]curvegroup.Scalar, n)
		for col := uint32(0); col < n; col++ {
			factor := curvegroup.SubScalars(one, curvegroup.MulScalars(two, sigma[row][col]))
			aSigma[row][col] = curvegroup.MulScalars(a[row][col], factor)
			aSquare[row][col] = curvegroup.NegateScalar(curvegroup.MulScalars(a[row][col], a[row][col]))
		}
	}
	defer zeroizeMatrix(aSigma)
	defer zeroizeMatrix(aSquare)

	rC := curvegroup.RandomScalar(rng)
	defer rC.Zeroize()
	C, err := p.CommitMatrix(aSigma, rC)
	if err != nil {
		return nil, err
	}

	rD := curvegroup.RandomScalar(rng)
	defer rD.Zeroize()
	D, err := p.CommitMatrix(aSquare, rD)
	if err != nil {
		return nil, err
	}

	// Step 4: mask vector rho.
	rho := make([]curvegroup.Scalar, m)
	for idx := range rho {
		rho[idx] = curvegroup.RandomScalar(rng)
	}
	defer func() {
		for i := range rho {
			rho[i].Zeroize()
		}
	}()

	// Step 5: per-index polynomial coefficients via iterated convolution.
	pCoeffs := make([][]curvegroup.Scalar, N)
	for k := uint32(0); k < N; k++ {
		kDigits, err := p.Decompose(k)
		if err != nil {
			return nil, err
		}

		coeffs := make([]curvegroup.Scalar, m+1)
		for i := range coeffs {
			coeffs[i] = curvegroup.ScalarZero()
		}
		coeffs[0] = a[0][kDigits[0]]
		coeffs[1] = sigma[0][kDigits[0]]

		for row := uint32(1); row < m; row++ {
			degree0 := make([]curvegroup.Scalar, len(coeffs))
			for i, c := range coeffs {
				degree0[i] = curvegroup.MulScalars(a[row][kDigits[row]], c)
			}

			shifted := make([]curvegroup.Scalar, len(coeffs))
			copy(shifted[1:], coeffs[:len(coeffs)-1])
			shifted[0] = curvegroup.ScalarZero()
			degree1 := make([]curvegroup.Scalar, len(shifted))
			for i, c := range shifted {
				degree1[i] = curvegroup.MulScalars(sigma[row][kDigits[row]], c)
			}

			next := make([]curvegroup.Scalar, len(coeffs))
			for i := range next {
				next[i] = curvegroup.AddScalars(degree0[i], degree1[i])
			}
			coeffs = next
		}
		pCoeffs[k] = coeffs
	}
	defer zeroizeMatrix(pCoeffs)

	// Step 6: X[j] = Σ_k p_k[j]*M[k] + ρ[j]*G, one constant-time MSM per j.
	X := make([]curvegroup.Point, m)
	keys := inputSet.Keys()
	for col := uint32(0); col < m; col++ {
		scalars := make([]curvegroup.Scalar, N+1)
		points := make([]curvegroup.Point, N+1)
		for k := uint32(0); k < N; k++ {
			scalars[k] = pCoeffs[k][col]
			points[k] = keys[k]
		}
		scalars[N] = rho[col]
		points[N] = p.G()
		X[col] = curvegroup.MultiScalarMul(scalars, points)
	}

	// Step 7: Y[j] = ρ[j]*J.
	Y := make([]curvegroup.Point, m)
	for idx := uint32(0); idx < m; idx++ {
		Y[idx] = curvegroup.ScalarMul(j, rho[idx])
	}

	// Step 8: bind commitments, draw challenge powers.
	appendCommitments(tr, A, B, C, D, X, Y)
	xi, err := xiPowers(tr, m)
	if err != nil {
		return nil, err
	}

	// Step 9: f matrix, columns [1, n) only.
	f := make([][]curvegroup.Scalar, m)
	for row := uint32(0); row < m; row++ {
		f[row] = make([]curvegroup.Scalar, n-1)
		for col := uint32(1); col < n; col++ {
			f[row][col-1] = curvegroup.AddScalars(
				curvegroup.MulScalars(sigma[row][col], xi[1]),
				a[row][col],
			)
		}
	}

	// Step 10: responses.
	zA := curvegroup.AddScalars(rA, curvegroup.MulScalars(xi[1], rB))
	zC := curvegroup.AddScalars(curvegroup.MulScalars(xi[1], rC), rD)

	rhoDotXi := curvegroup.ScalarZero()
	for idx := uint32(0); idx < m; idx++ {
		rhoDotXi = curvegroup.AddScalars(rhoDotXi, curvegroup.MulScalars(rho[idx], xi[idx]))
	}
	z := curvegroup.SubScalars(curvegroup.MulScalars(r, xi[m]), rhoDotXi)

	return &Proof{
		A: A, B: B, C: C, D: D,
		X: X, Y: Y,
		f:  f,
		zA: zA, zC: zC, z: z,
	}, nil
}

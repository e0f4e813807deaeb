package proof

import (
	"io"

	"github.com/takakv/triptych/curvegroup"
	"github.com/takakv/triptych/statement"
)

// reconstructF rebuilds the full n-column f matrix from the proof's stored
// [1, n) columns: column 0 is ξ minus the sum of the rest.
func reconstructF(stored [][]curvegroup.Scalar, xi1 curvegroup.Scalar) [][]curvegroup.Scalar {
	full := make([][]curvegroup.Scalar, len(stored))
	for row, cols := range stored {
		sum := curvegroup.ScalarZero()
		for _, c := range cols {
			sum = curvegroup.AddScalars(sum, c)
		}
		fRow := make([]curvegroup.Scalar, len(cols)+1)
		fRow[0] = curvegroup.SubScalars(xi1, sum)
		copy(fRow[1:], cols)
		full[row] = fRow
	}
	return full
}

// Verify reports whether proof is a valid Triptych proof of st, bound to
// message. It draws its random linear-combination weights from rng;
// production callers pass crypto/rand.Reader. It never panics and holds no
// secrets, so every inner operation may run in variable time.
func Verify(pf *Proof, st *statement.Statement, message []byte, rng io.Reader) bool {
	p := st.Params()
	inputSet := st.InputSet()
	j := st.LinkingTag()

	if uint32(len(pf.X)) != p.Exponent() || uint32(len(pf.Y)) != p.Exponent() {
		return false
	}
	if uint32(len(pf.f)) != p.Exponent() {
		return false
	}
	for _, row := range pf.f {
		if uint32(len(row)) != p.Base()-1 {
			return false
		}
	}

	tr := newTranscript(message, p.Hash(), inputSet.Hash(), j)
	appendCommitments(tr, pf.A, pf.B, pf.C, pf.D, pf.X, pf.Y)

	xi, err := xiPowers(tr, p.Exponent())
	if err != nil {
		return false
	}

	f := reconstructF(pf.f, xi[1])

	w1 := curvegroup.RandomNonZeroScalar(rng)
	w2 := curvegroup.RandomNonZeroScalar(rng)
	w4 := curvegroup.RandomNonZeroScalar(rng)

	n, m, N := p.Base(), p.Exponent(), p.N()

	points := make([]curvegroup.Point, 0, N+2*m+n*m+8)
	scalars := make([]curvegroup.Scalar, 0, N+2*m+n*m+8)

	// G
	points = append(points, p.G())
	scalars = append(scalars, curvegroup.NegateScalar(pf.z))

	// CommitmentG[j][i], row-major.
	for row := uint32(0); row < m; row++ {
		for col := uint32(0); col < n; col++ {
			fItem := f[row][col]
			term := curvegroup.AddScalars(
				curvegroup.MulScalars(w1, fItem),
				curvegroup.MulScalars(w2, curvegroup.MulScalars(fItem, curvegroup.SubScalars(xi[1], fItem))),
			)
			points = append(points, p.CommitmentG(row, col))
			scalars = append(scalars, term)
		}
	}

	// CommitmentH
	points = append(points, p.CommitmentH())
	scalars = append(scalars, curvegroup.AddScalars(
		curvegroup.MulScalars(w1, pf.zA),
		curvegroup.MulScalars(w2, pf.zC),
	))

	// A, B, C, D
	points = append(points, pf.A)
	scalars = append(scalars, curvegroup.NegateScalar(w1))
	points = append(points, pf.B)
	scalars = append(scalars, curvegroup.NegateScalar(curvegroup.MulScalars(w1, xi[1])))
	points = append(points, pf.C)
	scalars = append(scalars, curvegroup.NegateScalar(curvegroup.MulScalars(w2, xi[1])))
	points = append(points, pf.D)
	scalars = append(scalars, curvegroup.NegateScalar(w2))

	// J
	points = append(points, j)
	scalars = append(scalars, curvegroup.NegateScalar(curvegroup.MulScalars(w4, pf.z)))

	// X[j]
	for idx := uint32(0); idx < m; idx++ {
		points = append(points, pf.X[idx])
		scalars = append(scalars, curvegroup.NegateScalar(xi[idx]))
	}

	// Y[j]
	for idx := uint32(0); idx < m; idx++ {
		points = append(points, pf.Y[idx])
		scalars = append(scalars, curvegroup.NegateScalar(curvegroup.MulScalars(w4, xi[idx])))
	}

	// M[k]
	uScalar := curvegroup.ScalarZero()
	keys := inputSet.Keys()
	for k := uint32(0); k < N; k++ {
		digits, err := p.Decompose(k)
		if err != nil {
			return false
		}
		fProduct := curvegroup.ScalarOne()
		for row := uint32(0); row < m; row++ {
			fProduct = curvegroup.MulScalars(fProduct, f[row][digits[row]])
		}
		points = append(points, keys[k])
		scalars = append(scalars, fProduct)
		uScalar = curvegroup.AddScalars(uScalar, fProduct)
	}

	// U
	points = append(points, p.U())
	scalars = append(scalars, curvegroup.MulScalars(w4, uScalar))

	result := curvegroup.VartimeMultiScalarMul(scalars, points)
	return result.IsIdentity()
}

// ProofStatementPair is one entry of a batch verification request.
type ProofStatementPair struct {
	Proof     *Proof
	Statement *statement.Statement
	Message   []byte
}

// VerifyBatch checks a batch of (statement, proof) pairs sharing the same
// Parameters, folding all checks into a single multi-scalar multiplication.
// Each proof contributes fresh independent weights drawn from rng
// (production callers pass crypto/rand.Reader); a zero challenge power
// anywhere rejects the whole batch.
func VerifyBatch(pairs []ProofStatementPair, rng io.Reader) bool {
	if len(pairs) == 0 {
		return true
	}

	base := pairs[0].Statement.Params()
	for _, pair := range pairs[1:] {
		if !pair.Statement.Params().Equal(base) {
			return false
		}
	}

	n, m, N := base.Base(), base.Exponent(), base.N()

	var points []curvegroup.Point
	var scalars []curvegroup.Scalar

	// A multiset sum of (point, scalar) pairs is linear regardless of
	// repeated points, so each proof simply appends its own terms to the
	// shared vectors; the final multiscalar multiplication sums
	// everything at once.
	for _, pair := range pairs {
		pf := pair.Proof
		st := pair.Statement
		p := st.Params()
		inputSet := st.InputSet()
		j := st.LinkingTag()

		if uint32(len(pf.X)) != m || uint32(len(pf.Y)) != m || uint32(len(pf.f)) != m {
			return false
		}
		for _, row := range pf.f {
			if uint32(len(row)) != n-1 {
				return false
			}
		}

		tr := newTranscript(pair.Message, p.Hash(), inputSet.Hash(), j)
		appendCommitments(tr, pf.A, pf.B, pf.C, pf.D, pf.X, pf.Y)

		xi, err := xiPowers(tr, m)
		if err != nil {
			return false
		}

		f := reconstructF(pf.f, xi[1])

		w1 := curvegroup.RandomNonZeroScalar(rng)
		w2 := curvegroup.RandomNonZeroScalar(rng)
		w4 := curvegroup.RandomNonZeroScalar(rng)

		points = append(points, p.G())
		scalars = append(scalars, curvegroup.NegateScalar(pf.z))

		for row := uint32(0); row < m; row++ {
			for col := uint32(0); col < n; col++ {
				fItem := f[row][col]
				term := curvegroup.AddScalars(
					curvegroup.MulScalars(w1, fItem),
					curvegroup.MulScalars(w2, curvegroup.MulScalars(fItem, curvegroup.SubScalars(xi[1], fItem))),
				)
				points = append(points, p.CommitmentG(row, col))
				scalars = append(scalars, term)
			}
		}

		points = append(points, p.CommitmentH())
		scalars = append(scalars, curvegroup.AddScalars(
			curvegroup.MulScalars(w1, pf.zA),
			curvegroup.MulScalars(w2, pf.zC),
		))

		points = append(points, pf.A)
		scalars = append(scalars, curvegroup.NegateScalar(w1))
		points = append(points, pf.B)
		scalars = append(scalars, curvegroup.NegateScalar(curvegroup.MulScalars(w1, xi[1])))
		points = append(points, pf.C)
		scalars = append(scalars, curvegroup.NegateScalar(curvegroup.MulScalars(w2, xi[1])))
		points = append(points, pf.D)
		scalars = append(scalars, curvegroup.NegateScalar(w2))

		points = append(points, j)
		scalars = append(scalars, curvegroup.NegateScalar(curvegroup.MulScalars(w4, pf.z)))

		for idx := uint32(0); idx < m; idx++ {
			points = append(points, pf.X[idx])
			scalars = append(scalars, curvegroup.NegateScalar(xi[idx]))
		}
		for idx := uint32(0); idx < m; idx++ {
			points = append(points, pf.Y[idx])
			scalars = append(scalars, curvegroup.NegateScalar(curvegroup.MulScalars(w4, xi[idx])))
		}

		uScalar := curvegroup.ScalarZero()
		keys := inputSet.Keys()
		for k := uint32(0); k < N; k++ {
			digits, err := p.Decompose(k)
			if err != nil {
				return false
			}
			fProduct := curvegroup.ScalarOne()
			for row := uint32(0); row < m; row++ {
				fProduct = curvegroup.MulScalars(fProduct, f[row][digits[row]])
			}
			points = append(points, keys[k])
			scalars = append(scalars, fProduct)
			uScalar = curvegroup.AddScalars(uScalar, fProduct)
		}

		points = append(points, p.U())
		scalars = append(scalars, curvegroup.MulScalars(w4, uScalar))
	}

	result := curvegroup.VartimeMultiScalarMul(scalars, points)
	return result.IsIdentity()
}

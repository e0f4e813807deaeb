// Package bench holds performance benchmarks for proof generation and
// verification, parameterized over the same (n, m) sweep the upstream
// Triptych benchmark suite uses, plus a small batch-verification case.
package bench

import (
	"crypto/rand"
	"testing"

	"github.com/takakv/triptych/curvegroup"
	"github.com/takakv/triptych/params"
	"github.com/takakv/triptych/proof"
	"github.com/takakv/triptych/statement"
	"github.com/takakv/triptych/witness"
)

var nValues = []uint32{2}
var mValues = []uint32{2, 4, 8, 10}
var batchSizes = []int{2}

var benchMessage = []byte("Proof message")

// generateBatch builds b witnesses at adjacent indices sharing one input
// set, and their corresponding statements.
func generateBatch(p *params.Parameters, b int) ([]*witness.Witness, []*statement.Statement) {
	witnesses := make([]*witness.Witness, b)
	witnesses[0] = witness.Random(p, rand.Reader)
	for i := 1; i < b; i++ {
		l := (witnesses[i-1].Index() + 1) % p.N()
		r := curvegroup.RandomNonZeroScalar(rand.Reader)
		w, err := witness.New(p, l, r)
		if err != nil {
			panic(err)
		}
		witnesses[i] = w
	}

	M := make([]curvegroup.Point, p.N())
	for i := range M {
		M[i] = curvegroup.RandomPoint(rand.Reader)
	}
	for _, w := range witnesses {
		M[w.Index()] = w.VerificationKey()
	}
	inputSet := statement.NewInputSet(M)

	statements := make([]*statement.Statement, b)
	for i, w := range witnesses {
		st, err := statement.New(p, inputSet, w.LinkingTag())
		if err != nil {
			panic(err)
		}
		statements[i] = st
	}
	return witnesses, statements
}

func BenchmarkGenerateProof(b *testing.B) {
	for _, n := range nValues {
		for _, m := range mValues {
			p, err := params.New(n, m)
			if err != nil {
				b.Fatalf("params.New: %v", err)
			}
			witnesses, statements := generateBatch(p, 1)

			b.Run(label(n, m, p.N()), func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := proof.Prove(witnesses[0], statements[0], benchMessage, rand.Reader); err != nil {
						b.Fatalf("Prove: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkVerifyProof(b *testing.B) {
	for _, n := range nValues {
		for _, m := range mValues {
			p, err := params.New(n, m)
			if err != nil {
				b.Fatalf("params.New: %v", err)
			}
			witnesses, statements := generateBatch(p, 1)
			pf, err := proof.Prove(witnesses[0], statements[0], benchMessage, rand.Reader)
			if err != nil {
				b.Fatalf("Prove: %v", err)
			}

			b.Run(label(n, m, p.N()), func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if !proof.Verify(pf, statements[0], benchMessage, rand.Reader) {
						b.Fatalf("Verify returned false for a valid proof")
					}
				}
			})
		}
	}
}

func BenchmarkVerifyBatchProof(b *testing.B) {
	for _, n := range nValues {
		for _, m := range mValues {
			p, err := params.New(n, m)
			if err != nil {
				b.Fatalf("params.New: %v", err)
			}
			for _, batchSize := range batchSizes {
				if uint32(batchSize) > p.N() {
					continue
				}
				witnesses, statements := generateBatch(p, batchSize)
				pairs := make([]proof.ProofStatementPair, batchSize)
				for i := range pairs {
					pf, err := proof.Prove(witnesses[i], statements[i], benchMessage, rand.Reader)
					if err != nil {
						b.Fatalf("Prove: %v", err)
					}
					pairs[i] = proof.ProofStatementPair{Proof: pf, Statement: statements[i], Message: benchMessage}
				}

				b.Run(batchLabel(n, m, p.N(), batchSize), func(b *testing.B) {
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						if !proof.VerifyBatch(pairs, rand.Reader) {
							b.Fatalf("VerifyBatch returned false for a valid batch")
						}
					}
				})
			}
		}
	}
}

package statement

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/takakv/triptych/curvegroup"
	"github.com/takakv/triptych/params"
)

func randomPoints(n int) []curvegroup.Point {
	out := make([]curvegroup.Point, n)
	for i := range out {
		out[i] = curvegroup.RandomPoint(rand.Reader)
	}
	return out
}

func TestInputSetHashDeterministic(t *testing.T) {
	M := randomPoints(8)
	a := NewInputSet(M)
	b := NewInputSet(M)
	if a.Hash() != b.Hash() {
		t.Fatalf("identical input sets hashed differently")
	}
}

func TestInputSetHashSensitiveToMutation(t *testing.T) {
	M := randomPoints(8)
	a := NewInputSet(M)
	M[3] = curvegroup.RandomPoint(rand.Reader)
	b := NewInputSet(M)
	if a.Hash() == b.Hash() {
		t.Fatalf("mutating one entry did not change the input-set hash")
	}
}

func TestNewRejectsWrongLength(t *testing.T) {
	p, _ := params.New(2, 4) // N = 16
	inputSet := NewInputSet(randomPoints(8))
	j := curvegroup.RandomPoint(rand.Reader)
	if _, err := New(p, inputSet, j); !errors.Is(err, params.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestNewAcceptsCorrectLength(t *testing.T) {
	p, _ := params.New(2, 4) // N = 16
	inputSet := NewInputSet(randomPoints(16))
	j := curvegroup.RandomPoint(rand.Reader)
	st, err := New(p, inputSet, j)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st.InputSet().Len() != 16 {
		t.Fatalf("InputSet().Len() = %d, want 16", st.InputSet().Len())
	}
}

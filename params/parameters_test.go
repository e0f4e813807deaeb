package params

import (
	"errors"
	"testing"
)

func TestNewRejectsSmallN(t *testing.T) {
	if _, err := New(1, 4); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for n=1, got %v", err)
	}
}

func TestNewRejectsSmallM(t *testing.T) {
	if _, err := New(2, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for m=1, got %v", err)
	}
}

func TestNewRejectsOverflow(t *testing.T) {
	if _, err := New(1<<16, 3); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for overflowing N, got %v", err)
	}
}

func TestNDerivation(t *testing.T) {
	p, err := New(2, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.N() != 16 {
		t.Fatalf("N() = %d, want 16", p.N())
	}
}

func TestDeterministicGenerators(t *testing.T) {
	a, err := New(3, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(3, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("two Parameters with equal (n, m) produced different hashes")
	}
	if !a.CommitmentG(1, 2).Equal(b.CommitmentG(1, 2)) {
		t.Fatalf("two Parameters with equal (n, m) produced different generators")
	}
}

func TestDifferentDimensionsDiverge(t *testing.T) {
	a, _ := New(2, 4)
	b, _ := New(2, 5)
	if a.Hash() == b.Hash() {
		t.Fatalf("different (n, m) produced the same hash")
	}
}

func TestDecompose(t *testing.T) {
	p, err := New(2, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	digits, err := p.Decompose(5) // 5 = 0b0101 -> little-endian digits [1,0,1,0]
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	want := []uint32{1, 0, 1, 0}
	for i := range want {
		if digits[i] != want[i] {
			t.Fatalf("Decompose(5) = %v, want %v", digits, want)
		}
	}
}

func TestDecomposeOutOfRange(t *testing.T) {
	p, _ := New(2, 4)
	if _, err := p.Decompose(p.N()); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for k == N, got %v", err)
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	p, _ := New(3, 4)
	for k := uint32(0); k < p.N(); k++ {
		digits, err := p.Decompose(k)
		if err != nil {
			t.Fatalf("Decompose(%d): %v", k, err)
		}
		recomposed := uint32(0)
		mult := uint32(1)
		for _, d := range digits {
			recomposed += d * mult
			mult *= p.Base()
		}
		if recomposed != k {
			t.Fatalf("Decompose(%d) did not round-trip, got %d", k, recomposed)
		}
	}
}

package transcript

import (
	"bytes"
	"testing"
)

func TestChallengeDeterministic(t *testing.T) {
	mk := func() [64]byte {
		tr := New("test transcript")
		tr.Append("a", []byte("hello"))
		tr.AppendUint64("b", 42)
		var out [64]byte
		tr.ChallengeBytes("xi", out[:])
		return out
	}
	a := mk()
	b := mk()
	if !bytes.Equal(a[:], b[:]) {
		t.Fatalf("identical transcripts produced different challenges")
	}
}

func TestChallengeSensitiveToOrderAndContent(t *testing.T) {
	base := func(swap bool) [64]byte {
		tr := New("test transcript")
		if swap {
			tr.Append("b", []byte("world"))
			tr.Append("a", []byte("hello"))
		} else {
			tr.Append("a", []byte("hello"))
			tr.Append("b", []byte("world"))
		}
		var out [64]byte
		tr.ChallengeBytes("xi", out[:])
		return out
	}
	a := base(false)
	b := base(true)
	if bytes.Equal(a[:], b[:]) {
		t.Fatalf("swapping append order did not change the challenge")
	}
}

func TestChallengeContinuesAbsorbing(t *testing.T) {
	tr := New("test transcript")
	tr.Append("a", []byte("hello"))
	var first [32]byte
	tr.ChallengeBytes("c1", first[:])

	tr.Append("b", []byte("more data"))
	var second [32]byte
	tr.ChallengeBytes("c2", second[:])

	if bytes.Equal(first[:], second[:]) {
		t.Fatalf("two distinct challenge draws collided")
	}
}

func TestDifferentDomainLabelsDiverge(t *testing.T) {
	mk := func(label string) [64]byte {
		tr := New(label)
		tr.Append("a", []byte("hello"))
		var out [64]byte
		tr.ChallengeBytes("xi", out[:])
		return out
	}
	a := mk("Triptych proof")
	b := mk("Some other protocol")
	if bytes.Equal(a[:], b[:]) {
		t.Fatalf("distinct domain labels produced the same challenge")
	}
}

package proof

import (
	"crypto/rand"
	"testing"

	"github.com/takakv/triptych/curvegroup"
	"github.com/takakv/triptych/params"
	"github.com/takakv/triptych/statement"
	"github.com/takakv/triptych/witness"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	w, st := generateData(t, 2, 4)
	message := []byte("encode round trip")

	pf, err := Prove(w, st, message, rand.Reader)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	encoded := pf.Encode()
	if len(encoded) != EncodedLen(st.Params().Base(), st.Params().Exponent()) {
		t.Fatalf("Encode produced %d bytes, want %d", len(encoded), EncodedLen(st.Params().Base(), st.Params().Exponent()))
	}

	decoded, err := Decode(encoded, st.Params().Base(), st.Params().Exponent())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !Verify(decoded, st, message, rand.Reader) {
		t.Fatalf("decoded proof failed to verify")
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	w, st := generateData(t, 2, 4)
	pf, err := Prove(w, st, nil, rand.Reader)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	encoded := pf.Encode()
	truncated := encoded[:len(encoded)-1]
	if _, err := Decode(truncated, st.Params().Base(), st.Params().Exponent()); err == nil {
		t.Fatalf("expected Decode to reject a truncated proof")
	}
}

func TestDecodeRejectsBitFlip(t *testing.T) {
	w, st := generateData(t, 2, 4)
	message := []byte("bit flip")
	pf, err := Prove(w, st, message, rand.Reader)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	encoded := pf.Encode()
	flipped := make([]byte, len(encoded))
	copy(flipped, encoded)
	flipped[0] ^= 0x01 // flip a bit inside the compressed A point

	decoded, err := Decode(flipped, st.Params().Base(), st.Params().Exponent())
	if err != nil {
		// Many single-bit flips land on a non-canonical or invalid
		// point encoding and are rejected at decode time; that
		// satisfies the round-trip contract just as well as a verify
		// failure would.
		return
	}
	if Verify(decoded, st, message, rand.Reader) {
		t.Fatalf("a single bit flip in the encoding should not still verify")
	}
}

func TestDecodeRejectsNonCanonicalScalar(t *testing.T) {
	w, st := generateData(t, 2, 4)
	pf, err := Prove(w, st, nil, rand.Reader)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	encoded := pf.Encode()
	// The z scalar occupies the final 32 bytes; overwrite it with an
	// all-0xff pattern, which exceeds the group order and is therefore
	// not a canonical scalar encoding.
	for i := len(encoded) - 32; i < len(encoded); i++ {
		encoded[i] = 0xff
	}

	if _, err := Decode(encoded, st.Params().Base(), st.Params().Exponent()); err == nil {
		t.Fatalf("expected Decode to reject a non-canonical scalar encoding")
	}
}

func TestEncodedLenMatchesParameterShape(t *testing.T) {
	p, err := params.New(3, 5)
	if err != nil {
		t.Fatalf("params.New: %v", err)
	}
	w := witness.Random(p, rand.Reader)
	M := make([]curvegroup.Point, p.N())
	for i := range M {
		if uint32(i) == w.Index() {
			M[i] = w.VerificationKey()
		} else {
			M[i] = curvegroup.RandomPoint(rand.Reader)
		}
	}
	st, err := statement.New(p, statement.NewInputSet(M), w.LinkingTag())
	if err != nil {
		t.Fatalf("statement.New: %v", err)
	}

	pf, err := Prove(w, st, nil, rand.Reader)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if len(pf.Encode()) != EncodedLen(3, 5) {
		t.Fatalf("Encode length %d does not match EncodedLen(3, 5) = %d", len(pf.Encode()), EncodedLen(3, 5))
	}
}
